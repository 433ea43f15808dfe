package handler

import (
	"log/slog"
	"net/http"

	"livesales/internal/delivery/api/response"
	"livesales/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AnalyticsHandlerParams holds dependencies for AnalyticsHandler, injected by Fx.
type AnalyticsHandlerParams struct {
	fx.In

	AnalyticsUC usecase.AnalyticsUsecase
	Logger      *slog.Logger
}

// AnalyticsHandler serves the dashboard figures. Every endpoint takes period
// (today|week|month|custom|all), start and end for a custom range, and platform_id.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
	logger      *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(params AnalyticsHandlerParams) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: params.AnalyticsUC,
		logger:      params.Logger,
	}
}

func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	q, err := analyticsQueryFromRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	dashboard, err := h.analyticsUC.Dashboard(c.Request().Context(), q)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

func (h *AnalyticsHandler) PlatformBreakdown(c echo.Context) error {
	q, err := analyticsQueryFromRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	stats, err := h.analyticsUC.PlatformBreakdown(c.Request().Context(), q)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// TopProducts also accepts limit; zero or absent uses the configured default
func (h *AnalyticsHandler) TopProducts(c echo.Context) error {
	q, err := analyticsQueryFromRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil || limit < 0 {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be a non-negative integer")
	}

	stats, err := h.analyticsUC.TopProducts(c.Request().Context(), q, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

func (h *AnalyticsHandler) DailySeries(c echo.Context) error {
	q, err := analyticsQueryFromRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	series, err := h.analyticsUC.DailySeries(c.Request().Context(), q)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, series)
}

func (h *AnalyticsHandler) SourceBreakdown(c echo.Context) error {
	q, err := analyticsQueryFromRequest(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	stats, err := h.analyticsUC.SourceBreakdown(c.Request().Context(), q)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// BestDay returns the highest-revenue day of the trailing month, or null data when
// there were no sales
func (h *AnalyticsHandler) BestDay(c echo.Context) error {
	platformID, err := queryUUID(c, "platform_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	best, err := h.analyticsUC.BestDayThisMonth(c.Request().Context(), platformID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, best)
}
