package handler

import (
	"log/slog"
	"net/http"

	"livesales/internal/delivery/api/response"
	"livesales/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves plan, usage and data reset endpoints
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// CurrencyRequest is the body of PUT /account/currency
type CurrencyRequest struct {
	Symbol string `json:"symbol" validate:"required"`
}

// ResetRequest is the body of POST /account/reset
type ResetRequest struct {
	DeleteAccount bool `json:"delete_account"`
}

// GetAccount returns the plan and free-tier usage
func (h *AccountHandler) GetAccount(c echo.Context) error {
	ent, err := h.accountUC.GetEntitlements(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ent)
}

// UpgradeToPro switches the account to the pro plan
func (h *AccountHandler) UpgradeToPro(c echo.Context) error {
	ent, err := h.accountUC.UpgradeToPro(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ent)
}

// SetCurrency changes the display currency symbol
func (h *AccountHandler) SetCurrency(c echo.Context) error {
	var req CurrencyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid currency input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ent, err := h.accountUC.SetCurrencySymbol(c.Request().Context(), req.Symbol)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ent)
}

// ResetAllData wipes every order, catalog and custom platform. An empty body keeps the
// pro plan.
func (h *AccountHandler) ResetAllData(c echo.Context) error {
	var req ResetRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
		}
	}

	ent, err := h.accountUC.ResetAllData(c.Request().Context(), req.DeleteAccount)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Warn("All data reset", slog.Bool("delete_account", req.DeleteAccount))

	return response.Success(c, http.StatusOK, ent)
}
