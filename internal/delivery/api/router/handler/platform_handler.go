package handler

import (
	"log/slog"
	"net/http"

	"livesales/internal/delivery/api/response"
	"livesales/internal/domain/entity"
	"livesales/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlatformHandlerParams holds dependencies for PlatformHandler, injected by Fx.
type PlatformHandlerParams struct {
	fx.In

	PlatformUC usecase.PlatformUsecase
	Logger     *slog.Logger
}

// PlatformHandler serves the sales platform endpoints
type PlatformHandler struct {
	platformUC usecase.PlatformUsecase
	logger     *slog.Logger
}

// NewPlatformHandler is the constructor for PlatformHandler
func NewPlatformHandler(params PlatformHandlerParams) *PlatformHandler {
	return &PlatformHandler{
		platformUC: params.PlatformUC,
		logger:     params.Logger,
	}
}

// CreatePlatformRequest is the body of POST /platforms
type CreatePlatformRequest struct {
	Name  string `json:"name" validate:"required,max=40"`
	Icon  string `json:"icon" validate:"max=64"`
	Color string `json:"color" validate:"omitempty,color_tag"`
}

// platformView adds the rendered color attributes to a platform
type platformView struct {
	entity.Platform
	Attributes entity.ColorAttrs `json:"attributes"`
}

func newPlatformView(p entity.Platform) platformView {
	return platformView{Platform: p, Attributes: p.Attributes()}
}

// ListPlatforms returns the built-in platforms followed by custom ones
func (h *PlatformHandler) ListPlatforms(c echo.Context) error {
	platforms, err := h.platformUC.ListPlatforms(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]platformView, 0, len(platforms))
	for _, p := range platforms {
		views = append(views, newPlatformView(p))
	}

	return response.Success(c, http.StatusOK, views)
}

// CreatePlatform adds a custom platform
func (h *PlatformHandler) CreatePlatform(c echo.Context) error {
	var req CreatePlatformRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid platform input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	platform, err := h.platformUC.CreateCustomPlatform(c.Request().Context(), &usecase.CreatePlatformInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: entity.ColorTag(req.Color),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPlatformView(*platform))
}

// DeletePlatform removes a custom platform; built-ins are refused
func (h *PlatformHandler) DeletePlatform(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid platform ID")
	}

	if err := h.platformUC.DeleteCustomPlatform(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Platform deleted successfully"})
}
