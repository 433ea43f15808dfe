package handler

import (
	"log/slog"
	"net/http"

	"livesales/internal/delivery/api/response"
	"livesales/internal/domain/entity"
	"livesales/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves catalog, product slot and label endpoints
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CatalogNameRequest is the body of catalog create and rename
type CatalogNameRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// ProductRequest is the body of PUT /catalogs/:id/products/:productId.
// Thresholds default to 5 (low) and 2 (critical) when omitted.
type ProductRequest struct {
	Name                   string           `json:"name" validate:"max=120"`
	Price                  decimal.Decimal  `json:"price"`
	Stock                  int              `json:"stock" validate:"gte=0"`
	LowStockThreshold      *int             `json:"low_stock_threshold" validate:"omitempty,gte=0"`
	CriticalStockThreshold *int             `json:"critical_stock_threshold" validate:"omitempty,gte=0"`
	DiscountType           string           `json:"discount_type" validate:"omitempty,discount_type"`
	DiscountValue          *decimal.Decimal `json:"discount_value"`
	Barcode                string           `json:"barcode" validate:"max=64"`
	ImageData              []byte           `json:"image_data"` // base64 in JSON
}

func (r ProductRequest) toInput() entity.ProductInput {
	in := entity.ProductInput{
		Name:                   r.Name,
		Price:                  r.Price,
		Stock:                  r.Stock,
		LowStockThreshold:      entity.DefaultLowStockThreshold,
		CriticalStockThreshold: entity.DefaultCriticalStockThreshold,
		DiscountType:           entity.DiscountType(r.DiscountType),
		Barcode:                r.Barcode,
		ImageData:              r.ImageData,
	}
	if in.DiscountType == "" {
		in.DiscountType = entity.DiscountNone
	}
	if r.LowStockThreshold != nil {
		in.LowStockThreshold = *r.LowStockThreshold
	}
	if r.CriticalStockThreshold != nil {
		in.CriticalStockThreshold = *r.CriticalStockThreshold
	}
	if r.DiscountValue != nil {
		in.DiscountValue = *r.DiscountValue
	}

	return in
}

// ListCatalogs returns every catalog with its slots
func (h *CatalogHandler) ListCatalogs(c echo.Context) error {
	catalogs, err := h.catalogUC.ListCatalogs(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, catalogs)
}

// GetCatalog returns one catalog
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid catalog ID")
	}

	catalog, err := h.catalogUC.GetCatalog(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, catalog)
}

// CreateCatalog creates a catalog with its initial empty slots
func (h *CatalogHandler) CreateCatalog(c echo.Context) error {
	var req CatalogNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	catalog, err := h.catalogUC.CreateCatalog(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, catalog)
}

// RenameCatalog changes a catalog's name
func (h *CatalogHandler) RenameCatalog(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid catalog ID")
	}

	var req CatalogNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid catalog input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	catalog, err := h.catalogUC.RenameCatalog(c.Request().Context(), id, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, catalog)
}

// DeleteCatalog removes a catalog and its products
func (h *CatalogHandler) DeleteCatalog(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid catalog ID")
	}

	if err := h.catalogUC.DeleteCatalog(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Catalog deleted successfully"})
}

// AddSlot appends an empty product slot
func (h *CatalogHandler) AddSlot(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid catalog ID")
	}

	catalog, err := h.catalogUC.AddSlot(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, catalog)
}

// UpdateProduct fills or edits a product slot
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	catalogID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid catalog ID")
	}
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := req.toInput()
	input.ID = productID

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), catalogID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// RemoveSlot deletes a product slot
func (h *CatalogHandler) RemoveSlot(c echo.Context) error {
	catalogID, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid catalog ID")
	}
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	catalog, err := h.catalogUC.RemoveSlot(c.Request().Context(), catalogID, productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, catalog)
}

// LookupProduct resolves ?code= from a barcode or label scan
func (h *CatalogHandler) LookupProduct(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "code is required")
	}

	found, err := h.catalogUC.LookupProduct(c.Request().Context(), code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, found)
}

// ProductLabel renders the product's QR label as PNG
func (h *CatalogHandler) ProductLabel(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	png, err := h.catalogUC.GenerateProductLabel(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// StockAlerts lists products at low, critical or zero stock
func (h *CatalogHandler) StockAlerts(c echo.Context) error {
	alerts, err := h.catalogUC.StockAlerts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, alerts)
}
