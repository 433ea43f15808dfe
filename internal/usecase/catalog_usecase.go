package usecase

import (
	"context"

	"livesales/internal/domain/analytics"
	"livesales/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductLookup is a product found by barcode or label scan
type ProductLookup struct {
	CatalogID uuid.UUID      `json:"catalog_id"`
	Product   entity.Product `json:"product"`
}

// CatalogUsecase defines the interface for catalog and product use cases
type CatalogUsecase interface {
	ListCatalogs(ctx context.Context) ([]entity.ProductCatalog, error)

	GetCatalog(ctx context.Context, id uuid.UUID) (*entity.ProductCatalog, error)

	// CreateCatalog starts a catalog with the initial empty slots
	CreateCatalog(ctx context.Context, name string) (*entity.ProductCatalog, error)

	// RenameCatalog changes the display name only
	RenameCatalog(ctx context.Context, id uuid.UUID, name string) (*entity.ProductCatalog, error)

	// AddSlot appends an empty slot; fails with ErrCatalogFull at the slot ceiling
	AddSlot(ctx context.Context, catalogID uuid.UUID) (*entity.ProductCatalog, error)

	// UpdateProduct validates input and replaces the slot whose ID is input.ID
	UpdateProduct(ctx context.Context, catalogID uuid.UUID, input entity.ProductInput) (*entity.Product, error)

	RemoveSlot(ctx context.Context, catalogID, productID uuid.UUID) (*entity.ProductCatalog, error)

	DeleteCatalog(ctx context.Context, id uuid.UUID) error

	// LookupProduct resolves a scanned code: a product label QR payload or a barcode
	LookupProduct(ctx context.Context, code string) (*ProductLookup, error)

	// GenerateProductLabel renders a PNG QR code for an existing product
	GenerateProductLabel(ctx context.Context, productID uuid.UUID) ([]byte, error)

	// StockAlerts lists configured products at low, critical or zero stock
	StockAlerts(ctx context.Context) ([]analytics.StockAlert, error)
}
