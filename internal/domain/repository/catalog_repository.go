package repository

import (
	"context"

	"livesales/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogRepository defines the interface for catalog and product persistence.
type CatalogRepository interface {
	// CreateCatalog persists a catalog with all its slots.
	CreateCatalog(ctx context.Context, catalog *entity.ProductCatalog) error

	// FindCatalogByID returns ErrCatalogNotFound when the catalog does not exist.
	FindCatalogByID(ctx context.Context, id uuid.UUID) (*entity.ProductCatalog, error)

	// ListCatalogs returns catalogs in creation order with slots in slot order.
	ListCatalogs(ctx context.Context) ([]entity.ProductCatalog, error)

	// SaveCatalog replaces the catalog's name and slot list.
	SaveCatalog(ctx context.Context, catalog *entity.ProductCatalog) error

	DeleteCatalog(ctx context.Context, id uuid.UUID) error

	// FindProductByID returns the product and the ID of the catalog holding it.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, uuid.UUID, error)

	// FindProductByBarcode returns ErrProductNotFound when no configured product carries the code.
	FindProductByBarcode(ctx context.Context, barcode string) (*entity.Product, uuid.UUID, error)

	// DecrementStock lowers a product's stock by quantity, never below zero.
	DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error

	// DeleteAllCatalogs removes every catalog and product.
	DeleteAllCatalogs(ctx context.Context) error
}
