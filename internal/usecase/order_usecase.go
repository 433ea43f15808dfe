package usecase

import (
	"context"
	"time"

	"livesales/internal/domain/entity"
	"livesales/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderInput represents the data needed to record a sale.
// With ProductID set, name, barcode and price are copied from the catalog product;
// PricePerUnit then overrides the product's final price when given.
type CreateOrderInput struct {
	ProductID     *uuid.UUID
	ProductName   string
	Barcode       string
	PricePerUnit  *decimal.Decimal
	WasDiscounted bool
	PlatformID    uuid.UUID
	BuyerName     string
	PhoneNumber   string
	Address       string
	CustomerNotes *string
	Source        entity.OrderSource
	Quantity      int
	PaymentStatus entity.PaymentStatus
	IsFulfilled   bool
	Timestamp     *time.Time
}

// UpdateOrderStatusInput carries the only order fields editable after creation.
// Nil fields are left unchanged.
type UpdateOrderStatusInput struct {
	PaymentStatus *entity.PaymentStatus
	IsFulfilled   *bool
}

// OrderExport is a rendered order export
type OrderExport struct {
	Filename string
	Content  []byte
	Orders   int
}

// OrderUsecase defines the interface for order use cases
type OrderUsecase interface {
	// CreateOrder reserves a free-tier order slot, stores the order and lowers product stock.
	// Fails with ErrOrderLimitReached when the free tier is used up.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error)

	UpdateOrderStatus(ctx context.Context, id uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// ExportOrdersCSV reserves a free-tier export and renders the matching orders as CSV.
	// Fails with ErrExportLimitReached when the free tier is used up.
	ExportOrdersCSV(ctx context.Context, filter repository.OrderFilter) (*OrderExport, error)
}
