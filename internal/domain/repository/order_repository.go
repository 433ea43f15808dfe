// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"livesales/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderFilter narrows an order listing. Zero values do not filter.
type OrderFilter struct {
	PlatformID    *uuid.UUID
	From          *time.Time
	To            *time.Time
	PaymentStatus entity.PaymentStatus
	Fulfilled     *bool
	Limit         int
	Offset        int
}

// OrderRepository defines the interface for order persistence.
// Listings are ordered by timestamp ascending, then by ID.
type OrderRepository interface {
	// CreateOrder persists a new order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID returns ErrOrderNotFound when the order does not exist.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ListOrders(ctx context.Context, filter OrderFilter) ([]entity.Order, error)

	// UpdateOrderStatus writes the payment status and fulfillment flag only.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, fulfilled bool) error

	// DeleteAllOrders removes every order.
	DeleteAllOrders(ctx context.Context) error
}
