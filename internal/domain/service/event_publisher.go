package service

import (
	"context"
	"time"
)

// SalesEventType names a state transition other components may react to.
type SalesEventType string

const (
	// EventOrderAdded fires after an order has been stored.
	EventOrderAdded SalesEventType = "order.added"
	// EventExportCompleted fires after an order export has been produced.
	EventExportCompleted SalesEventType = "export.completed"
)

// SalesEvent is the payload published for every SalesEventType.
type SalesEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	Type       SalesEventType `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`

	OrderID      string `json:"order_id,omitempty"`
	PlatformName string `json:"platform_name,omitempty"`
	Total        string `json:"total,omitempty"` // Decimal string

	ExportedOrders int `json:"exported_orders,omitempty"`

	// Remaining free-tier allowance after the transition; -1 for pro accounts.
	RemainingFreeOrders  int `json:"remaining_free_orders"`
	RemainingFreeExports int `json:"remaining_free_exports"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSalesEvent publishes an event for async consumers
	PublishSalesEvent(ctx context.Context, event *SalesEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
