package entity

import (
	"strings"
	"time"

	domainerrors "livesales/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSource is where the buyer placed the order.
type OrderSource string

const (
	SourceLiveStream  OrderSource = "Live Stream"
	SourceTikTokDM    OrderSource = "TikTok DM"
	SourceInstagramDM OrderSource = "Instagram DM"
	SourceFacebookDM  OrderSource = "Facebook DM"
	SourceWhatsApp    OrderSource = "WhatsApp"
	SourceOther       OrderSource = "Other"
)

// OrderSources lists every source in declaration order.
func OrderSources() []OrderSource {
	return []OrderSource{SourceLiveStream, SourceTikTokDM, SourceInstagramDM, SourceFacebookDM, SourceWhatsApp, SourceOther}
}

// IsValid checks if the OrderSource is a valid value.
func (s OrderSource) IsValid() bool {
	switch s {
	case SourceLiveStream, SourceTikTokDM, SourceInstagramDM, SourceFacebookDM, SourceWhatsApp, SourceOther:
		return true
	default:
		return false
	}
}

// PaymentStatus tracks whether the buyer has paid.
type PaymentStatus string

const (
	PaymentUnset   PaymentStatus = "unset"
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentUnset, PaymentPending, PaymentPaid:
		return true
	default:
		return false
	}
}

// Order is a single sale. Product, platform and price fields are snapshots taken at creation
// so history stays stable when the catalog changes later.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Barcode       string          `json:"barcode,omitempty"`
	BuyerName     string          `json:"buyer_name"`
	PhoneNumber   string          `json:"phone_number"`
	Address       string          `json:"address"`
	CustomerNotes *string         `json:"customer_notes,omitempty"`
	Source        OrderSource     `json:"source"`
	Platform      Platform        `json:"platform"`
	Quantity      int             `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	WasDiscounted bool            `json:"was_discounted"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	IsFulfilled   bool            `json:"is_fulfilled"`
	Timestamp     time.Time       `json:"timestamp"`
}

// OrderInput carries everything needed to create an order.
type OrderInput struct {
	ID            uuid.UUID // Zero value allocates a new ID.
	ProductID     uuid.UUID
	ProductName   string
	Barcode       string
	BuyerName     string
	PhoneNumber   string
	Address       string
	CustomerNotes *string
	Source        OrderSource // Empty defaults to SourceLiveStream.
	Platform      Platform
	Quantity      int
	PricePerUnit  decimal.Decimal
	WasDiscounted bool
	PaymentStatus PaymentStatus // Empty defaults to PaymentUnset.
	IsFulfilled   bool
	Timestamp     time.Time // Zero value uses time.Now.
}

// NewOrder validates input and builds an Order. It is the only way to set the price,
// quantity and product snapshot of an order.
func NewOrder(in OrderInput) (Order, error) {
	if in.Quantity < 1 {
		return Order{}, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}
	if in.PricePerUnit.IsNegative() {
		return Order{}, domainerrors.ErrValidationFailed.WithDetails("price per unit must not be negative")
	}
	if strings.TrimSpace(in.ProductName) == "" {
		return Order{}, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if in.Platform.ID == uuid.Nil || strings.TrimSpace(in.Platform.Name) == "" {
		return Order{}, domainerrors.ErrValidationFailed.WithDetails("order platform needs an id and a name")
	}
	if in.Source == "" {
		in.Source = SourceLiveStream
	}
	if !in.Source.IsValid() {
		return Order{}, domainerrors.ErrValidationFailed.WithDetailsf("unknown order source %q", in.Source)
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = PaymentUnset
	}
	if !in.PaymentStatus.IsValid() {
		return Order{}, domainerrors.ErrValidationFailed.WithDetailsf("unknown payment status %q", in.PaymentStatus)
	}

	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	return Order{
		ID:            id,
		ProductID:     in.ProductID,
		ProductName:   strings.TrimSpace(in.ProductName),
		Barcode:       in.Barcode,
		BuyerName:     strings.TrimSpace(in.BuyerName),
		PhoneNumber:   in.PhoneNumber,
		Address:       in.Address,
		CustomerNotes: in.CustomerNotes,
		Source:        in.Source,
		Platform:      in.Platform,
		Quantity:      in.Quantity,
		PricePerUnit:  in.PricePerUnit,
		WasDiscounted: in.WasDiscounted,
		PaymentStatus: in.PaymentStatus,
		IsFulfilled:   in.IsFulfilled,
		Timestamp:     ts,
	}, nil
}

// TotalPrice is quantity times unit price.
func (o Order) TotalPrice() decimal.Decimal {
	return o.PricePerUnit.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// IsPaid reports whether the payment status is paid.
func (o Order) IsPaid() bool {
	return o.PaymentStatus == PaymentPaid
}

// SetPaymentStatus edits the payment status.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if !status.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetailsf("unknown payment status %q", status)
	}
	o.PaymentStatus = status

	return nil
}

// SetFulfilled edits the fulfillment flag.
func (o *Order) SetFulfilled(fulfilled bool) {
	o.IsFulfilled = fulfilled
}

// SameIdentity reports whether both values describe the same order.
func (o Order) SameIdentity(other Order) bool {
	return o.ID == other.ID
}

// Equal compares every field by value. Timestamps compare as instants.
func (o Order) Equal(other Order) bool {
	return o.ID == other.ID &&
		o.ProductID == other.ProductID &&
		o.ProductName == other.ProductName &&
		o.Barcode == other.Barcode &&
		o.BuyerName == other.BuyerName &&
		o.PhoneNumber == other.PhoneNumber &&
		o.Address == other.Address &&
		equalNotes(o.CustomerNotes, other.CustomerNotes) &&
		o.Source == other.Source &&
		o.Platform == other.Platform &&
		o.Quantity == other.Quantity &&
		o.PricePerUnit.Equal(other.PricePerUnit) &&
		o.WasDiscounted == other.WasDiscounted &&
		o.PaymentStatus == other.PaymentStatus &&
		o.IsFulfilled == other.IsFulfilled &&
		o.Timestamp.Equal(other.Timestamp)
}

func equalNotes(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
