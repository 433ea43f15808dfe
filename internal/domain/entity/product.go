package entity

import (
	"bytes"
	"strings"

	domainerrors "livesales/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default stock thresholds for newly configured products.
const (
	DefaultLowStockThreshold      = 5
	DefaultCriticalStockThreshold = 2
)

var hundred = decimal.NewFromInt(100)

// DiscountType selects how DiscountValue adjusts a product's price.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// IsValid checks if the DiscountType is a valid value.
func (d DiscountType) IsValid() bool {
	switch d {
	case DiscountNone, DiscountPercentage, DiscountAmount:
		return true
	default:
		return false
	}
}

// StockLevel classifies a product's stock against its thresholds.
type StockLevel string

const (
	StockNormal     StockLevel = "normal"
	StockLow        StockLevel = "low"
	StockCritical   StockLevel = "critical"
	StockOutOfStock StockLevel = "out_of_stock"
)

// Product is one slot of a catalog.
type Product struct {
	ID                     uuid.UUID       `json:"id"`
	Name                   string          `json:"name"`
	Price                  decimal.Decimal `json:"price"`
	Stock                  int             `json:"stock"`
	LowStockThreshold      int             `json:"low_stock_threshold"`
	CriticalStockThreshold int             `json:"critical_stock_threshold"`
	DiscountType           DiscountType    `json:"discount_type"`
	DiscountValue          decimal.Decimal `json:"discount_value"`
	Barcode                string          `json:"barcode,omitempty"`
	ImageData              []byte          `json:"image_data,omitempty"`
}

// ProductInput carries the user-editable fields of a product.
type ProductInput struct {
	ID                     uuid.UUID // Zero value allocates a new ID.
	Name                   string
	Price                  decimal.Decimal
	Stock                  int
	LowStockThreshold      int
	CriticalStockThreshold int
	DiscountType           DiscountType
	DiscountValue          decimal.Decimal
	Barcode                string
	ImageData              []byte
}

// EmptyProduct returns an unconfigured catalog slot.
func EmptyProduct() Product {
	return Product{
		ID:                     uuid.New(),
		Price:                  decimal.Zero,
		LowStockThreshold:      DefaultLowStockThreshold,
		CriticalStockThreshold: DefaultCriticalStockThreshold,
		DiscountType:           DiscountNone,
		DiscountValue:          decimal.Zero,
	}
}

// NewProduct validates input and builds a Product.
func NewProduct(in ProductInput) (Product, error) {
	if in.Price.IsNegative() {
		return Product{}, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if in.Stock < 0 {
		return Product{}, domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}
	if in.LowStockThreshold < 0 || in.CriticalStockThreshold < 0 {
		return Product{}, domainerrors.ErrValidationFailed.WithDetails("stock thresholds must not be negative")
	}
	if in.DiscountType == "" {
		in.DiscountType = DiscountNone
	}
	if !in.DiscountType.IsValid() {
		return Product{}, domainerrors.ErrValidationFailed.WithDetailsf("unknown discount type %q", in.DiscountType)
	}
	if in.DiscountValue.IsNegative() {
		return Product{}, domainerrors.ErrValidationFailed.WithDetails("discount value must not be negative")
	}

	id := in.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return Product{
		ID:                     id,
		Name:                   strings.TrimSpace(in.Name),
		Price:                  in.Price,
		Stock:                  in.Stock,
		LowStockThreshold:      in.LowStockThreshold,
		CriticalStockThreshold: in.CriticalStockThreshold,
		DiscountType:           in.DiscountType,
		DiscountValue:          in.DiscountValue,
		Barcode:                strings.TrimSpace(in.Barcode),
		ImageData:              in.ImageData,
	}, nil
}

// FinalPrice returns the price after discount. It is never negative.
func (p Product) FinalPrice() decimal.Decimal {
	switch p.DiscountType {
	case DiscountPercentage:
		pct := decimal.Max(decimal.Zero, decimal.Min(p.DiscountValue, hundred))
		off := p.Price.Mul(pct).Div(hundred)

		return decimal.Max(decimal.Zero, p.Price.Sub(off))
	case DiscountAmount:
		return decimal.Max(decimal.Zero, p.Price.Sub(p.DiscountValue))
	default:
		return p.Price
	}
}

// HasDiscount reports whether FinalPrice differs from Price.
func (p Product) HasDiscount() bool {
	return !p.FinalPrice().Equal(p.Price)
}

// IsEmpty reports an unconfigured slot: blank name, zero price and zero stock.
func (p Product) IsEmpty() bool {
	return strings.TrimSpace(p.Name) == "" && p.Price.IsZero() && p.Stock == 0
}

// StockLevel classifies the current stock.
func (p Product) StockLevel() StockLevel {
	switch {
	case p.Stock <= 0:
		return StockOutOfStock
	case p.Stock <= p.CriticalStockThreshold:
		return StockCritical
	case p.Stock <= p.LowStockThreshold:
		return StockLow
	default:
		return StockNormal
	}
}

// Equal compares every field by value.
func (p Product) Equal(other Product) bool {
	return p.ID == other.ID &&
		p.Name == other.Name &&
		p.Price.Equal(other.Price) &&
		p.Stock == other.Stock &&
		p.LowStockThreshold == other.LowStockThreshold &&
		p.CriticalStockThreshold == other.CriticalStockThreshold &&
		p.DiscountType == other.DiscountType &&
		p.DiscountValue.Equal(other.DiscountValue) &&
		p.Barcode == other.Barcode &&
		bytes.Equal(p.ImageData, other.ImageData)
}
