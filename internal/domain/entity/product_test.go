package entity

import (
	"testing"

	domainerrors "livesales/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input ProductInput
	}{
		{"negative price", ProductInput{Name: "Tee", Price: decimal.NewFromInt(-1)}},
		{"negative stock", ProductInput{Name: "Tee", Price: decimal.NewFromInt(1), Stock: -1}},
		{"negative threshold", ProductInput{Name: "Tee", LowStockThreshold: -3}},
		{"negative discount", ProductInput{Name: "Tee", DiscountType: DiscountAmount, DiscountValue: decimal.NewFromInt(-2)}},
		{"unknown discount type", ProductInput{Name: "Tee", DiscountType: "bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestNewProduct_DefaultsDiscountType(t *testing.T) {
	p, err := NewProduct(ProductInput{Name: "  Tee  ", Price: decimal.NewFromInt(10), Stock: 3})
	require.NoError(t, err)
	assert.Equal(t, "Tee", p.Name)
	assert.Equal(t, DiscountNone, p.DiscountType)
	assert.NotEqual(t, [16]byte{}, [16]byte(p.ID))
}

func TestProduct_FinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount DiscountType
		value    string
		want     string
	}{
		{"no discount", "20", DiscountNone, "5", "20"},
		{"percentage", "20", DiscountPercentage, "25", "15"},
		{"percentage above 100 is clamped", "20", DiscountPercentage, "150", "0"},
		{"amount", "20", DiscountAmount, "5.5", "14.5"},
		{"amount floored at zero", "20", DiscountAmount, "35", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{
				Price:         decimal.RequireFromString(tt.price),
				DiscountType:  tt.discount,
				DiscountValue: decimal.RequireFromString(tt.value),
			}
			got := p.FinalPrice()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
			assert.False(t, got.IsNegative())
		})
	}
}

func TestProduct_IsEmpty(t *testing.T) {
	assert.True(t, EmptyProduct().IsEmpty())
	assert.False(t, Product{Name: "Mug"}.IsEmpty())
	assert.False(t, Product{Price: decimal.NewFromInt(1)}.IsEmpty())
	assert.False(t, Product{Stock: 1}.IsEmpty())
}

func TestProduct_StockLevel(t *testing.T) {
	p := Product{LowStockThreshold: 5, CriticalStockThreshold: 2}

	p.Stock = 0
	assert.Equal(t, StockOutOfStock, p.StockLevel())
	p.Stock = 2
	assert.Equal(t, StockCritical, p.StockLevel())
	p.Stock = 5
	assert.Equal(t, StockLow, p.StockLevel())
	p.Stock = 6
	assert.Equal(t, StockNormal, p.StockLevel())
}
