package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogModel is the GORM-specific struct for the 'catalogs' table.
type CatalogModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name      string          `gorm:"type:varchar(100);not null;default:''"`
	Position  int             `gorm:"not null;default:0"`
	Products  []*ProductModel `gorm:"foreignKey:CatalogID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CatalogModel) TableName() string {
	return "catalogs"
}

// ProductModel is one catalog slot in the 'products' table.
// Money columns hold decimal strings so both drivers round-trip them exactly.
type ProductModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primary_key"`
	CatalogID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Slot                   int             `gorm:"not null;default:0"`
	Name                   string          `gorm:"type:varchar(200);not null;default:''"`
	Price                  decimal.Decimal `gorm:"type:varchar(40);not null;default:'0'"`
	Stock                  int             `gorm:"not null;default:0"`
	LowStockThreshold      int             `gorm:"not null;default:0"`
	CriticalStockThreshold int             `gorm:"not null;default:0"`
	DiscountType           string          `gorm:"type:varchar(20);not null;default:'none'"`
	DiscountValue          decimal.Decimal `gorm:"type:varchar(40);not null;default:'0'"`
	Barcode                string          `gorm:"type:varchar(64);not null;default:'';index"`
	ImageData              []byte
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
