package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The platform is stored as a snapshot of its fields at sale time, not as a reference.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID        uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName      string          `gorm:"type:varchar(200);not null"`
	Barcode          string          `gorm:"type:varchar(64);not null;default:''"`
	BuyerName        string          `gorm:"type:varchar(200);not null;default:''"`
	PhoneNumber      string          `gorm:"type:varchar(50);not null;default:''"`
	Address          string          `gorm:"type:text;not null;default:''"`
	CustomerNotes    *string         `gorm:"type:text"`
	Source           string          `gorm:"type:varchar(30);not null"`
	PlatformID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlatformName     string          `gorm:"type:varchar(100);not null"`
	PlatformIcon     string          `gorm:"type:varchar(100);not null;default:''"`
	PlatformColor    string          `gorm:"type:varchar(20);not null;default:'gray'"`
	PlatformIsCustom bool            `gorm:"not null;default:false"`
	Quantity         int             `gorm:"not null"`
	PricePerUnit     decimal.Decimal `gorm:"type:varchar(40);not null"`
	WasDiscounted    bool            `gorm:"not null;default:false"`
	PaymentStatus    string          `gorm:"type:varchar(20);not null;default:'unset';index"`
	IsFulfilled      bool            `gorm:"not null;default:false"`
	Timestamp        time.Time       `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
