package model

import "time"

// AccountSingletonID is the primary key of the only row in 'accounts'.
const AccountSingletonID = 1

// AccountModel is the GORM-specific struct for the 'accounts' table.
type AccountModel struct {
	ID             int    `gorm:"primaryKey;autoIncrement:false"`
	IsPro          bool   `gorm:"not null;default:false"`
	OrdersUsed     int    `gorm:"not null;default:0"`
	ExportsUsed    int    `gorm:"not null;default:0"`
	CurrencySymbol string `gorm:"type:varchar(8);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// All lists every model for migrations and code generation.
func All() []any {
	return []any{
		&PlatformModel{},
		&CatalogModel{},
		&ProductModel{},
		&OrderModel{},
		&AccountModel{},
	}
}
