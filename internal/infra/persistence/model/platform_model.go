// Package model holds the GORM table mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PlatformModel is the GORM-specific struct for the 'platforms' table.
type PlatformModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Icon      string    `gorm:"type:varchar(100);not null;default:''"`
	Color     string    `gorm:"type:varchar(20);not null;default:'gray'"`
	IsCustom  bool      `gorm:"not null;default:false;index"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlatformModel) TableName() string {
	return "platforms"
}
