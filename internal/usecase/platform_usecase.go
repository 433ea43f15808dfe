package usecase

import (
	"context"

	"livesales/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePlatformInput represents the data needed to add a custom sales platform
type CreatePlatformInput struct {
	Name  string          `json:"name"`
	Icon  string          `json:"icon"`
	Color entity.ColorTag `json:"color"`
}

// PlatformUsecase defines the interface for sales platform use cases
type PlatformUsecase interface {
	// EnsureDefaults stores the built-in platforms if any of them is missing
	EnsureDefaults(ctx context.Context) error

	// ListPlatforms returns built-in platforms first, then custom ones
	ListPlatforms(ctx context.Context) ([]entity.Platform, error)

	// CreateCustomPlatform validates the name against every existing platform
	CreateCustomPlatform(ctx context.Context, input *CreatePlatformInput) (*entity.Platform, error)

	// DeleteCustomPlatform refuses built-in platforms
	DeleteCustomPlatform(ctx context.Context, id uuid.UUID) error
}
