package repository

import (
	"context"

	"livesales/internal/domain/entity"

	"github.com/google/uuid"
)

// PlatformRepository defines the interface for sales platform persistence.
type PlatformRepository interface {
	// ListPlatforms returns built-in platforms first, then custom ones in creation order.
	ListPlatforms(ctx context.Context) ([]entity.Platform, error)

	// FindPlatformByID returns ErrPlatformNotFound when the platform does not exist.
	FindPlatformByID(ctx context.Context, id uuid.UUID) (*entity.Platform, error)

	// UpsertPlatforms inserts the platforms or updates them in place by ID.
	UpsertPlatforms(ctx context.Context, platforms []entity.Platform) error

	CreatePlatform(ctx context.Context, platform *entity.Platform) error

	DeletePlatform(ctx context.Context, id uuid.UUID) error

	// DeleteCustomPlatforms removes every user-defined platform.
	DeleteCustomPlatforms(ctx context.Context) error
}
