package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "livesales/internal/delivery/context"
	"livesales/internal/domain/entity"
	"livesales/internal/domain/repository"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type platformService struct {
	platformRepo repository.PlatformRepository
	logger       *slog.Logger
}

// PlatformServiceParams holds dependencies for PlatformService, injected by Fx.
type PlatformServiceParams struct {
	fx.In

	PlatformRepo repository.PlatformRepository
	Logger       *slog.Logger
}

// NewPlatformService creates a new platform service instance
func NewPlatformService(params PlatformServiceParams) usecase.PlatformUsecase {
	return &platformService{
		platformRepo: params.PlatformRepo,
		logger:       params.Logger,
	}
}

func (s *platformService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func (s *platformService) EnsureDefaults(ctx context.Context) error {
	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		return fmt.Errorf("failed to list platforms: %w", err)
	}

	if !missingBuiltins(platforms) {
		return nil
	}

	if err := s.platformRepo.UpsertPlatforms(ctx, entity.DefaultPlatforms()); err != nil {
		return fmt.Errorf("failed to seed built-in platforms: %w", err)
	}

	s.log(ctx).Info("Seeded built-in platforms")

	return nil
}

func (s *platformService) ListPlatforms(ctx context.Context) ([]entity.Platform, error) {
	if err := s.EnsureDefaults(ctx); err != nil {
		return nil, err
	}

	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}

	return platforms, nil
}

func (s *platformService) CreateCustomPlatform(ctx context.Context, input *usecase.CreatePlatformInput) (*entity.Platform, error) {
	existing, err := s.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}

	platform, err := entity.NewCustomPlatform(input.Name, input.Icon, input.Color, existing)
	if err != nil {
		return nil, err
	}

	if err := s.platformRepo.CreatePlatform(ctx, &platform); err != nil {
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}

	s.log(ctx).Info("Custom platform created",
		slog.String("platform_id", platform.ID.String()),
		slog.String("name", platform.Name),
	)

	return &platform, nil
}

func (s *platformService) DeleteCustomPlatform(ctx context.Context, id uuid.UUID) error {
	platform, err := s.platformRepo.FindPlatformByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find platform: %w", err)
	}

	if err := platform.CanDelete(); err != nil {
		return err
	}

	if err := s.platformRepo.DeletePlatform(ctx, id); err != nil {
		return fmt.Errorf("failed to delete platform: %w", err)
	}

	return nil
}

// missingBuiltins reports whether any built-in platform is absent from platforms.
func missingBuiltins(platforms []entity.Platform) bool {
	present := make(map[uuid.UUID]struct{}, len(platforms))
	for _, p := range platforms {
		present[p.ID] = struct{}{}
	}
	for _, builtin := range entity.DefaultPlatforms() {
		if _, ok := present[builtin.ID]; !ok {
			return true
		}
	}

	return false
}
