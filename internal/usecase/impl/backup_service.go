package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "livesales/internal/delivery/context"
	"livesales/internal/domain/entity"
	"livesales/internal/domain/repository"
	"livesales/internal/domain/service"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type backupService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	catalogRepo  repository.CatalogRepository
	platformRepo repository.PlatformRepository
	codec        service.BackupCodec
	store        service.SnapshotStore
	logger       *slog.Logger
	now          func() time.Time
}

// BackupServiceParams holds dependencies for BackupService, injected by Fx.
type BackupServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	CatalogRepo  repository.CatalogRepository
	PlatformRepo repository.PlatformRepository
	Codec        service.BackupCodec
	Store        service.SnapshotStore
	Logger       *slog.Logger
}

// NewBackupService creates a new backup service instance
func NewBackupService(params BackupServiceParams) usecase.BackupUsecase {
	return &backupService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		catalogRepo:  params.CatalogRepo,
		platformRepo: params.PlatformRepo,
		codec:        params.Codec,
		store:        params.Store,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (s *backupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func (s *backupService) ExportBackup(ctx context.Context) ([]byte, error) {
	var snapshot entity.Snapshot
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		if snapshot.Orders, err = repoFactory.NewOrderRepository().ListOrders(ctx, repository.OrderFilter{}); err != nil {
			return err
		}
		if snapshot.Catalogs, err = repoFactory.NewCatalogRepository().ListCatalogs(ctx); err != nil {
			return err
		}
		snapshot.Platforms, err = repoFactory.NewPlatformRepository().ListPlatforms(ctx)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read data for backup: %w", err)
	}

	data, err := s.codec.Serialize(snapshot, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}

	return data, nil
}

// RestoreBackup decodes the whole document before touching storage, then swaps the data
// set in one transaction.
func (s *backupService) RestoreBackup(ctx context.Context, data []byte) (*usecase.RestoreResult, error) {
	decoded, err := s.codec.Deserialize(data)
	if err != nil {
		return nil, err
	}

	platforms := restorablePlatforms(decoded.Platforms)
	canonicalizeOrderPlatforms(decoded.Orders, decoded.Platforms)

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		catalogRepo := repoFactory.NewCatalogRepository()
		platformRepo := repoFactory.NewPlatformRepository()

		if err := orderRepo.DeleteAllOrders(ctx); err != nil {
			return err
		}
		if err := catalogRepo.DeleteAllCatalogs(ctx); err != nil {
			return err
		}
		if err := platformRepo.DeleteCustomPlatforms(ctx); err != nil {
			return err
		}
		if err := platformRepo.UpsertPlatforms(ctx, platforms); err != nil {
			return err
		}
		for i := range decoded.Catalogs {
			if err := catalogRepo.CreateCatalog(ctx, &decoded.Catalogs[i]); err != nil {
				return err
			}
		}
		for i := range decoded.Orders {
			if err := orderRepo.CreateOrder(ctx, &decoded.Orders[i]); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restore backup: %w", err)
	}

	result := &usecase.RestoreResult{
		Orders:    len(decoded.Orders),
		Catalogs:  len(decoded.Catalogs),
		Platforms: len(platforms),
	}

	s.log(ctx).Info("Backup restored",
		slog.Int("orders", result.Orders),
		slog.Int("catalogs", result.Catalogs),
		slog.Int("platforms", result.Platforms),
		slog.Time("exported_at", decoded.ExportedAt),
		slog.String("app_version", decoded.AppVersion),
	)

	return result, nil
}

func (s *backupService) SaveSnapshot(ctx context.Context, name string) (*service.SnapshotInfo, error) {
	data, err := s.ExportBackup(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, name, data); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return &service.SnapshotInfo{
		Name:      strings.TrimSpace(name),
		Size:      int64(len(data)),
		UpdatedAt: s.now(),
	}, nil
}

func (s *backupService) RestoreSnapshot(ctx context.Context, name string) (*usecase.RestoreResult, error) {
	data, err := s.store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return s.RestoreBackup(ctx, data)
}

func (s *backupService) ListSnapshots(ctx context.Context) ([]service.SnapshotInfo, error) {
	snapshots, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	return snapshots, nil
}

func (s *backupService) DeleteSnapshot(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// restorablePlatforms keeps the built-ins as they are and appends the document's custom
// platforms, skipping reserved names, repeated IDs and names that collide case-insensitively.
func restorablePlatforms(decoded []entity.Platform) []entity.Platform {
	out := entity.DefaultPlatforms()
	seenIDs := make(map[uuid.UUID]struct{}, len(out)+len(decoded))
	seenNames := make(map[string]struct{}, len(out)+len(decoded))
	for _, p := range out {
		seenIDs[p.ID] = struct{}{}
		seenNames[strings.ToLower(p.Name)] = struct{}{}
	}

	for _, p := range decoded {
		if !p.IsCustom {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" || strings.EqualFold(name, entity.ReservedPlatformName) {
			continue
		}
		if _, dup := seenIDs[p.ID]; dup {
			continue
		}
		if _, dup := seenNames[name]; dup {
			continue
		}
		seenIDs[p.ID] = struct{}{}
		seenNames[name] = struct{}{}
		out = append(out, p)
	}

	return out
}

// canonicalizeOrderPlatforms points orders of a built-in platform at the local built-in.
// Other devices store built-ins under their own IDs, so a match is by the document's
// platform ID first and by the built-in name second.
func canonicalizeOrderPlatforms(orders []entity.Order, decoded []entity.Platform) {
	builtins := make(map[string]entity.Platform)
	for _, p := range entity.DefaultPlatforms() {
		builtins[strings.ToLower(p.Name)] = p
	}

	aliases := make(map[uuid.UUID]entity.Platform)
	for _, p := range decoded {
		if p.IsCustom {
			continue
		}
		if builtin, ok := builtins[strings.ToLower(strings.TrimSpace(p.Name))]; ok {
			aliases[p.ID] = builtin
		}
	}

	for i := range orders {
		if builtin, ok := aliases[orders[i].Platform.ID]; ok {
			orders[i].Platform = builtin

			continue
		}
		if orders[i].Platform.IsCustom {
			continue
		}
		if builtin, ok := builtins[strings.ToLower(strings.TrimSpace(orders[i].Platform.Name))]; ok {
			orders[i].Platform = builtin
		}
	}
}
