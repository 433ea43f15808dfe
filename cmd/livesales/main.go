package main

import (
	"context"
	"log/slog"
	"os"

	"livesales/config"
	"livesales/internal/delivery"
	"livesales/internal/delivery/api"
	"livesales/internal/delivery/api/router/handler"
	"livesales/internal/domain/service"
	"livesales/internal/infra/backup"
	logs "livesales/internal/infra/log"
	"livesales/internal/infra/persistence/gormdb"
	"livesales/internal/infra/pubsub"
	"livesales/internal/infra/qrcode"
	"livesales/internal/usecase"
	"livesales/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	_ = godotenv.Load() // Load .env file if it exists

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			seedPlatforms,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		gormdb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			gormdb.NewOrderRepository,
			gormdb.NewCatalogRepository,
			gormdb.NewPlatformRepository,
			gormdb.NewAccountRepository,
			gormdb.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newQRCodeService,
			newBackupCodec,
			newSnapshotStore,
			impl.NewEntitlementTracker,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newBackupCodec(cfg *config.Config) service.BackupCodec {
	return backup.NewCodec(cfg.Backup.AppVersion)
}

// newSnapshotStore opens the backup bucket and closes it on shutdown
func newSnapshotStore(ctx context.Context, lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.SnapshotStore, error) {
	store, err := backup.OpenStore(ctx, cfg.Backup.BucketURL, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing backup bucket")

			return store.Close()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlatformService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewAnalyticsService,
			impl.NewAccountService,
			impl.NewBackupService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPlatformHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewAnalyticsHandler,
			handler.NewAccountHandler,
			handler.NewBackupHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// seedPlatforms makes sure the built-in platforms exist before the first request
func seedPlatforms(lc fx.Lifecycle, platformUC usecase.PlatformUsecase) {
	lc.Append(fx.Hook{
		OnStart: platformUC.EnsureDefaults,
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
