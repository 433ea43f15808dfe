package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"livesales/config"
	"livesales/internal/domain/entitlement"
	"livesales/internal/domain/entity"
	"livesales/internal/domain/repository"
	"livesales/internal/domain/service"
	"livesales/internal/infra/persistence/gormdb"
	"livesales/internal/infra/qrcode"
	mockService "livesales/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testEnv wires the use cases over an in-memory SQLite database.
type testEnv struct {
	cfg          *config.Config
	logger       *slog.Logger
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	catalogRepo  repository.CatalogRepository
	platformRepo repository.PlatformRepository
	accountRepo  repository.AccountRepository
	tracker      *entitlement.Tracker
	publisher    *mockService.MockEventPublisher
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Entitlement.MaxFreeOrders = 3
	cfg.Entitlement.MaxFreeExports = 1
	cfg.Account.CurrencySymbol = "$"
	cfg.Analytics.Timezone = "UTC"

	return cfg
}

func newTestEnv(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()

	if cfg == nil {
		cfg = newTestConfig()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Unique per call: one test may open several independent databases.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "_" + uuid.NewString()
	db, err := gormdb.Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		SQLite: config.SQLiteConfig{Path: "file:" + name + "?mode=memory&cache=shared"},
	}, logger, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	env := &testEnv{
		cfg:          cfg,
		logger:       logger,
		txManager:    gormdb.NewTransactionManager(db),
		orderRepo:    gormdb.NewOrderRepository(db),
		catalogRepo:  gormdb.NewCatalogRepository(db),
		platformRepo: gormdb.NewPlatformRepository(db),
		accountRepo:  gormdb.NewAccountRepository(db),
		publisher:    mockService.NewMockEventPublisher(t),
	}

	env.tracker, err = NewEntitlementTracker(EntitlementTrackerParams{
		Ctx:         context.Background(),
		AccountRepo: env.accountRepo,
		Config:      cfg,
		Logger:      logger,
	})
	require.NoError(t, err)

	require.NoError(t, env.platformRepo.UpsertPlatforms(context.Background(), entity.DefaultPlatforms()))

	return env
}

// allowEvents accepts any number of published events.
func (env *testEnv) allowEvents() {
	env.publisher.EXPECT().PublishSalesEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (env *testEnv) platformService() *platformService {
	return NewPlatformService(PlatformServiceParams{
		PlatformRepo: env.platformRepo,
		Logger:       env.logger,
	}).(*platformService)
}

func (env *testEnv) catalogService() *catalogService {
	return NewCatalogService(CatalogServiceParams{
		TxManager:     env.txManager,
		CatalogRepo:   env.catalogRepo,
		QRCodeService: newLabelService(),
		Logger:        env.logger,
	}).(*catalogService)
}

func (env *testEnv) orderService(now time.Time) *orderService {
	svc := NewOrderService(OrderServiceParams{
		TxManager:   env.txManager,
		OrderRepo:   env.orderRepo,
		AccountRepo: env.accountRepo,
		Tracker:     env.tracker,
		Publisher:   env.publisher,
		Logger:      env.logger,
	}).(*orderService)
	svc.now = func() time.Time { return now }

	return svc
}

func (env *testEnv) accountService() *accountService {
	return NewAccountService(AccountServiceParams{
		TxManager:   env.txManager,
		AccountRepo: env.accountRepo,
		Tracker:     env.tracker,
		Config:      env.cfg,
		Logger:      env.logger,
	}).(*accountService)
}

// seedProduct creates a catalog whose first slot holds a configured product.
func (env *testEnv) seedProduct(t *testing.T, in entity.ProductInput) (entity.ProductCatalog, entity.Product) {
	t.Helper()

	catalog := entity.NewProductCatalog("Live set")
	in.ID = catalog.Products[0].ID
	product, err := entity.NewProduct(in)
	require.NoError(t, err)
	require.NoError(t, catalog.ReplaceProduct(product))
	require.NoError(t, env.catalogRepo.CreateCatalog(context.Background(), &catalog))

	return catalog, product
}

func tiktok() entity.Platform {
	return entity.DefaultPlatforms()[0]
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newLabelService() service.QRCodeService {
	return qrcode.NewQRCodeService(128, "M")
}
