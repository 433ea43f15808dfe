package impl

import (
	"context"
	"testing"
	"time"

	"livesales/internal/domain/analytics"
	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/domain/service"
	"livesales/internal/infra/backup"
	mockService "livesales/internal/mocks/service"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func createTestBackupService(t *testing.T, env *testEnv, store service.SnapshotStore) *backupService {
	t.Helper()

	if store == nil {
		memStore := backup.NewStore(memblob.OpenBucket(nil), env.logger)
		t.Cleanup(func() { _ = memStore.Close() })
		store = memStore
	}

	svc := NewBackupService(BackupServiceParams{
		TxManager:    env.txManager,
		OrderRepo:    env.orderRepo,
		CatalogRepo:  env.catalogRepo,
		PlatformRepo: env.platformRepo,
		Codec:        backup.NewCodec("1.4.0"),
		Store:        store,
		Logger:       env.logger,
	}).(*backupService)
	svc.now = func() time.Time { return orderNow }

	return svc
}

// seedBackupData fills env with a custom platform, a configured catalog and two orders.
func seedBackupData(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	_, err := env.platformService().CreateCustomPlatform(ctx, &usecase.CreatePlatformInput{Name: "Depop", Color: entity.ColorTeal})
	require.NoError(t, err)

	_, product := env.seedProduct(t, entity.ProductInput{
		Name: "Jacket", Price: money("80"), Stock: 6, Barcode: "1111", ImageData: []byte{1, 2, 3},
	})

	orders := env.orderService(orderNow)
	_, err = orders.CreateOrder(ctx, &usecase.CreateOrderInput{ProductID: &product.ID, PlatformID: tiktok().ID, Quantity: 1})
	require.NoError(t, err)
	note := "leave at door"
	in := manualOrder("4.25")
	in.CustomerNotes = &note
	_, err = orders.CreateOrder(ctx, in)
	require.NoError(t, err)
}

func readSnapshot(t *testing.T, env *testEnv) entity.Snapshot {
	t.Helper()
	ctx := context.Background()

	var (
		snapshot entity.Snapshot
		err      error
	)
	snapshot.Orders, err = env.orderRepo.ListOrders(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	snapshot.Catalogs, err = env.catalogRepo.ListCatalogs(ctx)
	require.NoError(t, err)
	snapshot.Platforms, err = env.platformRepo.ListPlatforms(ctx)
	require.NoError(t, err)

	return snapshot
}

func TestBackupService_ExportRestoreRoundTrip(t *testing.T) {
	source := newTestEnv(t, nil)
	source.allowEvents()
	seedBackupData(t, source)

	data, err := createTestBackupService(t, source, nil).ExportBackup(context.Background())
	require.NoError(t, err)

	target := newTestEnv(t, nil)
	result, err := createTestBackupService(t, target, nil).RestoreBackup(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, &usecase.RestoreResult{Orders: 2, Catalogs: 1, Platforms: 4}, result)

	assert.True(t, readSnapshot(t, source).Equal(readSnapshot(t, target)))
}

func TestBackupService_RestoreReplacesExistingData(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	seedBackupData(t, env)
	svc := createTestBackupService(t, env, nil)
	ctx := context.Background()

	data, err := svc.ExportBackup(ctx)
	require.NoError(t, err)

	_, err = env.platformService().CreateCustomPlatform(ctx, &usecase.CreatePlatformInput{Name: "Mercari"})
	require.NoError(t, err)
	_, err = env.orderService(orderNow).CreateOrder(ctx, manualOrder("1"))
	require.NoError(t, err)

	_, err = svc.RestoreBackup(ctx, data)
	require.NoError(t, err)

	snapshot := readSnapshot(t, env)
	assert.Len(t, snapshot.Orders, 2)
	assert.Len(t, snapshot.Platforms, 4)
	for _, p := range snapshot.Platforms {
		assert.NotEqual(t, "Mercari", p.Name)
	}
}

func TestBackupService_CorruptBackupChangesNothing(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	seedBackupData(t, env)
	svc := createTestBackupService(t, env, nil)
	before := readSnapshot(t, env)

	_, err := svc.RestoreBackup(context.Background(), []byte(`{"orders": [], "catalogs": []}`))
	assert.ErrorIs(t, err, domainerrors.ErrCorruptBackup)

	assert.True(t, before.Equal(readSnapshot(t, env)))
}

func TestBackupService_Snapshots(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	seedBackupData(t, env)
	svc := createTestBackupService(t, env, nil)
	ctx := context.Background()
	before := readSnapshot(t, env)

	info, err := svc.SaveSnapshot(ctx, " nightly ")
	require.NoError(t, err)
	assert.Equal(t, "nightly", info.Name)
	assert.Positive(t, info.Size)

	list, err := svc.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "nightly", list[0].Name)

	_, err = env.accountService().ResetAllData(ctx, false)
	require.NoError(t, err)

	result, err := svc.RestoreSnapshot(ctx, "nightly")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Orders)
	assert.True(t, before.Equal(readSnapshot(t, env)))

	require.NoError(t, svc.DeleteSnapshot(ctx, "nightly"))
	_, err = svc.RestoreSnapshot(ctx, "nightly")
	assert.ErrorIs(t, err, domainerrors.ErrBackupNotFound)
}

func TestBackupService_SaveSnapshotStoreFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	store := mockService.NewMockSnapshotStore(t)
	store.EXPECT().
		Save(mock.Anything, "../escape", mock.AnythingOfType("[]uint8")).
		Return(domainerrors.ErrValidationFailed.WithDetails("invalid snapshot name"))

	_, err := createTestBackupService(t, env, store).SaveSnapshot(context.Background(), "../escape")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBackupService_RestoreMapsForeignBuiltinIDs(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	foreignTikTok := entity.Platform{ID: uuid.New(), Name: "TikTok", Icon: "music.note", Color: entity.ColorBlack}
	legacyInstagram := entity.Platform{ID: uuid.New(), Name: "instagram", Color: entity.ColorPink}
	mk := func(platform entity.Platform, price string) entity.Order {
		o, err := entity.NewOrder(entity.OrderInput{
			ProductName:  "Scarf",
			Platform:     platform,
			Quantity:     1,
			PricePerUnit: money(price),
			Timestamp:    orderNow.Add(-time.Hour),
		})
		require.NoError(t, err)

		return o
	}
	data, err := backup.NewCodec("").Serialize(entity.Snapshot{
		Orders:    []entity.Order{mk(foreignTikTok, "10"), mk(legacyInstagram, "20")},
		Platforms: []entity.Platform{foreignTikTok},
	}, orderNow)
	require.NoError(t, err)

	_, err = createTestBackupService(t, env, nil).RestoreBackup(ctx, data)
	require.NoError(t, err)

	platforms, err := env.platformRepo.ListPlatforms(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, entity.DefaultPlatforms(), platforms)

	orders, err := env.orderRepo.ListOrders(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	listedTikTok := tiktok().ID
	matched := analytics.FilterByPlatform(orders, &listedTikTok)
	require.Len(t, matched, 1)
	assert.Equal(t, tiktok(), matched[0].Platform)

	instagramID := entity.BuiltinPlatformID(entity.PlatformInstagram)
	assert.Len(t, analytics.FilterByPlatform(orders, &instagramID), 1)
	assert.Len(t, analytics.PlatformBreakdown(orders), 2)
}

func TestCanonicalizeOrderPlatforms_KeepsCustom(t *testing.T) {
	depop := entity.Platform{ID: uuid.New(), Name: "Depop", Color: entity.ColorTeal, IsCustom: true}
	shadow := entity.Platform{ID: uuid.New(), Name: "Facebook", IsCustom: true}
	orders := []entity.Order{{Platform: depop}, {Platform: shadow}}

	canonicalizeOrderPlatforms(orders, []entity.Platform{depop, shadow})

	assert.Equal(t, depop, orders[0].Platform)
	assert.Equal(t, shadow, orders[1].Platform)
}

func TestRestorablePlatforms(t *testing.T) {
	defaults := entity.DefaultPlatforms()
	depop := entity.Platform{ID: uuid.New(), Name: "Depop", Color: entity.ColorTeal, IsCustom: true}

	got := restorablePlatforms([]entity.Platform{
		defaults[2],
		depop,
		{ID: depop.ID, Name: "Depop again", IsCustom: true},
		{ID: uuid.New(), Name: "DEPOP", IsCustom: true},
		{ID: uuid.New(), Name: "tiktok", IsCustom: true},
		{ID: uuid.New(), Name: "All", IsCustom: true},
		{ID: uuid.New(), Name: "Legacy TikTok", IsCustom: false},
	})

	assert.Equal(t, append(defaults, depop), got)
}
