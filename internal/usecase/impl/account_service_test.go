package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	mockRepo "livesales/internal/mocks/repository"
	"livesales/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_GetEntitlements(t *testing.T) {
	env := newTestEnv(t, nil)

	got, err := env.accountService().GetEntitlements(context.Background())
	require.NoError(t, err)
	assert.False(t, got.IsPro)
	assert.Equal(t, 3, got.MaxFreeOrders)
	require.NotNil(t, got.RemainingFreeOrders)
	assert.Equal(t, 3, *got.RemainingFreeOrders)
	require.NotNil(t, got.RemainingFreeExports)
	assert.Equal(t, 1, *got.RemainingFreeExports)
	assert.True(t, got.CanAddOrder)
	assert.True(t, got.CanExport)
	assert.Equal(t, "$", got.CurrencySymbol)
}

func TestAccountService_UpgradeToPro(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	require.NoError(t, env.tracker.ReserveOrder())

	got, err := env.accountService().UpgradeToPro(ctx)
	require.NoError(t, err)
	assert.True(t, got.IsPro)
	assert.Nil(t, got.RemainingFreeOrders)
	assert.Nil(t, got.RemainingFreeExports)
	assert.Equal(t, 1, got.OrdersUsed, "usage history is kept")

	stored, err := env.accountRepo.GetAccount(ctx, "$")
	require.NoError(t, err)
	assert.True(t, stored.IsPro)
}

func TestAccountService_UpgradeToProPersistFailure(t *testing.T) {
	env := newTestEnv(t, nil)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.EXPECT().SetPro(mock.Anything, true).Return(errors.New("disk full"))

	svc := NewAccountService(AccountServiceParams{
		TxManager:   env.txManager,
		AccountRepo: accountRepo,
		Tracker:     env.tracker,
		Config:      env.cfg,
		Logger:      env.logger,
	})

	_, err := svc.UpgradeToPro(context.Background())
	require.Error(t, err)
	assert.False(t, env.tracker.IsPro())
}

func TestAccountService_UpgradeWhileCreatingOrders(t *testing.T) {
	cfg := newTestConfig()
	cfg.Entitlement.MaxFreeOrders = 50
	env := newTestEnv(t, cfg)
	env.allowEvents()
	ctx := context.Background()
	orders := env.orderService(orderNow)
	accounts := env.accountService()

	const buyers = 8
	errs := make(chan error, buyers+1)
	var wg sync.WaitGroup
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := orders.CreateOrder(ctx, manualOrder("4"))
			errs <- err
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := accounts.UpgradeToPro(ctx)
		errs <- err
	}()
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := env.accountRepo.GetAccount(ctx, "$")
	require.NoError(t, err)
	assert.True(t, stored.IsPro)
	assert.Equal(t, buyers, stored.OrdersUsed)
	assert.Equal(t, env.tracker.Snapshot(), *stored)

	list, err := env.orderRepo.ListOrders(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, list, buyers)
}

func TestAccountService_CurrencyChangeKeepsCounters(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()

	_, err := env.orderService(orderNow).CreateOrder(ctx, manualOrder("2"))
	require.NoError(t, err)
	// Another writer already recorded usage the tracker has not seen.
	require.NoError(t, env.accountRepo.IncrementUsage(ctx, 1, 1))

	_, err = env.accountService().SetCurrencySymbol(ctx, "¥")
	require.NoError(t, err)

	stored, err := env.accountRepo.GetAccount(ctx, "$")
	require.NoError(t, err)
	assert.Equal(t, entity.Account{OrdersUsed: 2, ExportsUsed: 1, CurrencySymbol: "¥"}, *stored)
}

func TestAccountService_SetCurrencySymbol(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	svc := env.accountService()

	got, err := svc.SetCurrencySymbol(ctx, " € ")
	require.NoError(t, err)
	assert.Equal(t, "€", got.CurrencySymbol)

	stored, err := env.accountRepo.GetAccount(ctx, "$")
	require.NoError(t, err)
	assert.Equal(t, "€", stored.CurrencySymbol)

	for _, symbol := range []string{"", "   ", "ABCDEFGHI"} {
		_, err := svc.SetCurrencySymbol(ctx, symbol)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, symbol)
	}
}

func TestAccountService_ResetAllData(t *testing.T) {
	tests := []struct {
		name          string
		deleteAccount bool
		wantPro       bool
		wantCurrency  string
	}{
		{"keep account", false, true, "£"},
		{"delete account", true, false, "$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.allowEvents()
			ctx := context.Background()
			svc := env.accountService()

			_, err := svc.UpgradeToPro(ctx)
			require.NoError(t, err)
			_, err = svc.SetCurrencySymbol(ctx, "£")
			require.NoError(t, err)
			_, err = env.platformService().CreateCustomPlatform(ctx, &usecase.CreatePlatformInput{Name: "Poshmark"})
			require.NoError(t, err)
			env.seedProduct(t, entity.ProductInput{Name: "Mug", Price: money("5"), Stock: 5})
			_, err = env.orderService(orderNow).CreateOrder(ctx, manualOrder("5"))
			require.NoError(t, err)

			got, err := svc.ResetAllData(ctx, tt.deleteAccount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPro, got.IsPro)
			assert.Equal(t, 0, got.OrdersUsed)
			assert.Equal(t, 0, got.ExportsUsed)
			assert.Equal(t, tt.wantCurrency, got.CurrencySymbol)

			orders, err := env.orderRepo.ListOrders(ctx, repository.OrderFilter{})
			require.NoError(t, err)
			assert.Empty(t, orders)

			catalogs, err := env.catalogRepo.ListCatalogs(ctx)
			require.NoError(t, err)
			assert.Empty(t, catalogs)

			platforms, err := env.platformRepo.ListPlatforms(ctx)
			require.NoError(t, err)
			assert.Equal(t, entity.DefaultPlatforms(), platforms)

			stored, err := env.accountRepo.GetAccount(ctx, "$")
			require.NoError(t, err)
			assert.Equal(t, entity.Account{IsPro: tt.wantPro, CurrencySymbol: tt.wantCurrency}, *stored)
		})
	}
}

func TestNewEntitlementTracker_LoadsStoredAccount(t *testing.T) {
	cfg := newTestConfig()
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.EXPECT().
		GetAccount(mock.Anything, "$").
		Return(&entity.Account{OrdersUsed: 3, ExportsUsed: 1, CurrencySymbol: "$"}, nil)

	tracker, err := NewEntitlementTracker(EntitlementTrackerParams{
		Ctx:         context.Background(),
		AccountRepo: accountRepo,
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.False(t, tracker.CanAddOrder())
	assert.False(t, tracker.CanExport())
	assert.Equal(t, 3, tracker.Limits().MaxFreeOrders)
}

func TestNewEntitlementTracker_LoadFailure(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.EXPECT().GetAccount(mock.Anything, mock.Anything).Return(nil, errors.New("no such table"))

	_, err := NewEntitlementTracker(EntitlementTrackerParams{
		Ctx:         context.Background(),
		AccountRepo: accountRepo,
		Config:      newTestConfig(),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "failed to load account")
}
