package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"livesales/config"
	deliverycontext "livesales/internal/delivery/context"
	"livesales/internal/domain/entitlement"
	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/usecase"

	"go.uber.org/fx"
)

const maxCurrencySymbolLength = 8

type accountService struct {
	txManager       repository.TransactionManager
	accountRepo     repository.AccountRepository
	tracker         *entitlement.Tracker
	defaultCurrency string
	logger          *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Tracker     *entitlement.Tracker
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService creates a new account service instance
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:       params.TxManager,
		accountRepo:     params.AccountRepo,
		tracker:         params.Tracker,
		defaultCurrency: entity.NewAccount(params.Config.Account.CurrencySymbol).CurrencySymbol,
		logger:          params.Logger,
	}
}

func (s *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func (s *accountService) GetEntitlements(_ context.Context) (*usecase.Entitlements, error) {
	return entitlementsOf(s.tracker), nil
}

// UpgradeToPro persists the flag before the tracker sees it. Only is_pro is written so
// counters recorded by concurrent orders stay intact.
func (s *accountService) UpgradeToPro(ctx context.Context) (*usecase.Entitlements, error) {
	if err := s.accountRepo.SetPro(ctx, true); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.tracker.UpgradeToPro()

	s.log(ctx).Info("Account upgraded to pro")

	return entitlementsOf(s.tracker), nil
}

func (s *accountService) SetCurrencySymbol(ctx context.Context, symbol string) (*usecase.Entitlements, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" || utf8.RuneCountInString(symbol) > maxCurrencySymbolLength {
		return nil, domainerrors.ErrValidationFailed.WithDetailsf("currency symbol must be 1 to %d characters", maxCurrencySymbolLength)
	}

	if err := s.accountRepo.SetCurrencySymbol(ctx, symbol); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	s.tracker.SetCurrencySymbol(symbol)

	return entitlementsOf(s.tracker), nil
}

// ResetAllData clears the user's data set in one transaction. Built-in platforms are
// re-seeded so the platform list is never empty.
func (s *accountService) ResetAllData(ctx context.Context, deleteAccount bool) (*usecase.Entitlements, error) {
	fresh := entity.NewAccount(s.defaultCurrency)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewOrderRepository().DeleteAllOrders(ctx); err != nil {
			return err
		}
		if err := repoFactory.NewCatalogRepository().DeleteAllCatalogs(ctx); err != nil {
			return err
		}
		platformRepo := repoFactory.NewPlatformRepository()
		if err := platformRepo.DeleteCustomPlatforms(ctx); err != nil {
			return err
		}
		if err := platformRepo.UpsertPlatforms(ctx, entity.DefaultPlatforms()); err != nil {
			return err
		}

		accountRepo := repoFactory.NewAccountRepository()
		if deleteAccount {
			return accountRepo.SaveAccount(ctx, &fresh)
		}

		return accountRepo.ResetUsage(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset data: %w", err)
	}

	s.tracker.ResetAllUsage(deleteAccount)
	if deleteAccount {
		s.tracker.SetCurrencySymbol(fresh.CurrencySymbol)
	}

	s.log(ctx).Info("All data reset", slog.Bool("account_deleted", deleteAccount))

	return entitlementsOf(s.tracker), nil
}

func entitlementsOf(tracker *entitlement.Tracker) *usecase.Entitlements {
	account := tracker.Snapshot()
	limits := tracker.Limits()

	out := &usecase.Entitlements{
		IsPro:          account.IsPro,
		OrdersUsed:     account.OrdersUsed,
		ExportsUsed:    account.ExportsUsed,
		MaxFreeOrders:  limits.MaxFreeOrders,
		MaxFreeExports: limits.MaxFreeExports,
		CanAddOrder:    account.IsPro || account.OrdersUsed < limits.MaxFreeOrders,
		CanExport:      account.IsPro || account.ExportsUsed < limits.MaxFreeExports,
		CurrencySymbol: account.CurrencySymbol,
	}
	if !account.IsPro {
		orders := max(0, limits.MaxFreeOrders-account.OrdersUsed)
		exports := max(0, limits.MaxFreeExports-account.ExportsUsed)
		out.RemainingFreeOrders = &orders
		out.RemainingFreeExports = &exports
	}

	return out
}
