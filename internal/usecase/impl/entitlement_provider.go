package impl

import (
	"context"
	"fmt"
	"log/slog"

	"livesales/config"
	"livesales/internal/domain/entitlement"
	"livesales/internal/domain/repository"

	"go.uber.org/fx"
)

// EntitlementTrackerParams holds dependencies for the tracker provider, injected by Fx.
type EntitlementTrackerParams struct {
	fx.In

	Ctx         context.Context
	AccountRepo repository.AccountRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewEntitlementTracker loads the stored account and starts tracking it with the configured
// free-tier ceilings. It is the only place a Tracker is created.
func NewEntitlementTracker(params EntitlementTrackerParams) (*entitlement.Tracker, error) {
	account, err := params.AccountRepo.GetAccount(params.Ctx, params.Config.Account.CurrencySymbol)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	tracker := entitlement.NewTracker(*account, entitlement.Limits{
		MaxFreeOrders:  params.Config.Entitlement.MaxFreeOrders,
		MaxFreeExports: params.Config.Entitlement.MaxFreeExports,
	})

	limits := tracker.Limits()
	params.Logger.Info("Entitlement tracker ready",
		slog.Bool("is_pro", account.IsPro),
		slog.Int("orders_used", account.OrdersUsed),
		slog.Int("max_free_orders", limits.MaxFreeOrders),
		slog.Int("exports_used", account.ExportsUsed),
		slog.Int("max_free_exports", limits.MaxFreeExports),
	)

	return tracker, nil
}
