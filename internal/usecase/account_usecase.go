package usecase

import (
	"context"
)

// Entitlements is the plan and free-tier usage state shown to the seller.
// Remaining counts are nil for pro accounts.
type Entitlements struct {
	IsPro                bool   `json:"is_pro"`
	OrdersUsed           int    `json:"orders_used"`
	ExportsUsed          int    `json:"exports_used"`
	MaxFreeOrders        int    `json:"max_free_orders"`
	MaxFreeExports       int    `json:"max_free_exports"`
	RemainingFreeOrders  *int   `json:"remaining_free_orders"`
	RemainingFreeExports *int   `json:"remaining_free_exports"`
	CanAddOrder          bool   `json:"can_add_order"`
	CanExport            bool   `json:"can_export"`
	CurrencySymbol       string `json:"currency_symbol"`
}

// AccountUsecase defines the interface for account and plan use cases
type AccountUsecase interface {
	GetEntitlements(ctx context.Context) (*Entitlements, error)

	// UpgradeToPro lifts the free-tier ceilings; usage counters are kept
	UpgradeToPro(ctx context.Context) (*Entitlements, error)

	SetCurrencySymbol(ctx context.Context, symbol string) (*Entitlements, error)

	// ResetAllData wipes orders, catalogs, custom platforms and usage counters.
	// deleteAccount also clears the pro flag.
	ResetAllData(ctx context.Context, deleteAccount bool) (*Entitlements, error)
}
