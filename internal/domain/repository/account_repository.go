package repository

import (
	"context"

	"livesales/internal/domain/entity"
)

// AccountRepository persists the single seller account.
//
// The targeted writes touch only their own columns so concurrent callers never
// overwrite each other's counters or flags.
type AccountRepository interface {
	// GetAccount returns the stored account, creating it with currencySymbol when none exists yet.
	GetAccount(ctx context.Context, currencySymbol string) (*entity.Account, error)

	// SaveAccount replaces every column of the account row.
	SaveAccount(ctx context.Context, account *entity.Account) error

	// IncrementUsage adds the deltas to the stored order and export counters.
	IncrementUsage(ctx context.Context, orders, exports int) error
	ResetUsage(ctx context.Context) error
	SetPro(ctx context.Context, isPro bool) error
	SetCurrencySymbol(ctx context.Context, symbol string) error
}
