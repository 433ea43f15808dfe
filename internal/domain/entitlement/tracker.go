// Package entitlement gates free-tier usage. A Tracker owns the account's plan flag and
// usage counters; every method is safe for concurrent use.
package entitlement

import (
	"sync"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
)

// Default free-tier ceilings.
const (
	DefaultMaxFreeOrders  = 20
	DefaultMaxFreeExports = 10
)

// Limits are the free-tier ceilings. Non-positive values fall back to the defaults.
type Limits struct {
	MaxFreeOrders  int
	MaxFreeExports int
}

// DefaultLimits returns the standard free-tier ceilings.
func DefaultLimits() Limits {
	return Limits{MaxFreeOrders: DefaultMaxFreeOrders, MaxFreeExports: DefaultMaxFreeExports}
}

func (l Limits) normalized() Limits {
	if l.MaxFreeOrders <= 0 {
		l.MaxFreeOrders = DefaultMaxFreeOrders
	}
	if l.MaxFreeExports <= 0 {
		l.MaxFreeExports = DefaultMaxFreeExports
	}

	return l
}

// Tracker holds the entitlement state of the single seller account.
//
// CanAddOrder followed by RecordOrderAdded is a check-then-act pair and is not atomic
// across the two calls. Concurrent callers use ReserveOrder / ReserveExport, which check
// and increment inside one critical section.
type Tracker struct {
	mu      sync.Mutex
	account entity.Account
	limits  Limits
}

// NewTracker starts tracking the given account state.
func NewTracker(account entity.Account, limits Limits) *Tracker {
	return &Tracker{account: account, limits: limits.normalized()}
}

// Limits returns the configured ceilings.
func (t *Tracker) Limits() Limits {
	return t.limits
}

// CanAddOrder reports isPro OR ordersUsed < limit.
func (t *Tracker) CanAddOrder() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.canAddOrderLocked()
}

// RecordOrderAdded increments ordersUsed without re-checking the ceiling.
func (t *Tracker) RecordOrderAdded() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.account.OrdersUsed++
}

// CanExport reports isPro OR exportsUsed < limit.
func (t *Tracker) CanExport() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.canExportLocked()
}

// RecordExport increments exportsUsed without re-checking the ceiling.
func (t *Tracker) RecordExport() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.account.ExportsUsed++
}

// RemainingFreeOrders is max(0, limit - ordersUsed).
func (t *Tracker) RemainingFreeOrders() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return max(0, t.limits.MaxFreeOrders-t.account.OrdersUsed)
}

// RemainingFreeExports is max(0, limit - exportsUsed).
func (t *Tracker) RemainingFreeExports() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return max(0, t.limits.MaxFreeExports-t.account.ExportsUsed)
}

// IsPro reports the plan flag.
func (t *Tracker) IsPro() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.account.IsPro
}

// UpgradeToPro sets the pro flag. Counters are kept for history.
func (t *Tracker) UpgradeToPro() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.account.IsPro = true
}

// ResetAllUsage zeroes both counters. The pro flag is cleared only when clearPro is set,
// which is reserved for account deletion.
func (t *Tracker) ResetAllUsage(clearPro bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.account.OrdersUsed = 0
	t.account.ExportsUsed = 0
	if clearPro {
		t.account.IsPro = false
	}
}

// ReserveOrder checks the order ceiling and, when allowed, counts the order in the same
// critical section. It returns ErrOrderLimitReached otherwise.
func (t *Tracker) ReserveOrder() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.canAddOrderLocked() {
		return domainerrors.ErrOrderLimitReached.WithDetailsf("%d of %d free orders used", t.account.OrdersUsed, t.limits.MaxFreeOrders)
	}
	t.account.OrdersUsed++

	return nil
}

// ReleaseOrder gives back a reservation whose order was never stored.
func (t *Tracker) ReleaseOrder() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.account.OrdersUsed > 0 {
		t.account.OrdersUsed--
	}
}

// ReserveExport is ReserveOrder for exports.
func (t *Tracker) ReserveExport() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.canExportLocked() {
		return domainerrors.ErrExportLimitReached.WithDetailsf("%d of %d free exports used", t.account.ExportsUsed, t.limits.MaxFreeExports)
	}
	t.account.ExportsUsed++

	return nil
}

// ReleaseExport gives back an export reservation.
func (t *Tracker) ReleaseExport() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.account.ExportsUsed > 0 {
		t.account.ExportsUsed--
	}
}

// SetCurrencySymbol changes the display currency.
func (t *Tracker) SetCurrencySymbol(symbol string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.account.CurrencySymbol = symbol
}

// Snapshot returns a copy of the current account state.
func (t *Tracker) Snapshot() entity.Account {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.account
}

// Replace swaps in a persisted account, for example after a restore.
func (t *Tracker) Replace(account entity.Account) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.account = account
}

func (t *Tracker) canAddOrderLocked() bool {
	return t.account.IsPro || t.account.OrdersUsed < t.limits.MaxFreeOrders
}

func (t *Tracker) canExportLocked() bool {
	return t.account.IsPro || t.account.ExportsUsed < t.limits.MaxFreeExports
}
