package entitlement

import (
	"sync"
	"sync/atomic"
	"testing"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_CanAddOrder(t *testing.T) {
	for used := 0; used <= 25; used++ {
		for _, pro := range []bool{false, true} {
			tr := NewTracker(entity.Account{IsPro: pro, OrdersUsed: used}, DefaultLimits())

			assert.Equal(t, pro || used < 20, tr.CanAddOrder(), "used=%d pro=%v", used, pro)
			assert.GreaterOrEqual(t, tr.RemainingFreeOrders(), 0)
			assert.Equal(t, max(0, 20-used), tr.RemainingFreeOrders())
		}
	}
}

func TestTracker_CanExport(t *testing.T) {
	tr := NewTracker(entity.NewAccount(""), DefaultLimits())
	for i := 0; i < DefaultMaxFreeExports; i++ {
		require.True(t, tr.CanExport())
		tr.RecordExport()
	}

	assert.False(t, tr.CanExport())
	assert.Zero(t, tr.RemainingFreeExports())

	tr.RecordExport()
	assert.Equal(t, 11, tr.Snapshot().ExportsUsed)
	assert.Zero(t, tr.RemainingFreeExports())
}

func TestTracker_UpgradeKeepsCounters(t *testing.T) {
	tr := NewTracker(entity.Account{OrdersUsed: 20, ExportsUsed: 10}, DefaultLimits())
	require.False(t, tr.CanAddOrder())

	tr.UpgradeToPro()

	assert.True(t, tr.IsPro())
	assert.True(t, tr.CanAddOrder())
	assert.True(t, tr.CanExport())
	assert.Equal(t, 20, tr.Snapshot().OrdersUsed)
	assert.Equal(t, 10, tr.Snapshot().ExportsUsed)
}

func TestTracker_ResetAllUsage(t *testing.T) {
	tr := NewTracker(entity.Account{IsPro: true, OrdersUsed: 7, ExportsUsed: 3}, DefaultLimits())

	tr.ResetAllUsage(false)
	snap := tr.Snapshot()
	assert.True(t, snap.IsPro)
	assert.Zero(t, snap.OrdersUsed)
	assert.Zero(t, snap.ExportsUsed)

	tr.ResetAllUsage(true)
	assert.False(t, tr.IsPro())
}

func TestTracker_ReserveOrder(t *testing.T) {
	tr := NewTracker(entity.Account{OrdersUsed: 19}, DefaultLimits())

	require.NoError(t, tr.ReserveOrder())
	err := tr.ReserveOrder()
	assert.ErrorIs(t, err, domainerrors.ErrOrderLimitReached)
	assert.Equal(t, 20, tr.Snapshot().OrdersUsed)

	tr.ReleaseOrder()
	assert.Equal(t, 1, tr.RemainingFreeOrders())
}

func TestTracker_ReserveExport(t *testing.T) {
	tr := NewTracker(entity.Account{ExportsUsed: 10}, DefaultLimits())
	assert.ErrorIs(t, tr.ReserveExport(), domainerrors.ErrExportLimitReached)

	tr.ReleaseExport()
	require.NoError(t, tr.ReserveExport())
}

func TestTracker_ReserveOrderHoldsCapUnderContention(t *testing.T) {
	tr := NewTracker(entity.NewAccount(""), DefaultLimits())

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.ReserveOrder() == nil {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(DefaultMaxFreeOrders), granted.Load())
	assert.Equal(t, DefaultMaxFreeOrders, tr.Snapshot().OrdersUsed)
}

func TestLimits_Normalized(t *testing.T) {
	tr := NewTracker(entity.Account{}, Limits{MaxFreeOrders: 3})

	assert.Equal(t, 3, tr.Limits().MaxFreeOrders)
	assert.Equal(t, DefaultMaxFreeExports, tr.Limits().MaxFreeExports)
}
