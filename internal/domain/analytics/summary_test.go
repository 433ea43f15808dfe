package analytics

import (
	"testing"
	"time"

	"livesales/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestDayThisMonth(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return time.Date(2026, 5, d, 10, 0, 0, 0, time.UTC) }

	orders := []entity.Order{
		order(t, tiktok, "A", 1, "30", day(12)),
		order(t, tiktok, "A", 1, "30", day(5)),
		order(t, tiktok, "A", 1, "10", day(18)),
		order(t, tiktok, "A", 1, "500", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
	}

	best, ok := BestDayThisMonth(orders, now)
	require.True(t, ok)
	assert.Equal(t, 5, best.Day.Day())
	assert.True(t, best.Revenue.Equal(decimal.NewFromInt(30)))
}

func TestTimeWindowSales(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(t, tiktok, "A", 2, "5", now.Add(-time.Hour)),
		order(t, tiktok, "A", 1, "20", now.AddDate(0, 0, -3)),
		order(t, tiktok, "A", 1, "40", now.AddDate(0, 0, -20)),
	}

	today := TodaySales(orders, now)
	assert.Equal(t, 1, today.OrderCount)
	assert.True(t, today.Revenue.Equal(decimal.NewFromInt(10)))

	week := ThisWeekSales(orders, now)
	assert.Equal(t, 2, week.OrderCount)
	assert.True(t, week.AverageOrderValue.Equal(decimal.NewFromInt(15)))

	month := ThisMonthSales(orders, now)
	assert.Equal(t, 3, month.OrderCount)
	assert.True(t, month.Revenue.Equal(decimal.NewFromInt(70)))
}

func TestSummarize_PlatformScope(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order(t, tiktok, "Shirt", 2, "10", now),
		order(t, instagram, "Hat", 1, "50", now.AddDate(0, 0, -2)),
	}

	all := Summarize(orders, Query{Now: now})
	assert.Equal(t, PeriodAll, all.Period)
	assert.Equal(t, 2, all.Summary.OrderCount)
	assert.Len(t, all.Platforms, 2)
	require.NotNil(t, all.BestDay)
	assert.Equal(t, 18, all.BestDay.Day.Day())

	id := tiktok.ID
	scoped := Summarize(orders, Query{Now: now, Period: PeriodToday, PlatformID: &id})
	assert.True(t, scoped.Summary.Revenue.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 1, scoped.Unfulfilled)
	require.Len(t, scoped.TopProducts, 1)
	assert.Equal(t, "Shirt", scoped.TopProducts[0].ProductName)
	assert.True(t, scoped.Outstanding.Equal(decimal.NewFromInt(20)))

	empty := Summarize(nil, Query{Now: now})
	assert.Nil(t, empty.BestDay)
	assert.True(t, empty.Summary.Revenue.IsZero())
}

func TestStockAlerts(t *testing.T) {
	catalog := entity.NewProductCatalog("Main")
	levels := map[int]int{0: 10, 1: 4, 2: 1, 3: 0}
	for slot, stock := range levels {
		p, err := entity.NewProduct(entity.ProductInput{
			ID:    catalog.Products[slot].ID,
			Name:  "P",
			Price: decimal.NewFromInt(1),
			Stock: stock,

			LowStockThreshold:      entity.DefaultLowStockThreshold,
			CriticalStockThreshold: entity.DefaultCriticalStockThreshold,
		})
		require.NoError(t, err)
		require.NoError(t, catalog.ReplaceProduct(p))
	}

	alerts := StockAlerts([]entity.ProductCatalog{catalog, {ID: uuid.New(), Name: "Empty"}})
	require.Len(t, alerts, 3)
	assert.Equal(t, entity.StockLow, alerts[0].Level)
	assert.Equal(t, entity.StockCritical, alerts[1].Level)
	assert.Equal(t, entity.StockOutOfStock, alerts[2].Level)
	assert.Equal(t, "Main", alerts[0].CatalogName)
}
