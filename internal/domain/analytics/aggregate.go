// Package analytics turns a snapshot of orders into the revenue figures, breakdowns and
// time series the dashboard shows. Every function is pure: it reads the slice it is given,
// never mutates it and never fails. Empty input yields zero values and empty slices.
package analytics

import (
	"slices"
	"time"

	"livesales/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTopProductsLimit is used when TopProducts gets a non-positive limit.
const DefaultTopProductsLimit = 5

// PlatformStat is revenue and order count for one platform.
type PlatformStat struct {
	Platform   entity.Platform `json:"platform"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

// ProductStat is the quantity sold and revenue for one product name.
type ProductStat struct {
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// DailyRevenue is the revenue of one local calendar day.
type DailyRevenue struct {
	Day     time.Time       `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SourceStat is the order count and share for one order source.
type SourceStat struct {
	Source  entity.OrderSource `json:"source"`
	Count   int                `json:"count"`
	Percent float64            `json:"percent"`
}

// FilterByPlatform keeps orders of the given platform. A nil ID keeps everything.
func FilterByPlatform(orders []entity.Order, platformID *uuid.UUID) []entity.Order {
	if platformID == nil {
		return orders
	}

	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Platform.ID == *platformID {
			out = append(out, o)
		}
	}

	return out
}

// TotalRevenue sums quantity × unit price.
func TotalRevenue(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice())
	}

	return total
}

// AverageOrderValue is TotalRevenue divided by the order count, or zero without orders.
func AverageOrderValue(orders []entity.Order) decimal.Decimal {
	if len(orders) == 0 {
		return decimal.Zero
	}

	return TotalRevenue(orders).Div(decimal.NewFromInt(int64(len(orders))))
}

// PlatformBreakdown groups by platform ID, sorted by revenue descending.
// Ties keep the order in which the platforms first appear.
func PlatformBreakdown(orders []entity.Order) []PlatformStat {
	index := make(map[uuid.UUID]int)
	stats := make([]PlatformStat, 0)

	for _, o := range orders {
		i, ok := index[o.Platform.ID]
		if !ok {
			i = len(stats)
			index[o.Platform.ID] = i
			stats = append(stats, PlatformStat{Platform: o.Platform, Revenue: decimal.Zero})
		}
		stats[i].Revenue = stats[i].Revenue.Add(o.TotalPrice())
		stats[i].OrderCount++
	}

	slices.SortStableFunc(stats, func(a, b PlatformStat) int {
		return b.Revenue.Cmp(a.Revenue)
	})

	return stats
}

// TopProducts groups by product name, sorted by quantity descending and truncated to limit.
// Ties keep first-appearance order.
func TopProducts(orders []entity.Order, limit int) []ProductStat {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	index := make(map[string]int)
	stats := make([]ProductStat, 0)

	for _, o := range orders {
		i, ok := index[o.ProductName]
		if !ok {
			i = len(stats)
			index[o.ProductName] = i
			stats = append(stats, ProductStat{ProductName: o.ProductName, Revenue: decimal.Zero})
		}
		stats[i].QuantitySold += o.Quantity
		stats[i].Revenue = stats[i].Revenue.Add(o.TotalPrice())
	}

	slices.SortStableFunc(stats, func(a, b ProductStat) int {
		return b.QuantitySold - a.QuantitySold
	})

	if len(stats) > limit {
		stats = stats[:limit]
	}

	return stats
}

// DailySeries groups revenue by calendar day in loc, ascending. Days without orders are
// absent from the result; callers wanting a dense series fill the gaps themselves.
func DailySeries(orders []entity.Order, loc *time.Location) []DailyRevenue {
	if loc == nil {
		loc = time.Local
	}

	index := make(map[time.Time]int)
	series := make([]DailyRevenue, 0)

	for _, o := range orders {
		day := StartOfDay(o.Timestamp, loc)
		i, ok := index[day]
		if !ok {
			i = len(series)
			index[day] = i
			series = append(series, DailyRevenue{Day: day, Revenue: decimal.Zero})
		}
		series[i].Revenue = series[i].Revenue.Add(o.TotalPrice())
	}

	slices.SortStableFunc(series, func(a, b DailyRevenue) int {
		return a.Day.Compare(b.Day)
	})

	return series
}

// OrderSourceBreakdown counts orders per source, sorted by count descending with stable ties.
func OrderSourceBreakdown(orders []entity.Order) []SourceStat {
	index := make(map[entity.OrderSource]int)
	stats := make([]SourceStat, 0)

	for _, o := range orders {
		i, ok := index[o.Source]
		if !ok {
			i = len(stats)
			index[o.Source] = i
			stats = append(stats, SourceStat{Source: o.Source})
		}
		stats[i].Count++
	}

	total := len(orders)
	for i := range stats {
		if total > 0 {
			stats[i].Percent = float64(stats[i].Count) / float64(total) * 100
		}
	}

	slices.SortStableFunc(stats, func(a, b SourceStat) int {
		return b.Count - a.Count
	})

	return stats
}

// OutstandingRevenue sums the orders that are not paid yet.
func OutstandingRevenue(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if !o.IsPaid() {
			total = total.Add(o.TotalPrice())
		}
	}

	return total
}

// FulfillmentCounts returns how many orders are fulfilled and how many are still open.
func FulfillmentCounts(orders []entity.Order) (fulfilled, open int) {
	for _, o := range orders {
		if o.IsFulfilled {
			fulfilled++
		} else {
			open++
		}
	}

	return fulfilled, open
}
