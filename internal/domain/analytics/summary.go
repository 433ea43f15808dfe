package analytics

import (
	"time"

	"livesales/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PeriodSummary is the headline figure set for one time window.
type PeriodSummary struct {
	Revenue           decimal.Decimal `json:"revenue"`
	OrderCount        int             `json:"order_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// Summary computes the headline figures of an already filtered order set.
func Summary(orders []entity.Order) PeriodSummary {
	return PeriodSummary{
		Revenue:           TotalRevenue(orders),
		OrderCount:        len(orders),
		AverageOrderValue: AverageOrderValue(orders),
	}
}

func TodaySales(orders []entity.Order, now time.Time) PeriodSummary {
	return Summary(FilterByPeriod(orders, PeriodToday, now, nil))
}

func ThisWeekSales(orders []entity.Order, now time.Time) PeriodSummary {
	return Summary(FilterByPeriod(orders, PeriodWeek, now, nil))
}

func ThisMonthSales(orders []entity.Order, now time.Time) PeriodSummary {
	return Summary(FilterByPeriod(orders, PeriodMonth, now, nil))
}

// BestDayThisMonth returns the highest-revenue day of the trailing month.
// The earliest day wins a tie. ok is false when the month has no orders.
func BestDayThisMonth(orders []entity.Order, now time.Time) (best DailyRevenue, ok bool) {
	series := DailySeries(FilterByPeriod(orders, PeriodMonth, now, nil), now.Location())
	for _, day := range series {
		if !ok || day.Revenue.GreaterThan(best.Revenue) {
			best, ok = day, true
		}
	}

	return best, ok
}

// Query selects the slice of the order book a Dashboard is computed over.
type Query struct {
	Period     Period
	Range      *DateRange
	PlatformID *uuid.UUID
	Now        time.Time
	TopLimit   int
}

// Dashboard bundles every figure the overview screen shows for one query.
type Dashboard struct {
	Period      Period          `json:"period"`
	Summary     PeriodSummary   `json:"summary"`
	Today       PeriodSummary   `json:"today"`
	ThisWeek    PeriodSummary   `json:"this_week"`
	ThisMonth   PeriodSummary   `json:"this_month"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Fulfilled   int             `json:"fulfilled"`
	Unfulfilled int             `json:"unfulfilled"`
	Platforms   []PlatformStat  `json:"platforms"`
	TopProducts []ProductStat   `json:"top_products"`
	Sources     []SourceStat    `json:"sources"`
	Daily       []DailyRevenue  `json:"daily"`
	BestDay     *DailyRevenue   `json:"best_day,omitempty"`
}

// Summarize composes a Dashboard. The platform filter applies to every figure; the period
// filter applies to everything except the fixed today/week/month tiles and the best day.
func Summarize(orders []entity.Order, q Query) Dashboard {
	if q.Period == "" {
		q.Period = PeriodAll
	}

	scoped := FilterByPlatform(orders, q.PlatformID)
	inPeriod := FilterByPeriod(scoped, q.Period, q.Now, q.Range)
	fulfilled, open := FulfillmentCounts(inPeriod)

	d := Dashboard{
		Period:      q.Period,
		Summary:     Summary(inPeriod),
		Today:       TodaySales(scoped, q.Now),
		ThisWeek:    ThisWeekSales(scoped, q.Now),
		ThisMonth:   ThisMonthSales(scoped, q.Now),
		Outstanding: OutstandingRevenue(inPeriod),
		Fulfilled:   fulfilled,
		Unfulfilled: open,
		Platforms:   PlatformBreakdown(inPeriod),
		TopProducts: TopProducts(inPeriod, q.TopLimit),
		Sources:     OrderSourceBreakdown(inPeriod),
		Daily:       DailySeries(inPeriod, q.Now.Location()),
	}
	if best, ok := BestDayThisMonth(scoped, q.Now); ok {
		d.BestDay = &best
	}

	return d
}

// StockAlert flags a configured product whose stock fell to or below a threshold.
type StockAlert struct {
	CatalogID   uuid.UUID         `json:"catalog_id"`
	CatalogName string            `json:"catalog_name"`
	Product     entity.Product    `json:"product"`
	Level       entity.StockLevel `json:"level"`
}

// StockAlerts lists every configured product that is not at a normal stock level, in
// catalog order.
func StockAlerts(catalogs []entity.ProductCatalog) []StockAlert {
	alerts := make([]StockAlert, 0)
	for _, c := range catalogs {
		for _, p := range c.ConfiguredProducts() {
			level := p.StockLevel()
			if level == entity.StockNormal {
				continue
			}
			alerts = append(alerts, StockAlert{
				CatalogID:   c.ID,
				CatalogName: c.Name,
				Product:     p,
				Level:       level,
			})
		}
	}

	return alerts
}
