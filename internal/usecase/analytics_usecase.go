package usecase

import (
	"context"

	"livesales/internal/domain/analytics"

	"github.com/google/uuid"
)

// AnalyticsQuery selects the orders a figure is computed over
type AnalyticsQuery struct {
	Period     analytics.Period
	Range      *analytics.DateRange
	PlatformID *uuid.UUID
}

// AnalyticsUsecase defines the interface for sales analytics use cases
type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, query AnalyticsQuery) (*analytics.Dashboard, error)

	PlatformBreakdown(ctx context.Context, query AnalyticsQuery) ([]analytics.PlatformStat, error)

	// TopProducts uses the configured default when limit is not positive
	TopProducts(ctx context.Context, query AnalyticsQuery, limit int) ([]analytics.ProductStat, error)

	DailySeries(ctx context.Context, query AnalyticsQuery) ([]analytics.DailyRevenue, error)

	SourceBreakdown(ctx context.Context, query AnalyticsQuery) ([]analytics.SourceStat, error)

	// BestDayThisMonth returns nil when the trailing month has no orders
	BestDayThisMonth(ctx context.Context, platformID *uuid.UUID) (*analytics.DailyRevenue, error)
}
