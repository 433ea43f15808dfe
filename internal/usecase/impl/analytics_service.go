package impl

import (
	"context"
	"fmt"
	"time"

	"livesales/config"
	"livesales/internal/domain/analytics"
	"livesales/internal/domain/entity"
	"livesales/internal/domain/repository"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type analyticsService struct {
	orderRepo repository.OrderRepository
	location  *time.Location
	topLimit  int
	now       func() time.Time
}

// AnalyticsServiceParams holds dependencies for AnalyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Config    *config.Config
}

// NewAnalyticsService creates a new analytics service. Calendar figures are cut in the
// configured analytics timezone.
func NewAnalyticsService(params AnalyticsServiceParams) (usecase.AnalyticsUsecase, error) {
	location, err := params.Config.Analytics.Location()
	if err != nil {
		return nil, err
	}

	topLimit := params.Config.Analytics.TopProductsLimit
	if topLimit <= 0 {
		topLimit = analytics.DefaultTopProductsLimit
	}

	return &analyticsService{
		orderRepo: params.OrderRepo,
		location:  location,
		topLimit:  topLimit,
		now:       time.Now,
	}, nil
}

func (s *analyticsService) Dashboard(ctx context.Context, query usecase.AnalyticsQuery) (*analytics.Dashboard, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := analytics.Summarize(orders, analytics.Query{
		Period:     query.Period,
		Range:      query.Range,
		PlatformID: query.PlatformID,
		Now:        s.clock(),
		TopLimit:   s.topLimit,
	})

	return &dashboard, nil
}

func (s *analyticsService) PlatformBreakdown(ctx context.Context, query usecase.AnalyticsQuery) ([]analytics.PlatformStat, error) {
	orders, err := s.selectOrders(ctx, query)
	if err != nil {
		return nil, err
	}

	return analytics.PlatformBreakdown(orders), nil
}

func (s *analyticsService) TopProducts(ctx context.Context, query usecase.AnalyticsQuery, limit int) ([]analytics.ProductStat, error) {
	orders, err := s.selectOrders(ctx, query)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.topLimit
	}

	return analytics.TopProducts(orders, limit), nil
}

func (s *analyticsService) DailySeries(ctx context.Context, query usecase.AnalyticsQuery) ([]analytics.DailyRevenue, error) {
	orders, err := s.selectOrders(ctx, query)
	if err != nil {
		return nil, err
	}

	return analytics.DailySeries(orders, s.location), nil
}

func (s *analyticsService) SourceBreakdown(ctx context.Context, query usecase.AnalyticsQuery) ([]analytics.SourceStat, error) {
	orders, err := s.selectOrders(ctx, query)
	if err != nil {
		return nil, err
	}

	return analytics.OrderSourceBreakdown(orders), nil
}

func (s *analyticsService) BestDayThisMonth(ctx context.Context, platformID *uuid.UUID) (*analytics.DailyRevenue, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	best, ok := analytics.BestDayThisMonth(analytics.FilterByPlatform(orders, platformID), s.clock())
	if !ok {
		return nil, nil
	}

	return &best, nil
}

func (s *analyticsService) clock() time.Time {
	return s.now().In(s.location)
}

func (s *analyticsService) loadOrders(ctx context.Context) ([]entity.Order, error) {
	orders, err := s.orderRepo.ListOrders(ctx, repository.OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	return orders, nil
}

// selectOrders applies the platform scope first, then the period window.
func (s *analyticsService) selectOrders(ctx context.Context, query usecase.AnalyticsQuery) ([]entity.Order, error) {
	orders, err := s.loadOrders(ctx)
	if err != nil {
		return nil, err
	}

	period := query.Period
	if period == "" {
		period = analytics.PeriodAll
	}
	scoped := analytics.FilterByPlatform(orders, query.PlatformID)

	return analytics.FilterByPeriod(scoped, period, s.clock(), query.Range), nil
}
