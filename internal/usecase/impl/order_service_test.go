package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/domain/service"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var orderNow = time.Date(2026, time.March, 14, 18, 30, 0, 0, time.UTC)

func manualOrder(price string) *usecase.CreateOrderInput {
	p := money(price)

	return &usecase.CreateOrderInput{
		ProductName:  "Sticker pack",
		PricePerUnit: &p,
		PlatformID:   tiktok().ID,
		BuyerName:    "Robin",
		Quantity:     1,
	}
}

func TestOrderService_CreateOrderFromProduct(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	svc := env.orderService(orderNow)

	_, product := env.seedProduct(t, entity.ProductInput{
		Name:          "Hoodie",
		Price:         money("50"),
		Stock:         4,
		DiscountType:  entity.DiscountPercentage,
		DiscountValue: money("20"),
		Barcode:       "4006381333931",
	})

	var published *service.SalesEvent
	env.publisher.EXPECT().
		PublishSalesEvent(mock.Anything, mock.AnythingOfType("*service.SalesEvent")).
		Run(func(_ context.Context, event *service.SalesEvent) { published = event }).
		Return(nil).
		Once()

	order, err := svc.CreateOrder(ctx, &usecase.CreateOrderInput{
		ProductID:  &product.ID,
		PlatformID: tiktok().ID,
		BuyerName:  "Sam",
		Quantity:   3,
		Source:     entity.SourceInstagramDM,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hoodie", order.ProductName)
	assert.Equal(t, "4006381333931", order.Barcode)
	assert.True(t, order.PricePerUnit.Equal(money("40")))
	assert.True(t, order.WasDiscounted)
	assert.Equal(t, tiktok(), order.Platform)
	assert.Equal(t, entity.PaymentUnset, order.PaymentStatus)
	assert.True(t, order.Timestamp.Equal(orderNow))

	stored, err := env.orderRepo.FindOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, order.Equal(*stored))

	found, _, err := env.catalogRepo.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.Stock)

	account, err := env.accountRepo.GetAccount(ctx, "$")
	require.NoError(t, err)
	assert.Equal(t, 1, account.OrdersUsed)

	require.NotNil(t, published)
	assert.Equal(t, service.EventOrderAdded, published.Type)
	assert.Equal(t, order.ID.String(), published.OrderID)
	assert.Equal(t, "120", published.Total)
	assert.Equal(t, 2, published.RemainingFreeOrders)
}

func TestOrderService_CreateOrderStockFloorsAtZero(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()

	_, product := env.seedProduct(t, entity.ProductInput{Name: "Pin", Price: money("3"), Stock: 1})

	_, err := env.orderService(orderNow).CreateOrder(ctx, &usecase.CreateOrderInput{
		ProductID: &product.ID, PlatformID: tiktok().ID, Quantity: 5,
	})
	require.NoError(t, err)

	found, _, err := env.catalogRepo.FindProductByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stock)
}

func TestOrderService_CreateOrderPriceOverride(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()

	_, product := env.seedProduct(t, entity.ProductInput{Name: "Tote", Price: money("20"), Stock: 9})
	override := money("15.50")

	order, err := env.orderService(orderNow).CreateOrder(context.Background(), &usecase.CreateOrderInput{
		ProductID:     &product.ID,
		PricePerUnit:  &override,
		WasDiscounted: true,
		PlatformID:    tiktok().ID,
		Quantity:      2,
	})
	require.NoError(t, err)
	assert.True(t, order.PricePerUnit.Equal(override))
	assert.True(t, order.WasDiscounted)
	assert.True(t, order.TotalPrice().Equal(money("31")))
}

func TestOrderService_CreateOrderValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	svc := env.orderService(orderNow)

	catalog := entity.NewProductCatalog("Empty")
	require.NoError(t, env.catalogRepo.CreateCatalog(ctx, &catalog))
	emptySlot := catalog.Products[0].ID
	missing := uuid.New()

	tests := []struct {
		name    string
		input   *usecase.CreateOrderInput
		wantErr error
	}{
		{"nil input", nil, domainerrors.ErrValidationFailed},
		{"no price without product", &usecase.CreateOrderInput{ProductName: "X", PlatformID: tiktok().ID, Quantity: 1}, domainerrors.ErrValidationFailed},
		{"zero quantity", func() *usecase.CreateOrderInput { in := manualOrder("5"); in.Quantity = 0; return in }(), domainerrors.ErrValidationFailed},
		{"unknown platform", func() *usecase.CreateOrderInput { in := manualOrder("5"); in.PlatformID = uuid.New(); return in }(), domainerrors.ErrPlatformNotFound},
		{"unknown product", &usecase.CreateOrderInput{ProductID: &missing, PlatformID: tiktok().ID, Quantity: 1}, domainerrors.ErrProductNotFound},
		{"empty slot", &usecase.CreateOrderInput{ProductID: &emptySlot, PlatformID: tiktok().ID, Quantity: 1}, domainerrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 0, env.tracker.Snapshot().OrdersUsed, "failed orders must not consume the free tier")
	orders, err := env.orderRepo.ListOrders(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_FreeTierLimit(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	svc := env.orderService(orderNow)

	for range env.cfg.Entitlement.MaxFreeOrders {
		_, err := svc.CreateOrder(ctx, manualOrder("2"))
		require.NoError(t, err)
	}

	_, err := svc.CreateOrder(ctx, manualOrder("2"))
	assert.ErrorIs(t, err, domainerrors.ErrOrderLimitReached)

	env.tracker.UpgradeToPro()
	_, err = svc.CreateOrder(ctx, manualOrder("2"))
	assert.NoError(t, err)
}

func TestOrderService_ConcurrentCreateRespectsLimit(t *testing.T) {
	cfg := newTestConfig()
	cfg.Entitlement.MaxFreeOrders = 5
	env := newTestEnv(t, cfg)
	env.allowEvents()
	svc := env.orderService(orderNow)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		limited   atomic.Int32
	)
	for range 12 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateOrder(context.Background(), manualOrder("1"))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrOrderLimitReached):
				limited.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 5, succeeded.Load())
	assert.EqualValues(t, 7, limited.Load())

	orders, err := env.orderRepo.ListOrders(context.Background(), repository.OrderFilter{})
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

func TestOrderService_PublishFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t, nil)
	env.publisher.EXPECT().PublishSalesEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	order, err := env.orderService(orderNow).CreateOrder(context.Background(), manualOrder("8"))
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t, nil)
	env.allowEvents()
	ctx := context.Background()
	svc := env.orderService(orderNow)

	order, err := svc.CreateOrder(ctx, manualOrder("8"))
	require.NoError(t, err)

	paid := entity.PaymentPaid
	updated, err := svc.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{PaymentStatus: &paid})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, updated.PaymentStatus)
	assert.False(t, updated.IsFulfilled)

	fulfilled := true
	updated, err = svc.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{IsFulfilled: &fulfilled})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, updated.PaymentStatus)
	assert.True(t, updated.IsFulfilled)

	stored, err := svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, updated.Equal(*stored))

	bogus := entity.PaymentStatus("refunded")
	_, err = svc.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{PaymentStatus: &bogus})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.UpdateOrderStatus(ctx, order.ID, &usecase.UpdateOrderStatusInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.UpdateOrderStatus(ctx, uuid.New(), &usecase.UpdateOrderStatusInput{IsFulfilled: &fulfilled})
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrdersRejectsBadFilter(t *testing.T) {
	env := newTestEnv(t, nil)
	svc := env.orderService(orderNow)

	later, earlier := orderNow, orderNow.Add(-time.Hour)
	_, err := svc.ListOrders(context.Background(), repository.OrderFilter{From: &later, To: &earlier})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.ListOrders(context.Background(), repository.OrderFilter{PaymentStatus: "maybe"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_ExportOrdersCSV(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()
	svc := env.orderService(orderNow)

	env.publisher.EXPECT().
		PublishSalesEvent(mock.Anything, mock.MatchedBy(func(e *service.SalesEvent) bool { return e.Type == service.EventOrderAdded })).
		Return(nil).
		Times(2)
	env.publisher.EXPECT().
		PublishSalesEvent(mock.Anything, mock.MatchedBy(func(e *service.SalesEvent) bool {
			return e.Type == service.EventExportCompleted && e.ExportedOrders == 2 && e.RemainingFreeExports == 0
		})).
		Return(nil).
		Once()

	note := "gift wrap, please"
	in := manualOrder("9.5")
	in.CustomerNotes = &note
	_, err := svc.CreateOrder(ctx, in)
	require.NoError(t, err)
	second := manualOrder("3")
	secondAt := orderNow.Add(time.Minute)
	second.Timestamp = &secondAt
	_, err = svc.CreateOrder(ctx, second)
	require.NoError(t, err)

	export, err := svc.ExportOrdersCSV(ctx, repository.OrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, export.Orders)
	assert.Equal(t, "orders-20260314-183000.csv", export.Filename)

	records, err := csv.NewReader(bytes.NewReader(export.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])
	assert.Contains(t, records[1], "gift wrap, please")
	assert.Contains(t, records[1], "9.50")

	account, err := env.accountRepo.GetAccount(ctx, "$")
	require.NoError(t, err)
	assert.Equal(t, 1, account.ExportsUsed)

	_, err = svc.ExportOrdersCSV(ctx, repository.OrderFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrExportLimitReached)
}
