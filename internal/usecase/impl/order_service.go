package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	deliverycontext "livesales/internal/delivery/context"
	"livesales/internal/domain/entitlement"
	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/domain/service"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const exportTimeLayout = "20060102-150405"

var exportHeader = []string{
	"order_id", "timestamp", "platform", "source", "product", "barcode",
	"buyer", "phone", "address", "notes", "quantity", "price_per_unit",
	"total", "discounted", "payment_status", "fulfilled",
}

type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	accountRepo repository.AccountRepository
	tracker     *entitlement.Tracker
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	AccountRepo repository.AccountRepository
	Tracker     *entitlement.Tracker
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		accountRepo: params.AccountRepo,
		tracker:     params.Tracker,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (s *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

// CreateOrder stores the order, lowers stock and persists usage counters in one transaction.
// The reservation taken from the tracker is given back if anything fails.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order input is required")
	}

	if err := s.tracker.ReserveOrder(); err != nil {
		return nil, err
	}

	var created entity.Order
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		platform, err := repoFactory.NewPlatformRepository().FindPlatformByID(ctx, input.PlatformID)
		if err != nil {
			return err
		}

		orderInput, err := s.buildOrderInput(ctx, repoFactory.NewCatalogRepository(), input, *platform)
		if err != nil {
			return err
		}

		order, err := entity.NewOrder(orderInput)
		if err != nil {
			return err
		}

		if err := repoFactory.NewOrderRepository().CreateOrder(ctx, &order); err != nil {
			return err
		}
		if order.ProductID != uuid.Nil {
			if err := repoFactory.NewCatalogRepository().DecrementStock(ctx, order.ProductID, order.Quantity); err != nil {
				return err
			}
		}

		if err := repoFactory.NewAccountRepository().IncrementUsage(ctx, 1, 0); err != nil {
			return err
		}
		created = order

		return nil
	})
	if err != nil {
		s.tracker.ReleaseOrder()

		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.log(ctx).Info("Order created",
		slog.String("order_id", created.ID.String()),
		slog.String("platform", created.Platform.Name),
		slog.Int("quantity", created.Quantity),
	)

	s.publish(ctx, &service.SalesEvent{
		Type:         service.EventOrderAdded,
		OrderID:      created.ID.String(),
		PlatformName: created.Platform.Name,
		Total:        created.TotalPrice().String(),
	})

	return &created, nil
}

// buildOrderInput copies the product snapshot when the order references a catalog product.
func (s *orderService) buildOrderInput(
	ctx context.Context,
	catalogRepo repository.CatalogRepository,
	input *usecase.CreateOrderInput,
	platform entity.Platform,
) (entity.OrderInput, error) {
	in := entity.OrderInput{
		ProductName:   input.ProductName,
		Barcode:       input.Barcode,
		WasDiscounted: input.WasDiscounted,
		BuyerName:     input.BuyerName,
		PhoneNumber:   input.PhoneNumber,
		Address:       input.Address,
		CustomerNotes: input.CustomerNotes,
		Source:        input.Source,
		Platform:      platform,
		Quantity:      input.Quantity,
		PaymentStatus: input.PaymentStatus,
		IsFulfilled:   input.IsFulfilled,
		Timestamp:     s.now(),
	}
	if input.Timestamp != nil {
		in.Timestamp = *input.Timestamp
	}

	if input.ProductID == nil {
		if input.PricePerUnit == nil {
			return entity.OrderInput{}, domainerrors.ErrValidationFailed.WithDetails("price per unit is required without a product")
		}
		in.PricePerUnit = *input.PricePerUnit

		return in, nil
	}

	product, _, err := catalogRepo.FindProductByID(ctx, *input.ProductID)
	if err != nil {
		return entity.OrderInput{}, err
	}
	if product.IsEmpty() {
		return entity.OrderInput{}, domainerrors.ErrValidationFailed.WithDetailsf("product slot %s is not configured", product.ID)
	}

	in.ProductID = product.ID
	in.ProductName = product.Name
	in.Barcode = product.Barcode
	in.PricePerUnit = product.FinalPrice()
	in.WasDiscounted = product.HasDiscount()
	if input.PricePerUnit != nil {
		in.PricePerUnit = *input.PricePerUnit
		in.WasDiscounted = input.WasDiscounted
	}

	return in, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error) {
	if err := validateOrderFilter(filter); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if input == nil || (input.PaymentStatus == nil && input.IsFulfilled == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment status or fulfillment is required")
	}

	var updated *entity.Order
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := orderRepo.FindOrderByID(ctx, id)
		if err != nil {
			return err
		}
		if input.PaymentStatus != nil {
			if err := order.SetPaymentStatus(*input.PaymentStatus); err != nil {
				return err
			}
		}
		if input.IsFulfilled != nil {
			order.SetFulfilled(*input.IsFulfilled)
		}
		if err := orderRepo.UpdateOrderStatus(ctx, id, order.PaymentStatus, order.IsFulfilled); err != nil {
			return err
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return updated, nil
}

// ExportOrdersCSV renders the matching orders. The export reservation is given back if
// rendering or persisting the usage counters fails.
func (s *orderService) ExportOrdersCSV(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderExport, error) {
	if err := validateOrderFilter(filter); err != nil {
		return nil, err
	}

	if err := s.tracker.ReserveExport(); err != nil {
		return nil, err
	}

	export, err := s.renderExport(ctx, filter)
	if err != nil {
		s.tracker.ReleaseExport()

		return nil, err
	}

	if err := s.accountRepo.IncrementUsage(ctx, 0, 1); err != nil {
		s.tracker.ReleaseExport()

		return nil, fmt.Errorf("failed to persist export usage: %w", err)
	}

	s.log(ctx).Info("Orders exported", slog.Int("orders", export.Orders))

	s.publish(ctx, &service.SalesEvent{
		Type:           service.EventExportCompleted,
		ExportedOrders: export.Orders,
	})

	return export, nil
}

func (s *orderService) renderExport(ctx context.Context, filter repository.OrderFilter) (*usecase.OrderExport, error) {
	orders, err := s.orderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}
	for _, o := range orders {
		notes := ""
		if o.CustomerNotes != nil {
			notes = *o.CustomerNotes
		}
		record := []string{
			o.ID.String(),
			o.Timestamp.UTC().Format(time.RFC3339),
			o.Platform.Name,
			string(o.Source),
			o.ProductName,
			o.Barcode,
			o.BuyerName,
			o.PhoneNumber,
			o.Address,
			notes,
			strconv.Itoa(o.Quantity),
			o.PricePerUnit.StringFixed(2),
			o.TotalPrice().StringFixed(2),
			strconv.FormatBool(o.WasDiscounted),
			string(o.PaymentStatus),
			strconv.FormatBool(o.IsFulfilled),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write order %s: %w", o.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}

	return &usecase.OrderExport{
		Filename: "orders-" + s.now().UTC().Format(exportTimeLayout) + ".csv",
		Content:  buf.Bytes(),
		Orders:   len(orders),
	}, nil
}

// publish fills the tracing and allowance fields and sends the event. Failures are logged
// only; the state change has already been committed.
func (s *orderService) publish(ctx context.Context, event *service.SalesEvent) {
	event.RequestID = deliverycontext.RequestID(ctx)
	event.OccurredAt = s.now()
	event.RemainingFreeOrders, event.RemainingFreeExports = -1, -1
	if !s.tracker.IsPro() {
		event.RemainingFreeOrders = s.tracker.RemainingFreeOrders()
		event.RemainingFreeExports = s.tracker.RemainingFreeExports()
	}

	if err := s.publisher.PublishSalesEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish sales event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func validateOrderFilter(filter repository.OrderFilter) error {
	if filter.PaymentStatus != "" && !filter.PaymentStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetailsf("unknown payment status %q", filter.PaymentStatus)
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return domainerrors.ErrValidationFailed.WithDetails("from must not be after to")
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("limit and offset must not be negative")
	}

	return nil
}
