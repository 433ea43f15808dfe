package gormdb

import (
	"context"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetailsf("order %s already exists", order.ID)
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("order violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindOrderByID retrieves an order by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetailsf("order %s", id)
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	order := toOrderDomain(&orderM)

	return &order, nil
}

// ListOrders returns the orders matching filter, oldest first.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter) ([]entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).Model(&model.OrderModel{})
	if filter.PlatformID != nil {
		query = query.Where("platform_id = ?", *filter.PlatformID)
	}
	if filter.From != nil {
		query = query.Where("timestamp >= ?", filter.From.UTC())
	}
	if filter.To != nil {
		query = query.Where("timestamp <= ?", filter.To.UTC())
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", string(filter.PaymentStatus))
	}
	if filter.Fulfilled != nil {
		query = query.Where("is_fulfilled = ?", *filter.Fulfilled)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.
		Order("timestamp ASC").
		Order("id ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus writes the payment status and fulfillment flag only.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, fulfilled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"is_fulfilled":   fulfilled,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound.WithDetailsf("order %s", id)
	}

	return nil
}

// DeleteAllOrders removes every order.
func (repo *orderRepository) DeleteAllOrders(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.OrderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete orders")
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) entity.Order {
	return entity.Order{
		ID:            data.ID,
		ProductID:     data.ProductID,
		ProductName:   data.ProductName,
		Barcode:       data.Barcode,
		BuyerName:     data.BuyerName,
		PhoneNumber:   data.PhoneNumber,
		Address:       data.Address,
		CustomerNotes: data.CustomerNotes,
		Source:        entity.OrderSource(data.Source),
		Platform: entity.Platform{
			ID:       data.PlatformID,
			Name:     data.PlatformName,
			Icon:     data.PlatformIcon,
			Color:    entity.ColorTag(data.PlatformColor),
			IsCustom: data.PlatformIsCustom,
		},
		Quantity:      data.Quantity,
		PricePerUnit:  data.PricePerUnit,
		WasDiscounted: data.WasDiscounted,
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		IsFulfilled:   data.IsFulfilled,
		Timestamp:     data.Timestamp,
	}
}

// fromOrderDomain stores timestamps in UTC so range filters compare correctly on every driver.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:               data.ID,
		ProductID:        data.ProductID,
		ProductName:      data.ProductName,
		Barcode:          data.Barcode,
		BuyerName:        data.BuyerName,
		PhoneNumber:      data.PhoneNumber,
		Address:          data.Address,
		CustomerNotes:    data.CustomerNotes,
		Source:           string(data.Source),
		PlatformID:       data.Platform.ID,
		PlatformName:     data.Platform.Name,
		PlatformIcon:     data.Platform.Icon,
		PlatformColor:    string(data.Platform.Color),
		PlatformIsCustom: data.Platform.IsCustom,
		Quantity:         data.Quantity,
		PricePerUnit:     data.PricePerUnit,
		WasDiscounted:    data.WasDiscounted,
		PaymentStatus:    string(data.PaymentStatus),
		IsFulfilled:      data.IsFulfilled,
		Timestamp:        data.Timestamp.UTC(),
	}
}
