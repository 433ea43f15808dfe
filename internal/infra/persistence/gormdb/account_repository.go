package gormdb

import (
	"context"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errAccountMissing = errors.New("account row is missing")

// accountRepository implements the repository.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// GetAccount returns the stored account. The row is created on first read so the
// targeted updates below always have something to update.
func (repo *accountRepository) GetAccount(ctx context.Context, currencySymbol string) (*entity.Account, error) {
	fresh := entity.NewAccount(currencySymbol)
	accountM := model.AccountModel{
		ID:             model.AccountSingletonID,
		CurrencySymbol: fresh.CurrencySymbol,
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", model.AccountSingletonID).
		FirstOrCreate(&accountM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return &entity.Account{
		IsPro:          accountM.IsPro,
		OrdersUsed:     accountM.OrdersUsed,
		ExportsUsed:    accountM.ExportsUsed,
		CurrencySymbol: accountM.CurrencySymbol,
	}, nil
}

// SaveAccount writes the account row, creating it on first save.
func (repo *accountRepository) SaveAccount(ctx context.Context, account *entity.Account) error {
	accountM := &model.AccountModel{
		ID:             model.AccountSingletonID,
		IsPro:          account.IsPro,
		OrdersUsed:     account.OrdersUsed,
		ExportsUsed:    account.ExportsUsed,
		CurrencySymbol: account.CurrencySymbol,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_pro", "orders_used", "exports_used", "currency_symbol", "updated_at"}),
		}).
		Create(accountM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save account")
	}

	return nil
}

// IncrementUsage adds to the counters in SQL, never from a value read earlier.
func (repo *accountRepository) IncrementUsage(ctx context.Context, orders, exports int) error {
	return repo.update(ctx, map[string]any{
		"orders_used":  gorm.Expr("orders_used + ?", orders),
		"exports_used": gorm.Expr("exports_used + ?", exports),
	}, "failed to record usage")
}

func (repo *accountRepository) ResetUsage(ctx context.Context) error {
	return repo.update(ctx, map[string]any{
		"orders_used":  0,
		"exports_used": 0,
	}, "failed to reset usage")
}

func (repo *accountRepository) SetPro(ctx context.Context, isPro bool) error {
	return repo.update(ctx, map[string]any{"is_pro": isPro}, "failed to update plan")
}

func (repo *accountRepository) SetCurrencySymbol(ctx context.Context, symbol string) error {
	return repo.update(ctx, map[string]any{"currency_symbol": symbol}, "failed to update currency symbol")
}

func (repo *accountRepository) update(ctx context.Context, columns map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", model.AccountSingletonID).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}
	if result.RowsAffected == 0 {
		return domainerrors.NewDatabaseExecuteError(errAccountMissing, msg)
	}

	return nil
}
