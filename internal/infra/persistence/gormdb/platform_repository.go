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
	"gorm.io/gorm/clause"
)

// platformRepository implements the repository.PlatformRepository interface.
type platformRepository struct {
	db *gorm.DB
}

// NewPlatformRepository is the constructor for platformRepository.
func NewPlatformRepository(db *gorm.DB) repository.PlatformRepository {
	return &platformRepository{
		db: db,
	}
}

// ListPlatforms returns built-in platforms first, then custom ones in creation order.
func (repo *platformRepository) ListPlatforms(ctx context.Context) ([]entity.Platform, error) {
	var platformModels []*model.PlatformModel

	if err := repo.db.WithContext(ctx).
		Order("is_custom ASC").
		Order("position ASC").
		Order("created_at ASC").
		Find(&platformModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list platforms")
	}

	platforms := make([]entity.Platform, 0, len(platformModels))
	for _, platformM := range platformModels {
		platforms = append(platforms, toPlatformDomain(platformM))
	}

	return platforms, nil
}

// FindPlatformByID retrieves a platform by its unique ID.
func (repo *platformRepository) FindPlatformByID(ctx context.Context, id uuid.UUID) (*entity.Platform, error) {
	var platformM model.PlatformModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&platformM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPlatformNotFound.WithDetailsf("platform %s", id)
		}

		return nil, errors.Wrap(err, "failed to find platform by ID")
	}

	platform := toPlatformDomain(&platformM)

	return &platform, nil
}

// UpsertPlatforms inserts the platforms or updates them in place by ID, keeping the slice order.
func (repo *platformRepository) UpsertPlatforms(ctx context.Context, platforms []entity.Platform) error {
	if len(platforms) == 0 {
		return nil
	}

	platformModels := make([]*model.PlatformModel, 0, len(platforms))
	for i := range platforms {
		platformM := fromPlatformDomain(&platforms[i])
		platformM.Position = i
		platformModels = append(platformModels, platformM)
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "icon", "color", "is_custom", "position", "updated_at"}),
		}).
		Create(&platformModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert platforms")
	}

	return nil
}

// CreatePlatform appends a platform after every existing one.
func (repo *platformRepository) CreatePlatform(ctx context.Context, platform *entity.Platform) error {
	var maxPosition int
	if err := repo.db.WithContext(ctx).
		Model(&model.PlatformModel{}).
		Select("COALESCE(MAX(position), -1)").
		Row().
		Scan(&maxPosition); err != nil {
		return errors.Wrap(err, "failed to read platform positions")
	}

	platformM := fromPlatformDomain(platform)
	platformM.Position = maxPosition + 1

	if err := repo.db.WithContext(ctx).Create(platformM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPlatformNameTaken.WithDetailsf("platform %s already exists", platform.ID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create platform")
	}

	return nil
}

// DeletePlatform removes a platform by its ID.
func (repo *platformRepository) DeletePlatform(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlatformModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete platform")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrPlatformNotFound.WithDetailsf("platform %s", id)
	}

	return nil
}

// DeleteCustomPlatforms removes every user-defined platform.
func (repo *platformRepository) DeleteCustomPlatforms(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("is_custom = ?", true).
		Delete(&model.PlatformModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete custom platforms")
	}

	return nil
}

// --- Mapper Functions ---

func toPlatformDomain(data *model.PlatformModel) entity.Platform {
	return entity.Platform{
		ID:       data.ID,
		Name:     data.Name,
		Icon:     data.Icon,
		Color:    entity.ColorTag(data.Color),
		IsCustom: data.IsCustom,
	}
}

func fromPlatformDomain(data *entity.Platform) *model.PlatformModel {
	return &model.PlatformModel{
		ID:       data.ID,
		Name:     data.Name,
		Icon:     data.Icon,
		Color:    string(data.Color),
		IsCustom: data.IsCustom,
	}
}
