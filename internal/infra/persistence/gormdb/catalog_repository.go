package gormdb

import (
	"context"
	"strings"

	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

func orderedSlots(db *gorm.DB) *gorm.DB {
	return db.Order("slot ASC")
}

// CreateCatalog persists a catalog with all its slots after every existing catalog.
func (repo *catalogRepository) CreateCatalog(ctx context.Context, catalog *entity.ProductCatalog) error {
	var maxPosition int
	if err := repo.db.WithContext(ctx).
		Model(&model.CatalogModel{}).
		Select("COALESCE(MAX(position), -1)").
		Row().
		Scan(&maxPosition); err != nil {
		return errors.Wrap(err, "failed to read catalog positions")
	}

	catalogM := &model.CatalogModel{
		ID:       catalog.ID,
		Name:     catalog.Name,
		Position: maxPosition + 1,
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(catalogM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetailsf("catalog %s already exists", catalog.ID)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create catalog")
	}

	return repo.insertProducts(ctx, catalog)
}

// FindCatalogByID retrieves a catalog with its slots in slot order.
func (repo *catalogRepository) FindCatalogByID(ctx context.Context, id uuid.UUID) (*entity.ProductCatalog, error) {
	var catalogM model.CatalogModel

	if err := repo.db.WithContext(ctx).
		Preload("Products", orderedSlots).
		Where("id = ?", id).
		First(&catalogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCatalogNotFound.WithDetailsf("catalog %s", id)
		}

		return nil, errors.Wrap(err, "failed to find catalog by ID")
	}

	catalog := toCatalogDomain(&catalogM)

	return &catalog, nil
}

// ListCatalogs returns catalogs in creation order.
func (repo *catalogRepository) ListCatalogs(ctx context.Context) ([]entity.ProductCatalog, error) {
	var catalogModels []*model.CatalogModel

	if err := repo.db.WithContext(ctx).
		Preload("Products", orderedSlots).
		Order("position ASC").
		Order("created_at ASC").
		Find(&catalogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list catalogs")
	}

	catalogs := make([]entity.ProductCatalog, 0, len(catalogModels))
	for _, catalogM := range catalogModels {
		catalogs = append(catalogs, toCatalogDomain(catalogM))
	}

	return catalogs, nil
}

// SaveCatalog replaces the catalog's name and slot list.
func (repo *catalogRepository) SaveCatalog(ctx context.Context, catalog *entity.ProductCatalog) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CatalogModel{}).
		Where("id = ?", catalog.ID).
		Update("name", catalog.Name)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update catalog")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCatalogNotFound.WithDetailsf("catalog %s", catalog.ID)
	}

	if err := repo.db.WithContext(ctx).
		Where("catalog_id = ?", catalog.ID).
		Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear catalog slots")
	}

	return repo.insertProducts(ctx, catalog)
}

// DeleteCatalog removes a catalog and its slots.
func (repo *catalogRepository) DeleteCatalog(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("catalog_id = ?", id).
		Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete catalog slots")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CatalogModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete catalog")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrCatalogNotFound.WithDetailsf("catalog %s", id)
	}

	return nil
}

// FindProductByID returns the product and the ID of the catalog holding it.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, uuid.UUID, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uuid.Nil, domainerrors.ErrProductNotFound.WithDetailsf("product %s", id)
		}

		return nil, uuid.Nil, errors.Wrap(err, "failed to find product by ID")
	}

	product := toProductDomain(&productM)

	return &product, productM.CatalogID, nil
}

// FindProductByBarcode returns the first configured product carrying barcode, in catalog then slot order.
func (repo *catalogRepository) FindProductByBarcode(ctx context.Context, barcode string) (*entity.Product, uuid.UUID, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, uuid.Nil, domainerrors.ErrProductNotFound.WithDetails("empty barcode")
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN catalogs ON catalogs.id = products.catalog_id").
		Where("products.barcode = ?", barcode).
		Order("catalogs.position ASC").
		Order("products.slot ASC").
		Find(&productModels).Error; err != nil {
		return nil, uuid.Nil, errors.Wrap(err, "failed to find product by barcode")
	}

	for _, productM := range productModels {
		product := toProductDomain(productM)
		if !product.IsEmpty() {
			return &product, productM.CatalogID, nil
		}
	}

	return nil, uuid.Nil, domainerrors.ErrProductNotFound.WithDetailsf("barcode %q", barcode)
}

// DecrementStock lowers a product's stock by quantity, never below zero.
func (repo *catalogRepository) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("CASE WHEN stock > ? THEN stock - ? ELSE 0 END", quantity, quantity))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound.WithDetailsf("product %s", productID)
	}

	return nil
}

// DeleteAllCatalogs removes every catalog and product.
func (repo *catalogRepository) DeleteAllCatalogs(ctx context.Context) error {
	db := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})

	if err := db.Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete products")
	}
	if err := db.Delete(&model.CatalogModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete catalogs")
	}

	return nil
}

func (repo *catalogRepository) insertProducts(ctx context.Context, catalog *entity.ProductCatalog) error {
	if len(catalog.Products) == 0 {
		return nil
	}

	productModels := make([]*model.ProductModel, 0, len(catalog.Products))
	for i := range catalog.Products {
		productM := fromProductDomain(&catalog.Products[i])
		productM.CatalogID = catalog.ID
		productM.Slot = i
		productModels = append(productModels, productM)
	}

	if err := repo.db.WithContext(ctx).Create(&productModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("product ID already used by another slot")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store catalog slots")
	}

	return nil
}

// --- Mapper Functions ---

func toCatalogDomain(data *model.CatalogModel) entity.ProductCatalog {
	products := make([]entity.Product, 0, len(data.Products))
	for _, productM := range data.Products {
		products = append(products, toProductDomain(productM))
	}

	return entity.ProductCatalog{
		ID:       data.ID,
		Name:     data.Name,
		Products: products,
	}
}

func toProductDomain(data *model.ProductModel) entity.Product {
	return entity.Product{
		ID:                     data.ID,
		Name:                   data.Name,
		Price:                  data.Price,
		Stock:                  data.Stock,
		LowStockThreshold:      data.LowStockThreshold,
		CriticalStockThreshold: data.CriticalStockThreshold,
		DiscountType:           entity.DiscountType(data.DiscountType),
		DiscountValue:          data.DiscountValue,
		Barcode:                data.Barcode,
		ImageData:              data.ImageData,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                     data.ID,
		Name:                   data.Name,
		Price:                  data.Price,
		Stock:                  data.Stock,
		LowStockThreshold:      data.LowStockThreshold,
		CriticalStockThreshold: data.CriticalStockThreshold,
		DiscountType:           string(data.DiscountType),
		DiscountValue:          data.DiscountValue,
		Barcode:                data.Barcode,
		ImageData:              data.ImageData,
	}
}
