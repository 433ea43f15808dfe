package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "livesales/internal/delivery/context"
	"livesales/internal/domain/analytics"
	"livesales/internal/domain/entity"
	domainerrors "livesales/internal/domain/errors"
	"livesales/internal/domain/repository"
	"livesales/internal/domain/service"
	"livesales/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type catalogService struct {
	txManager   repository.TransactionManager
	catalogRepo repository.CatalogRepository
	qrCode      service.QRCodeService
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	CatalogRepo   repository.CatalogRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		catalogRepo: params.CatalogRepo,
		qrCode:      params.QRCodeService,
		logger:      params.Logger,
	}
}

func (s *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, s.logger)
}

func (s *catalogService) ListCatalogs(ctx context.Context) ([]entity.ProductCatalog, error) {
	catalogs, err := s.catalogRepo.ListCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs: %w", err)
	}

	return catalogs, nil
}

func (s *catalogService) GetCatalog(ctx context.Context, id uuid.UUID) (*entity.ProductCatalog, error) {
	catalog, err := s.catalogRepo.FindCatalogByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find catalog: %w", err)
	}

	return catalog, nil
}

func (s *catalogService) CreateCatalog(ctx context.Context, name string) (*entity.ProductCatalog, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("catalog name is required")
	}

	catalog := entity.NewProductCatalog(name)
	if err := s.catalogRepo.CreateCatalog(ctx, &catalog); err != nil {
		return nil, fmt.Errorf("failed to create catalog: %w", err)
	}

	s.log(ctx).Info("Catalog created",
		slog.String("catalog_id", catalog.ID.String()),
		slog.String("name", catalog.Name),
	)

	return &catalog, nil
}

func (s *catalogService) RenameCatalog(ctx context.Context, id uuid.UUID, name string) (*entity.ProductCatalog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("catalog name is required")
	}

	return s.mutate(ctx, id, func(catalog *entity.ProductCatalog) error {
		catalog.Name = name

		return nil
	})
}

func (s *catalogService) AddSlot(ctx context.Context, catalogID uuid.UUID) (*entity.ProductCatalog, error) {
	return s.mutate(ctx, catalogID, func(catalog *entity.ProductCatalog) error {
		_, err := catalog.AddSlot()

		return err
	})
}

func (s *catalogService) UpdateProduct(ctx context.Context, catalogID uuid.UUID, input entity.ProductInput) (*entity.Product, error) {
	if input.ID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product id is required")
	}

	product, err := entity.NewProduct(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.mutate(ctx, catalogID, func(catalog *entity.ProductCatalog) error {
		return catalog.ReplaceProduct(product)
	}); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *catalogService) RemoveSlot(ctx context.Context, catalogID, productID uuid.UUID) (*entity.ProductCatalog, error) {
	return s.mutate(ctx, catalogID, func(catalog *entity.ProductCatalog) error {
		return catalog.RemoveSlot(productID)
	})
}

func (s *catalogService) DeleteCatalog(ctx context.Context, id uuid.UUID) error {
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.NewCatalogRepository()
		if _, err := catalogRepo.FindCatalogByID(ctx, id); err != nil {
			return err
		}

		return catalogRepo.DeleteCatalog(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete catalog: %w", err)
	}

	return nil
}

// LookupProduct accepts a product label payload, a bare product ID or a barcode.
func (s *catalogService) LookupProduct(ctx context.Context, code string) (*usecase.ProductLookup, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("scan code is required")
	}

	productID, err := s.qrCode.ParseProductLabel(code)
	if err != nil {
		productID, err = uuid.Parse(code)
	}
	if err == nil {
		product, catalogID, findErr := s.catalogRepo.FindProductByID(ctx, productID)
		if findErr != nil {
			return nil, fmt.Errorf("failed to find product: %w", findErr)
		}

		return &usecase.ProductLookup{CatalogID: catalogID, Product: *product}, nil
	}

	product, catalogID, err := s.catalogRepo.FindProductByBarcode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by barcode: %w", err)
	}

	return &usecase.ProductLookup{CatalogID: catalogID, Product: *product}, nil
}

func (s *catalogService) GenerateProductLabel(ctx context.Context, productID uuid.UUID) ([]byte, error) {
	if _, _, err := s.catalogRepo.FindProductByID(ctx, productID); err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	png, err := s.qrCode.GenerateProductLabel(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate product label: %w", err)
	}

	return png, nil
}

func (s *catalogService) StockAlerts(ctx context.Context) ([]analytics.StockAlert, error) {
	catalogs, err := s.ListCatalogs(ctx)
	if err != nil {
		return nil, err
	}

	return analytics.StockAlerts(catalogs), nil
}

// mutate loads a catalog, applies fn and stores the result in one transaction.
func (s *catalogService) mutate(
	ctx context.Context,
	id uuid.UUID,
	fn func(catalog *entity.ProductCatalog) error,
) (*entity.ProductCatalog, error) {
	var updated *entity.ProductCatalog
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		catalogRepo := repoFactory.NewCatalogRepository()

		catalog, err := catalogRepo.FindCatalogByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(catalog); err != nil {
			return err
		}
		if err := catalogRepo.SaveCatalog(ctx, catalog); err != nil {
			return err
		}
		updated = catalog

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update catalog: %w", err)
	}

	return updated, nil
}
