package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	runner      *mutationRunner
	productRepo repository.ProductRepository
	cache       service.ProductCache
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	Cache       service.ProductCache
	Recomputer  usecase.AggregateRecomputer
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		runner:      newMutationRunner(params.TxManager, params.Recomputer, params.Logger),
		productRepo: params.ProductRepo,
		cache:       params.Cache,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct persists a product with an empty variant aggregate.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:       strings.TrimSpace(input.Name),
		Slug:       strings.TrimSpace(input.Slug),
		Price:      input.Price,
		Discount:   input.Discount,
		Status:     input.Status,
		CategoryID: input.CategoryID,
		BrandID:    input.BrandID,
	}
	if product.Status == "" {
		product.Status = entity.StatusActive
	}

	switch {
	case product.Name == "":
		return nil, validationError("product name must not be empty")
	case product.Slug == "":
		return nil, validationError("product slug must not be empty")
	case product.Price.IsNegative():
		return nil, validationError("price must not be negative")
	case !entity.IsStorablePrice(product.Price):
		return nil, validationError("price must have at most 2 decimal places and be below 10000000000")
	case !product.Status.IsValid():
		return nil, validationError("status must be active or inactive")
	case product.Discount != nil && !product.Discount.IsValid():
		return nil, errors.Wrap(domainerrors.ErrInvalidDiscount, "invalid product discount")
	}

	product.VariantsAggregate = entity.BuildVariantsAggregate(product, nil, time.Now().UTC())

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, translateRepoError(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

// GetProductDetail serves the storefront view, reading through the cache.
func (srv *productService) GetProductDetail(ctx context.Context, productID int64) (*entity.Product, error) {
	cached, err := srv.cache.GetProduct(ctx, productID)
	if err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.Int64("productID", productID), slog.Any("error", err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := srv.productRepo.FindDetailByID(ctx, productID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}

	if err := srv.cache.SetProduct(ctx, product); err != nil {
		srv.log(ctx).Warn("Product cache write failed", slog.Int64("productID", productID), slog.Any("error", err))
	}

	return product, nil
}

// SetProductDiscount replaces the discount. Sale prices live in the variant
// aggregate, so the change goes through the recomputing runner.
func (srv *productService) SetProductDiscount(ctx context.Context, productID int64, discount *entity.Discount) error {
	if discount != nil && !discount.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidDiscount, "invalid product discount")
	}

	return srv.runner.Run(ctx, "set_discount", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		if err := repoFactory.ProductRepo().UpdateDiscount(ctx, productID, discount); err != nil {
			return translateRepoError(err, "failed to update product discount")
		}
		touch(productID)

		return nil
	})
}

// AddRequiredAttribute declares that every variant of the product carries attributeID.
func (srv *productService) AddRequiredAttribute(ctx context.Context, productID, attributeID int64, defaultValue *string) error {
	if defaultValue != nil && *defaultValue == "" {
		defaultValue = nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()
		if _, err := productRepo.FindByID(ctx, productID); err != nil {
			return translateRepoError(err, "failed to find product")
		}
		if _, err := repoFactory.AttributeRepo().FindAttributeByID(ctx, attributeID); err != nil {
			return translateRepoError(err, "failed to find attribute")
		}

		required := &entity.ProductRequiredAttribute{
			ProductID:    productID,
			AttributeID:  attributeID,
			DefaultValue: defaultValue,
		}
		if err := productRepo.AddRequiredAttribute(ctx, required); err != nil {
			return translateRepoError(err, "failed to add required attribute")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Required attribute added", slog.Int64("productID", productID), slog.Int64("attributeID", attributeID))

	return nil
}

// RemoveRequiredAttribute drops a required attribute declaration.
func (srv *productService) RemoveRequiredAttribute(ctx context.Context, productID, attributeID int64) error {
	if err := srv.productRepo.RemoveRequiredAttribute(ctx, productID, attributeID); err != nil {
		return translateRepoError(err, "failed to remove required attribute")
	}

	srv.log(ctx).Info("Required attribute removed", slog.Int64("productID", productID), slog.Int64("attributeID", attributeID))

	return nil
}

// ListRequiredAttributes returns the product's required attributes.
func (srv *productService) ListRequiredAttributes(ctx context.Context, productID int64) ([]*entity.ProductRequiredAttribute, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}

	required, err := srv.productRepo.ListRequiredAttributes(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list required attributes")
	}

	return required, nil
}
