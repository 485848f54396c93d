package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// variantService implements the VariantUsecase interface. Every write goes
// through runner so the aggregate recompute cannot be forgotten by a new path.
type variantService struct {
	runner      *mutationRunner
	binder      *attributeBinder
	variantRepo repository.VariantRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// VariantServiceParams holds dependencies for VariantService, injected by Fx.
type VariantServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VariantRepo repository.VariantRepository
	ProductRepo repository.ProductRepository
	Recomputer  usecase.AggregateRecomputer
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVariantService is the constructor for variantService.
func NewVariantService(params VariantServiceParams) usecase.VariantUsecase {
	enforceRequired := true
	if params.Config != nil {
		enforceRequired = params.Config.Catalog.EnforceRequiredAttributes
	}

	return &variantService{
		runner:      newMutationRunner(params.TxManager, params.Recomputer, params.Logger),
		binder:      &attributeBinder{enforceRequired: enforceRequired},
		variantRepo: params.VariantRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *variantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateVariant inserts the variant and binds its attributes in one transaction.
func (srv *variantService) CreateVariant(ctx context.Context, input *usecase.CreateVariantInput) (*entity.ProductVariant, error) {
	variant := &entity.ProductVariant{
		ProductID: input.ProductID,
		Name:      strings.TrimSpace(input.Name),
		SKU:       strings.TrimSpace(input.SKU),
		Price:     input.Price,
		Stock:     input.Stock,
		Image:     input.Image,
		IsDefault: input.IsDefault,
		Status:    input.Status,
		Metadata:  input.Metadata,
	}
	if variant.Status == "" {
		variant.Status = entity.StatusActive
	}
	if err := validateVariant(variant); err != nil {
		return nil, err
	}

	err := srv.runner.Run(ctx, "create", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		if _, err := repoFactory.ProductRepo().FindByIDForUpdate(ctx, variant.ProductID); err != nil {
			return translateRepoError(err, "failed to find product")
		}

		variantRepo := repoFactory.VariantRepo()
		if variant.IsDefault {
			if err := variantRepo.ClearDefault(ctx, variant.ProductID); err != nil {
				return err
			}
		}
		if err := variantRepo.Create(ctx, variant); err != nil {
			return translateRepoError(err, "failed to create variant")
		}
		if err := srv.binder.bind(ctx, repoFactory, variant, input.Attributes); err != nil {
			return err
		}
		touch(variant.ProductID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.GetVariant(ctx, variant.ID)
}

// UpdateVariant overwrites the whole variant row. Both the old and the new
// product are recomputed when the variant moves.
func (srv *variantService) UpdateVariant(ctx context.Context, variantID int64, input *usecase.UpdateVariantInput) (*entity.ProductVariant, error) {
	if input.ProductID < 0 {
		return nil, validationError("product id must be positive")
	}

	err := srv.runner.Run(ctx, "update", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		variantRepo := repoFactory.VariantRepo()
		snapshot, err := variantRepo.FindByID(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}

		targetProductID := snapshot.ProductID
		if input.ProductID != 0 {
			targetProductID = input.ProductID
		}

		// Product rows before the variant row, the same order as SetDefaultVariant.
		if err := lockProducts(ctx, repoFactory.ProductRepo(), snapshot.ProductID, targetProductID); err != nil {
			return err
		}
		current, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}
		if current.ProductID != snapshot.ProductID {
			return errors.Wrapf(domainerrors.ErrConflict, "variant %d moved to product %d concurrently", variantID, current.ProductID)
		}

		updated := *current
		updated.ProductID = targetProductID
		updated.Name = strings.TrimSpace(input.Name)
		updated.SKU = strings.TrimSpace(input.SKU)
		updated.Price = input.Price
		updated.Stock = input.Stock
		updated.Image = input.Image
		updated.IsDefault = input.IsDefault
		updated.Status = input.Status
		updated.Metadata = input.Metadata
		if err := validateVariant(&updated); err != nil {
			return err
		}

		if updated.IsDefault {
			if err := variantRepo.ClearDefault(ctx, updated.ProductID); err != nil {
				return err
			}
		}
		if err := variantRepo.Update(ctx, &updated); err != nil {
			return translateRepoError(err, "failed to update variant")
		}
		if input.Attributes != nil {
			if err := srv.binder.bind(ctx, repoFactory, &updated, *input.Attributes); err != nil {
				return err
			}
		}

		touch(current.ProductID)
		touch(updated.ProductID)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.GetVariant(ctx, variantID)
}

// DeleteVariant removes the variant and its attribute bindings. The owning
// product is read first because it cannot be recovered from a deleted row.
func (srv *variantService) DeleteVariant(ctx context.Context, variantID int64) error {
	return srv.runner.Run(ctx, "delete", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		variantRepo := repoFactory.VariantRepo()
		variant, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}
		productID := variant.ProductID

		if err := variantRepo.DeleteValues(ctx, variantID); err != nil {
			return err
		}
		if err := variantRepo.Delete(ctx, variantID); err != nil {
			return translateRepoError(err, "failed to delete variant")
		}
		touch(productID)

		return nil
	})
}

// SetDefaultVariant clears every default of the product and flags variantID,
// holding the product row lock so concurrent callers serialize.
func (srv *variantService) SetDefaultVariant(ctx context.Context, productID, variantID int64) error {
	return srv.runner.Run(ctx, "set_default", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		if _, err := repoFactory.ProductRepo().FindByIDForUpdate(ctx, productID); err != nil {
			return translateRepoError(err, "failed to find product")
		}

		variantRepo := repoFactory.VariantRepo()
		variant, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}
		if variant.ProductID != productID {
			return errors.Wrapf(domainerrors.ErrVariantNotFound, "variant %d does not belong to product %d", variantID, productID)
		}

		if err := variantRepo.ClearDefault(ctx, productID); err != nil {
			return err
		}
		if err := variantRepo.MarkDefault(ctx, productID, variantID); err != nil {
			return translateRepoError(err, "failed to mark default variant")
		}
		touch(productID)

		return nil
	})
}

// ToggleStatus flips the variant between active and inactive.
func (srv *variantService) ToggleStatus(ctx context.Context, variantID int64) (entity.Status, error) {
	var next entity.Status
	err := srv.runner.Run(ctx, "toggle_status", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		variantRepo := repoFactory.VariantRepo()
		variant, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}

		next = variant.Status.Toggled()
		if err := variantRepo.UpdateStatus(ctx, variantID, next); err != nil {
			return translateRepoError(err, "failed to update variant status")
		}
		touch(variant.ProductID)

		return nil
	})
	if err != nil {
		return "", err
	}

	return next, nil
}

// SetStock replaces the stock count.
func (srv *variantService) SetStock(ctx context.Context, variantID int64, stock int) error {
	if stock < 0 {
		return validationError("stock must not be negative")
	}

	return srv.runner.Run(ctx, "set_stock", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		variantRepo := repoFactory.VariantRepo()
		variant, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}
		if err := variantRepo.UpdateStock(ctx, variantID, stock); err != nil {
			return translateRepoError(err, "failed to update variant stock")
		}
		touch(variant.ProductID)

		return nil
	})
}

// SetPrice replaces the variant price.
func (srv *variantService) SetPrice(ctx context.Context, variantID int64, price decimal.Decimal) error {
	if price.IsNegative() {
		return validationError("price must not be negative")
	}
	if !entity.IsStorablePrice(price) {
		return validationError("price must have at most 2 decimal places and be below 10000000000")
	}

	return srv.runner.Run(ctx, "set_price", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		variantRepo := repoFactory.VariantRepo()
		variant, err := variantRepo.FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}
		if err := variantRepo.UpdatePrice(ctx, variantID, price); err != nil {
			return translateRepoError(err, "failed to update variant price")
		}
		touch(variant.ProductID)

		return nil
	})
}

// SetVariantAttributes replaces the variant's attribute values. An unknown
// variant fails before any write.
func (srv *variantService) SetVariantAttributes(ctx context.Context, variantID int64, values []usecase.AttributeInput) error {
	return srv.runner.Run(ctx, "set_attributes", func(repoFactory repository.RepositoryFactory, touch touchFunc) error {
		variant, err := repoFactory.VariantRepo().FindByIDForUpdate(ctx, variantID)
		if err != nil {
			return translateRepoError(err, "failed to find variant")
		}
		if err := srv.binder.bind(ctx, repoFactory, variant, values); err != nil {
			return err
		}
		touch(variant.ProductID)

		return nil
	})
}

// GetDefaultVariantDetail prefers the flagged default, then the variant with
// the most stock (lowest ID on ties). No candidate yields (nil, nil).
func (srv *variantService) GetDefaultVariantDetail(ctx context.Context, productID int64) (*entity.ProductVariant, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}

	variant, err := srv.variantRepo.FindDefault(ctx, productID)
	if errors.Is(err, repository.ErrVariantNotFound) {
		variant, err = srv.variantRepo.FindTopStocked(ctx, productID)
	}
	if errors.Is(err, repository.ErrVariantNotFound) {
		srv.log(ctx).Debug("Product has no default variant candidate", slog.Int64("productID", productID))

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve default variant")
	}

	if err := attachAttributes(ctx, srv.variantRepo, []*entity.ProductVariant{variant}); err != nil {
		return nil, err
	}

	return variant, nil
}

// GetVariant returns one variant with its attribute values.
func (srv *variantService) GetVariant(ctx context.Context, variantID int64) (*entity.ProductVariant, error) {
	variant, err := srv.variantRepo.FindByID(ctx, variantID)
	if err != nil {
		return nil, translateRepoError(err, "failed to find variant")
	}

	if err := attachAttributes(ctx, srv.variantRepo, []*entity.ProductVariant{variant}); err != nil {
		return nil, err
	}

	return variant, nil
}

// ListVariants returns every variant of a product ordered by ID.
func (srv *variantService) ListVariants(ctx context.Context, productID int64) ([]*entity.ProductVariant, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, translateRepoError(err, "failed to find product")
	}

	variants, err := srv.variantRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}

	if err := attachAttributes(ctx, srv.variantRepo, variants); err != nil {
		return nil, err
	}

	return variants, nil
}

// lockProducts takes the row locks of the given products in ascending ID order.
func lockProducts(ctx context.Context, productRepo repository.ProductRepository, productIDs ...int64) error {
	ids := slices.Clone(productIDs)
	slices.Sort(ids)
	for _, id := range slices.Compact(ids) {
		if _, err := productRepo.FindByIDForUpdate(ctx, id); err != nil {
			return translateRepoError(err, "failed to find product")
		}
	}

	return nil
}

func validateVariant(variant *entity.ProductVariant) error {
	switch {
	case variant.ProductID <= 0:
		return validationError("product id must be positive")
	case variant.Name == "":
		return validationError("variant name must not be empty")
	case variant.SKU == "":
		return validationError("variant sku must not be empty")
	case variant.Price.IsNegative():
		return validationError("price must not be negative")
	case !entity.IsStorablePrice(variant.Price):
		return validationError("price must have at most 2 decimal places and be below 10000000000")
	case variant.Stock < 0:
		return validationError("stock must not be negative")
	case !variant.Status.IsValid():
		return validationError("status must be active or inactive")
	}

	return nil
}
