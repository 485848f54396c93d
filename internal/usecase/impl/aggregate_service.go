package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// aggregateService rebuilds products.variants_aggregate from the variant rows.
type aggregateService struct {
	txManager repository.TransactionManager
	cache     service.ProductCache
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// AggregateServiceParams holds dependencies for AggregateService, injected by Fx.
type AggregateServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Cache     service.ProductCache
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAggregateService is the constructor for aggregateService.
func NewAggregateService(params AggregateServiceParams) usecase.AggregateRecomputer {
	return &aggregateService{
		txManager: params.TxManager,
		cache:     params.Cache,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *aggregateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Recompute persists a fresh summary for productID. The product row is locked
// while reading variants so concurrent recomputes store the latest state last.
// Cache invalidation and the change event are best effort.
func (srv *aggregateService) Recompute(ctx context.Context, productID int64) error {
	var aggregate *entity.VariantsAggregate
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		product, err := repoFactory.ProductRepo().FindByIDForUpdate(ctx, productID)
		if err != nil {
			return translateRepoError(err, "failed to lock product")
		}

		variantRepo := repoFactory.VariantRepo()
		variants, err := variantRepo.FindByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to load variants")
		}
		if err := attachAttributes(ctx, variantRepo, variants); err != nil {
			return err
		}

		aggregate = entity.BuildVariantsAggregate(product, variants, srv.now().UTC())

		if err := repoFactory.ProductRepo().UpdateVariantsAggregate(ctx, productID, aggregate); err != nil {
			return translateRepoError(err, "failed to store variants aggregate")
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "recompute aggregate of product %d", productID)
	}

	if err := srv.cache.InvalidateProduct(ctx, productID); err != nil {
		srv.log(ctx).Warn("Failed to invalidate product cache", slog.Int64("productID", productID), slog.Any("error", err))
	}

	event := &service.ProductVariantsChangedEvent{
		EventID:          uuid.NewString(),
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		ProductID:        productID,
		DefaultVariantID: aggregate.DefaultVariantID,
		VariantCount:     len(aggregate.Variants),
		ActiveCount:      aggregate.ActiveCount,
		TotalStock:       aggregate.TotalStock,
		OccurredAt:       aggregate.ComputedAt,
	}
	if err := srv.publisher.PublishProductVariantsChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish variants changed event", slog.Int64("productID", productID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Variants aggregate recomputed",
		slog.Int64("productID", productID),
		slog.Int("variantCount", len(aggregate.Variants)),
	)

	return nil
}

// attachAttributes loads the bound attribute values of variants in one query.
func attachAttributes(ctx context.Context, variantRepo repository.VariantRepository, variants []*entity.ProductVariant) error {
	if len(variants) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(variants))
	for _, v := range variants {
		ids = append(ids, v.ID)
	}

	attributes, err := variantRepo.FindAttributes(ctx, ids)
	if err != nil {
		return errors.Wrap(err, "failed to load variant attributes")
	}

	for _, v := range variants {
		v.Attributes = attributes[v.ID]
		if v.Attributes == nil {
			v.Attributes = []entity.VariantAttribute{}
		}
	}

	return nil
}
