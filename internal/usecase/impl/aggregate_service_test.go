package impl

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAggregateService_Recompute(t *testing.T) {
	fx := newCatalogFixtures(t)
	srv := fx.newAggregateService()
	computedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	srv.now = func() time.Time { return computedAt }
	ctx := context.Background()

	product := &entity.Product{
		ID:       testProductID,
		Discount: &entity.Discount{Kind: entity.DiscountKindPercentage, Amount: decimal.NewFromInt(10)},
	}
	variants := []*entity.ProductVariant{
		{ID: 2, ProductID: testProductID, Price: decimal.NewFromInt(200), Stock: 10, Status: entity.StatusActive},
		{ID: 1, ProductID: testProductID, Price: decimal.NewFromInt(100), Stock: 3, Status: entity.StatusActive},
	}

	fx.expectTx()
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, testProductID).Return(product, nil)
	fx.variantRepo.EXPECT().FindByProduct(ctx, testProductID).Return(variants, nil)
	fx.variantRepo.EXPECT().FindAttributes(ctx, []int64{2, 1}).Return(map[int64][]entity.VariantAttribute{
		1: {{AttributeID: 1, AttributeName: "Color", AttributeValueID: 5, Value: "Black"}},
	}, nil)

	var stored *entity.VariantsAggregate
	fx.productRepo.EXPECT().
		UpdateVariantsAggregate(ctx, testProductID, mock.AnythingOfType("*entity.VariantsAggregate")).
		Run(func(_ context.Context, _ int64, aggregate *entity.VariantsAggregate) { stored = aggregate }).
		Return(nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, testProductID).Return(nil)
	fx.publisher.EXPECT().
		PublishProductVariantsChanged(ctx, mock.MatchedBy(func(e *service.ProductVariantsChangedEvent) bool {
			return e.ProductID == testProductID && e.VariantCount == 2 && e.TotalStock == 13 && e.EventID != ""
		})).
		Return(nil)

	require.NoError(t, srv.Recompute(ctx, testProductID))

	require.NotNil(t, stored)
	require.Len(t, stored.Variants, 2)
	assert.Equal(t, int64(1), stored.Variants[0].ID)
	assert.True(t, decimal.NewFromInt(90).Equal(stored.Variants[0].SalePrice))
	require.NotNil(t, stored.DefaultVariantID)
	assert.Equal(t, int64(2), *stored.DefaultVariantID)
	assert.Equal(t, computedAt, stored.ComputedAt)
}

func TestAggregateService_Recompute_SideEffectFailuresAreIgnored(t *testing.T) {
	fx := newCatalogFixtures(t)
	srv := fx.newAggregateService()
	ctx := context.Background()

	fx.expectTx()
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, testProductID).Return(&entity.Product{ID: testProductID}, nil)
	fx.variantRepo.EXPECT().FindByProduct(ctx, testProductID).Return(nil, nil)
	fx.productRepo.EXPECT().UpdateVariantsAggregate(ctx, testProductID, mock.AnythingOfType("*entity.VariantsAggregate")).Return(nil)
	fx.cache.EXPECT().InvalidateProduct(ctx, testProductID).Return(errors.New("redis down"))
	fx.publisher.EXPECT().PublishProductVariantsChanged(ctx, mock.Anything).Return(errors.New("topic missing"))

	assert.NoError(t, srv.Recompute(ctx, testProductID))
}

func TestAggregateService_Recompute_ProductMissing(t *testing.T) {
	fx := newCatalogFixtures(t)
	srv := fx.newAggregateService()
	ctx := context.Background()

	fx.expectTx()
	fx.productRepo.EXPECT().FindByIDForUpdate(ctx, testProductID).Return(nil, repository.ErrProductNotFound)

	err := srv.Recompute(ctx, testProductID)
	require.Error(t, err)
	fx.cache.AssertNotCalled(t, "InvalidateProduct", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishProductVariantsChanged", mock.Anything, mock.Anything)
}
