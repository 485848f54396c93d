package postgres

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

func TestProductRepository_DiscountAndAggregate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")

	discount := &entity.Discount{Kind: entity.DiscountKindPercentage, Amount: decimal.NewFromInt(15)}
	require.NoError(t, repo.UpdateDiscount(ctx, product.ID, discount))

	defaultID := int64(3)
	aggregate := &entity.VariantsAggregate{
		Variants:         []entity.VariantSummary{{ID: 3, SKU: "A", Stock: 2, Status: entity.StatusActive}},
		DefaultVariantID: &defaultID,
		TotalStock:       2,
		ActiveCount:      1,
		ComputedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.UpdateVariantsAggregate(ctx, product.ID, aggregate))

	reloaded, err := repo.FindDetailByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Discount)
	assert.Equal(t, entity.DiscountKindPercentage, reloaded.Discount.Kind)
	assert.True(t, decimal.NewFromInt(15).Equal(reloaded.Discount.Amount))
	require.NotNil(t, reloaded.VariantsAggregate)
	assert.Equal(t, 2, reloaded.VariantsAggregate.TotalStock)
	assert.Equal(t, &defaultID, reloaded.VariantsAggregate.DefaultVariantID)

	require.NoError(t, repo.UpdateDiscount(ctx, product.ID, nil))
	reloaded, err = repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.Discount)

	assert.ErrorIs(t, repo.UpdateDiscount(ctx, 999, nil), repository.ErrProductNotFound)
	assert.ErrorIs(t, repo.UpdateVariantsAggregate(ctx, 999, aggregate), repository.ErrProductNotFound)
}

func TestProductRepository_FindDetailByIDSkipsLaggingReplica(t *testing.T) {
	ctx := context.Background()
	primary := newTestDB(t)
	replica := newTestDB(t)

	lagging := seedProduct(t, replica, "phone")
	product := seedProduct(t, primary, "phone")
	require.Equal(t, lagging.ID, product.ID)
	require.NoError(t, NewProductRepository(primary).UpdateVariantsAggregate(ctx, product.ID, &entity.VariantsAggregate{
		Variants:   []entity.VariantSummary{},
		TotalStock: 5,
		ComputedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
	seedAttribute(t, replica, "Color")

	replicaPool, err := replica.DB()
	require.NoError(t, err)
	require.NoError(t, primary.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{sqlite.Dialector{Conn: replicaPool}},
	})))

	detail, err := NewProductRepository(primary).FindDetailByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.VariantsAggregate)
	assert.Equal(t, 5, detail.VariantsAggregate.TotalStock)

	// Plain listings still go to the replica.
	attributes, err := NewAttributeRepository(primary).ListAttributes(ctx)
	require.NoError(t, err)
	require.Len(t, attributes, 1)
	assert.Equal(t, "Color", attributes[0].Name)
}

func TestProductRepository_DuplicateSlug(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, "phone")

	err := NewProductRepository(db).Create(context.Background(), &entity.Product{
		Name: "again", Slug: "phone", Price: decimal.NewFromInt(1), Status: entity.StatusActive,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
}

func TestProductRepository_RequiredAttributes(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")
	color := seedAttribute(t, db, "Color")
	warranty := seedAttribute(t, db, "Warranty")
	oneYear := "1 year"

	require.NoError(t, repo.AddRequiredAttribute(ctx, &entity.ProductRequiredAttribute{ProductID: product.ID, AttributeID: warranty.ID, DefaultValue: &oneYear}))
	require.NoError(t, repo.AddRequiredAttribute(ctx, &entity.ProductRequiredAttribute{ProductID: product.ID, AttributeID: color.ID}))

	err := repo.AddRequiredAttribute(ctx, &entity.ProductRequiredAttribute{ProductID: product.ID, AttributeID: color.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicateRequiredAttribute)

	required, err := repo.ListRequiredAttributes(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, required, 2)
	assert.Equal(t, "Color", required[0].AttributeName)
	assert.Nil(t, required[0].DefaultValue)
	require.NotNil(t, required[1].DefaultValue)
	assert.Equal(t, "1 year", *required[1].DefaultValue)

	require.NoError(t, repo.RemoveRequiredAttribute(ctx, product.ID, color.ID))
	assert.ErrorIs(t, repo.RemoveRequiredAttribute(ctx, product.ID, color.ID), repository.ErrRequiredAttributeNotFound)
}
