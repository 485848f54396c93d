package postgres

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantRepository_FindTopStocked(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")

	seedVariant(t, db, product.ID, "A", 3, false)
	tied := seedVariant(t, db, product.ID, "B", 10, false)
	seedVariant(t, db, product.ID, "C", 10, false)
	seedVariant(t, db, product.ID, "D", 0, false)

	top, err := repo.FindTopStocked(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, tied.ID, top.ID)

	_, err = repo.FindDefault(ctx, product.ID)
	assert.ErrorIs(t, err, repository.ErrVariantNotFound)
}

func TestVariantRepository_FindTopStocked_NoneInStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	product := seedProduct(t, db, "phone")
	seedVariant(t, db, product.ID, "A", 0, false)

	_, err := repo.FindTopStocked(context.Background(), product.ID)
	assert.ErrorIs(t, err, repository.ErrVariantNotFound)
}

func TestVariantRepository_ClearAndMarkDefault(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")
	other := seedProduct(t, db, "tablet")

	v1 := seedVariant(t, db, product.ID, "A", 1, true)
	v2 := seedVariant(t, db, product.ID, "B", 1, false)
	foreign := seedVariant(t, db, other.ID, "C", 1, true)

	require.NoError(t, repo.ClearDefault(ctx, product.ID))
	require.NoError(t, repo.MarkDefault(ctx, product.ID, v2.ID))

	def, err := repo.FindDefault(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, v2.ID, def.ID)

	reloaded, err := repo.FindByID(ctx, v1.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)

	untouched, err := repo.FindByID(ctx, foreign.ID)
	require.NoError(t, err)
	assert.True(t, untouched.IsDefault)

	err = repo.MarkDefault(ctx, product.ID, foreign.ID)
	assert.ErrorIs(t, err, repository.ErrVariantNotFound)
}

func TestVariantRepository_Update_OverwritesZeroValues(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")
	variant := seedVariant(t, db, product.ID, "A", 5, true)

	variant.Stock = 0
	variant.IsDefault = false
	variant.Image = ""
	variant.Price = decimal.RequireFromString("12.50")
	variant.Status = entity.StatusInactive
	variant.Metadata = map[string]any{"color_hex": "#000000"}
	require.NoError(t, repo.Update(ctx, variant))

	reloaded, err := repo.FindByID(ctx, variant.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.Stock)
	assert.False(t, reloaded.IsDefault)
	assert.Equal(t, entity.StatusInactive, reloaded.Status)
	assert.True(t, decimal.RequireFromString("12.50").Equal(reloaded.Price))
	assert.Equal(t, "#000000", reloaded.Metadata["color_hex"])
}

func TestVariantRepository_WriteErrors(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")
	seedVariant(t, db, product.ID, "TAKEN", 1, false)

	err := repo.Create(ctx, &entity.ProductVariant{ProductID: product.ID, Name: "dup", SKU: "TAKEN", Status: entity.StatusActive})
	assert.ErrorIs(t, err, repository.ErrDuplicateSKU)

	err = repo.Create(ctx, &entity.ProductVariant{ProductID: 999, Name: "orphan", SKU: "ORPHAN", Status: entity.StatusActive})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	err = repo.Create(ctx, &entity.ProductVariant{ProductID: product.ID, Name: "neg", SKU: "NEG", Stock: -1, Status: entity.StatusActive})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.ErrorIs(t, repo.UpdateStock(ctx, 999, 1), repository.ErrVariantNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999), repository.ErrVariantNotFound)
}

func TestVariantRepository_Values(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	attributeRepo := NewAttributeRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")
	variant := seedVariant(t, db, product.ID, "A", 1, false)
	color := seedAttribute(t, db, "Color")
	storage := seedAttribute(t, db, "Storage")

	black := &entity.AttributeValue{AttributeID: color.ID, Value: "Black"}
	_, err := attributeRepo.CreateValueIfAbsent(ctx, black)
	require.NoError(t, err)
	big := &entity.AttributeValue{AttributeID: storage.ID, Value: "256GB"}
	_, err = attributeRepo.CreateValueIfAbsent(ctx, big)
	require.NoError(t, err)

	require.NoError(t, repo.InsertValues(ctx, variant.ID, []int64{big.ID, black.ID}))

	attributes, err := repo.FindAttributes(ctx, []int64{variant.ID})
	require.NoError(t, err)
	require.Len(t, attributes[variant.ID], 2)
	assert.Equal(t, "Color", attributes[variant.ID][0].AttributeName)
	assert.Equal(t, "Black", attributes[variant.ID][0].Value)
	assert.Equal(t, "256GB", attributes[variant.ID][1].Value)

	err = repo.InsertValues(ctx, variant.ID, []int64{12345})
	assert.ErrorIs(t, err, repository.ErrInvalidVariantReference)

	require.NoError(t, repo.DeleteValues(ctx, variant.ID))
	attributes, err = repo.FindAttributes(ctx, []int64{variant.ID})
	require.NoError(t, err)
	assert.Empty(t, attributes[variant.ID])
}

func TestVariantRepository_Delete_CascadesValues(t *testing.T) {
	db := newTestDB(t)
	repo := NewVariantRepository(db)
	ctx := context.Background()
	product := seedProduct(t, db, "phone")
	variant := seedVariant(t, db, product.ID, "A", 1, false)
	color := seedAttribute(t, db, "Color")

	value := &entity.AttributeValue{AttributeID: color.ID, Value: "Black"}
	_, err := NewAttributeRepository(db).CreateValueIfAbsent(ctx, value)
	require.NoError(t, err)
	require.NoError(t, repo.InsertValues(ctx, variant.ID, []int64{value.ID}))

	require.NoError(t, repo.Delete(ctx, variant.ID))

	var count int64
	require.NoError(t, db.Model(&model.ProductVariantValueModel{}).Where("variant_id = ?", variant.ID).Count(&count).Error)
	assert.Zero(t, count)
}
