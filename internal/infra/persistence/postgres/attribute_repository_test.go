package postgres

import (
	"context"
	"testing"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeRepository_CreateValueIfAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttributeRepository(db)
	ctx := context.Background()
	color := seedAttribute(t, db, "Color")

	first := &entity.AttributeValue{AttributeID: color.ID, Value: "Black"}
	inserted, err := repo.CreateValueIfAbsent(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotZero(t, first.ID)

	second := &entity.AttributeValue{AttributeID: color.ID, Value: "Black"}
	inserted, err = repo.CreateValueIfAbsent(ctx, second)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Zero(t, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.AttributeValueModel{}).
		Where("attribute_id = ? AND value = ?", color.ID, "Black").
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAttributeRepository_FindValue_IsExact(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttributeRepository(db)
	ctx := context.Background()
	color := seedAttribute(t, db, "Color")

	_, err := repo.CreateValueIfAbsent(ctx, &entity.AttributeValue{AttributeID: color.ID, Value: "Black"})
	require.NoError(t, err)

	found, err := repo.FindValue(ctx, color.ID, "Black")
	require.NoError(t, err)
	assert.Equal(t, "Black", found.Value)

	_, err = repo.FindValue(ctx, color.ID, " Black")
	assert.ErrorIs(t, err, repository.ErrAttributeValueNotFound)
}

func TestAttributeRepository_CreateValueIfAbsent_UnknownAttribute(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttributeRepository(db)

	_, err := repo.CreateValueIfAbsent(context.Background(), &entity.AttributeValue{AttributeID: 999, Value: "x"})
	assert.ErrorIs(t, err, repository.ErrAttributeNotFound)
}

func TestAttributeRepository_CreateAttribute_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttributeRepository(db)
	seedAttribute(t, db, "Color")

	err := repo.CreateAttribute(context.Background(), &entity.Attribute{Name: "Color"})
	assert.ErrorIs(t, err, repository.ErrDuplicateAttribute)

	seedAttribute(t, db, "Storage")
	attributes, err := repo.ListAttributes(context.Background())
	require.NoError(t, err)
	require.Len(t, attributes, 2)
	assert.Equal(t, "Color", attributes[0].Name)
	assert.Equal(t, "Storage", attributes[1].Name)
}
