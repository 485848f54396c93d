package impl

import (
	"context"
	"strings"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttributeService_ResolveAttributeValue_Existing(t *testing.T) {
	fx := newCatalogFixtures(t)
	srv := fx.newAttributeService()
	ctx := context.Background()

	fx.expectTx()
	fx.attributeRepo.EXPECT().FindValue(ctx, int64(1), "Black").Return(&entity.AttributeValue{ID: 5, AttributeID: 1, Value: "Black"}, nil)

	id, err := srv.ResolveAttributeValue(ctx, 1, "Black")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	fx.attributeRepo.AssertNotCalled(t, "CreateValueIfAbsent", mock.Anything, mock.Anything)
}

func TestAttributeService_ResolveAttributeValue_CreatesOnMiss(t *testing.T) {
	fx := newCatalogFixtures(t)
	srv := fx.newAttributeService()
	ctx := context.Background()

	fx.expectTx()
	fx.attributeRepo.EXPECT().FindValue(ctx, int64(1), "Black").Return(nil, repository.ErrAttributeValueNotFound).Once()
	fx.attributeRepo.EXPECT().FindAttributeByID(ctx, int64(1)).Return(&entity.Attribute{ID: 1, Name: "Color"}, nil)
	fx.attributeRepo.EXPECT().
		CreateValueIfAbsent(ctx, mock.AnythingOfType("*entity.AttributeValue")).
		Run(func(_ context.Context, value *entity.AttributeValue) { value.ID = 9 }).
		Return(true, nil)

	id, err := srv.ResolveAttributeValue(ctx, 1, "Black")
	require.NoError(t, err)
	assert.Equal(t, int64(9), id)
}

func TestAttributeService_ResolveAttributeValue_LostRaceReusesWinner(t *testing.T) {
	fx := newCatalogFixtures(t)
	srv := fx.newAttributeService()
	ctx := context.Background()

	fx.expectTx()
	fx.attributeRepo.EXPECT().FindValue(ctx, int64(1), "Black").Return(nil, repository.ErrAttributeValueNotFound).Once()
	fx.attributeRepo.EXPECT().FindAttributeByID(ctx, int64(1)).Return(&entity.Attribute{ID: 1}, nil)
	fx.attributeRepo.EXPECT().CreateValueIfAbsent(ctx, mock.AnythingOfType("*entity.AttributeValue")).Return(false, nil)
	fx.attributeRepo.EXPECT().FindValue(ctx, int64(1), "Black").Return(&entity.AttributeValue{ID: 4}, nil).Once()

	id, err := srv.ResolveAttributeValue(ctx, 1, "Black")
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestAttributeService_ResolveAttributeValue_Errors(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		fx := newCatalogFixtures(t)
		fx.expectTx()

		_, err := fx.newAttributeService().ResolveAttributeValue(context.Background(), 1, "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("value longer than the column", func(t *testing.T) {
		fx := newCatalogFixtures(t)
		fx.expectTx()

		_, err := fx.newAttributeService().ResolveAttributeValue(context.Background(), 1, strings.Repeat("é", 256))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		fx.attributeRepo.AssertNotCalled(t, "FindValue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("value at the column limit", func(t *testing.T) {
		fx := newCatalogFixtures(t)
		ctx := context.Background()
		value := strings.Repeat("é", 255)
		fx.expectTx()
		fx.attributeRepo.EXPECT().FindValue(ctx, int64(1), value).Return(&entity.AttributeValue{ID: 9, AttributeID: 1, Value: value}, nil)

		id, err := fx.newAttributeService().ResolveAttributeValue(ctx, 1, value)
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
	})

	t.Run("unknown attribute", func(t *testing.T) {
		fx := newCatalogFixtures(t)
		ctx := context.Background()
		fx.expectTx()
		fx.attributeRepo.EXPECT().FindValue(ctx, int64(3), "x").Return(nil, repository.ErrAttributeValueNotFound)
		fx.attributeRepo.EXPECT().FindAttributeByID(ctx, int64(3)).Return(nil, repository.ErrAttributeNotFound)

		_, err := fx.newAttributeService().ResolveAttributeValue(ctx, 3, "x")
		assert.ErrorIs(t, err, domainerrors.ErrAttributeNotFound)
		fx.attributeRepo.AssertNotCalled(t, "CreateValueIfAbsent", mock.Anything, mock.Anything)
	})
}

func TestAttributeService_CreateAttribute(t *testing.T) {
	fx := newCatalogFixtures(t)
	srv := fx.newAttributeService()
	ctx := context.Background()

	fx.attributeRepo.EXPECT().
		CreateAttribute(ctx, mock.MatchedBy(func(a *entity.Attribute) bool { return a.Name == "Color" })).
		Return(nil).Once()
	fx.attributeRepo.EXPECT().
		CreateAttribute(ctx, mock.MatchedBy(func(a *entity.Attribute) bool { return a.Name == "Size" })).
		Return(repository.ErrDuplicateAttribute).Once()

	attribute, err := srv.CreateAttribute(ctx, "  Color ")
	require.NoError(t, err)
	assert.Equal(t, "Color", attribute.Name)

	_, err = srv.CreateAttribute(ctx, "Size")
	assert.ErrorIs(t, err, domainerrors.ErrAttributeAlreadyExists)

	_, err = srv.CreateAttribute(ctx, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
