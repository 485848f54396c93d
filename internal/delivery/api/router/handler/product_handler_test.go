package handler_test

import (
	"net/http"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_CreateProduct(t *testing.T) {
	fx := newAPIFixture(t)

	fx.products.EXPECT().
		CreateProduct(mock.Anything, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
			return in.Slug == "phone" && in.Discount != nil && in.Discount.Kind == entity.DiscountKindPercentage
		})).
		Return(&entity.Product{ID: 7, Slug: "phone"}, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/products",
		`{"name":"Phone","slug":"phone","price":100,"discount":{"kind":"percentage","amount":10}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"slug":"phone"`)
}

func TestProductHandler_SetDiscount(t *testing.T) {
	fx := newAPIFixture(t)

	fx.products.EXPECT().
		SetProductDiscount(mock.Anything, int64(7), mock.MatchedBy(func(d *entity.Discount) bool {
			return d != nil && d.Kind == entity.DiscountKindFixed && d.Amount.Equal(decimal.NewFromInt(5))
		})).
		Return(nil)
	fx.products.EXPECT().SetProductDiscount(mock.Anything, int64(8), (*entity.Discount)(nil)).Return(nil)

	rec, _ := fx.do(t, http.MethodPut, "/api/v1/products/7/discount", `{"kind":"fixed","amount":5}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = fx.do(t, http.MethodPut, "/api/v1/products/8/discount", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := fx.do(t, http.MethodPut, "/api/v1/products/7/discount", `{"kind":"half","amount":5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	fx := newAPIFixture(t)

	fx.products.EXPECT().GetProductDetail(mock.Anything, int64(7)).
		Return(nil, errors.Wrap(domainerrors.ErrProductNotFound, "failed to find product"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/products/7", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)
}

func TestProductHandler_RequiredAttributes(t *testing.T) {
	fx := newAPIFixture(t)
	defaultValue := "1 year"

	fx.products.EXPECT().AddRequiredAttribute(mock.Anything, int64(7), int64(3), &defaultValue).Return(nil)
	fx.products.EXPECT().ListRequiredAttributes(mock.Anything, int64(7)).
		Return([]*entity.ProductRequiredAttribute{{ProductID: 7, AttributeID: 3, DefaultValue: &defaultValue}}, nil)
	fx.products.EXPECT().RemoveRequiredAttribute(mock.Anything, int64(7), int64(3)).
		Return(errors.Wrap(domainerrors.ErrRequiredAttributeNotFound, "failed to remove"))

	rec, _ := fx.do(t, http.MethodPost, "/api/v1/products/7/required-attributes", `{"attribute_id":3,"default_value":"1 year"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/products/7/required-attributes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"default_value":"1 year"`)

	rec, env = fx.do(t, http.MethodDelete, "/api/v1/products/7/required-attributes/3", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "REQUIRED_ATTRIBUTE_NOT_FOUND", env.Error.Code)
}
