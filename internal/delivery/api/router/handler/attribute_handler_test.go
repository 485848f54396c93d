package handler_test

import (
	"net/http"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAttributeHandler_CreateAttribute(t *testing.T) {
	fx := newAPIFixture(t)

	fx.attributes.EXPECT().CreateAttribute(mock.Anything, "Color").Return(&entity.Attribute{ID: 2, Name: "Color"}, nil)
	fx.attributes.EXPECT().CreateAttribute(mock.Anything, "Size").
		Return(nil, errors.Wrap(domainerrors.ErrAttributeAlreadyExists, "failed to create attribute"))

	rec, _ := fx.do(t, http.MethodPost, "/api/v1/attributes", `{"name":"Color"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/attributes", `{"name":"Size"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ATTRIBUTE_ALREADY_EXISTS", env.Error.Code)
}

func TestAttributeHandler_ResolveValue(t *testing.T) {
	fx := newAPIFixture(t)

	fx.attributes.EXPECT().ResolveAttributeValue(mock.Anything, int64(2), "Black").Return(int64(40), nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/attributes/2/values", `{"value":"Black"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"attribute_value_id":40}`, string(env.Data))

	rec, env = fx.do(t, http.MethodPost, "/api/v1/attributes/2/values", `{"value":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAttributeHandler_ListAttributes(t *testing.T) {
	fx := newAPIFixture(t)

	fx.attributes.EXPECT().ListAttributes(mock.Anything).Return([]*entity.Attribute{{ID: 1, Name: "Color"}}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/attributes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"Color"`)
}
