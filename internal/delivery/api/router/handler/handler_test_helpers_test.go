package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog/config"
	"catalog/internal/delivery/api"
	"catalog/internal/delivery/api/router"
	"catalog/internal/delivery/api/router/handler"
	mockUsecase "catalog/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	echo       *echo.Echo
	attributes *mockUsecase.MockAttributeUsecase
	products   *mockUsecase.MockProductUsecase
	variants   *mockUsecase.MockVariantUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := &apiFixture{
		echo:       api.NewEcho(&config.Config{}, logger),
		attributes: mockUsecase.NewMockAttributeUsecase(t),
		products:   mockUsecase.NewMockProductUsecase(t),
		variants:   mockUsecase.NewMockVariantUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		AttributeHandler: handler.NewAttributeHandler(handler.AttributeHandlerParams{AttributeUC: fx.attributes, Logger: logger}),
		ProductHandler:   handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: fx.products, Logger: logger}),
		VariantHandler:   handler.NewVariantHandler(handler.VariantHandlerParams{VariantUC: fx.variants, Logger: logger}),
	}).RegisterRoutes(fx.echo)

	return fx
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func (fx *apiFixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("X-Request-Id", "test-request")

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestHealthCheck(t *testing.T) {
	fx := newAPIFixture(t)

	rec, env := fx.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	require.Equal(t, "test-request", env.Meta.RequestID)
	require.Equal(t, "test-request", rec.Header().Get("X-Request-Id"))
}
