package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AttributeHandlerParams holds dependencies for AttributeHandler, injected by Fx.
type AttributeHandlerParams struct {
	fx.In

	AttributeUC usecase.AttributeUsecase
	Logger      *slog.Logger
}

// AttributeHandler serves the attribute registry.
type AttributeHandler struct {
	attributeUC usecase.AttributeUsecase
	logger      *slog.Logger
}

// NewAttributeHandler is the constructor for AttributeHandler
func NewAttributeHandler(params AttributeHandlerParams) *AttributeHandler {
	return &AttributeHandler{
		attributeUC: params.AttributeUC,
		logger:      params.Logger,
	}
}

// CreateAttributeRequest represents the request body for creating an attribute
type CreateAttributeRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ResolveValueRequest represents the request body for resolving an attribute value
type ResolveValueRequest struct {
	Value string `json:"value" validate:"required,max=255"`
}

// ResolveValueResponse carries the registry ID for the pair.
type ResolveValueResponse struct {
	AttributeValueID int64 `json:"attribute_value_id"`
}

// CreateAttribute handles POST /attributes
func (h *AttributeHandler) CreateAttribute(c echo.Context) error {
	var req CreateAttributeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid attribute input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	attribute, err := h.attributeUC.CreateAttribute(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, attribute)
}

// ListAttributes handles GET /attributes
func (h *AttributeHandler) ListAttributes(c echo.Context) error {
	attributes, err := h.attributeUC.ListAttributes(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, attributes)
}

// ResolveValue handles POST /attributes/:id/values. The same pair always yields the same ID.
func (h *AttributeHandler) ResolveValue(c echo.Context) error {
	attributeID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid attribute ID")
	}

	var req ResolveValueRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid attribute value input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	valueID, err := h.attributeUC.ResolveAttributeValue(c.Request().Context(), attributeID, req.Value)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ResolveValueResponse{AttributeValueID: valueID})
}
