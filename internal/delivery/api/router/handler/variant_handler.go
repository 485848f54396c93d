package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/api/response"
	"catalog/internal/domain/entity"
	"catalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// VariantHandlerParams holds dependencies for VariantHandler, injected by Fx.
type VariantHandlerParams struct {
	fx.In

	VariantUC usecase.VariantUsecase
	Logger    *slog.Logger
}

// VariantHandler exposes the variant lifecycle.
type VariantHandler struct {
	variantUC usecase.VariantUsecase
	logger    *slog.Logger
}

// NewVariantHandler is the constructor for VariantHandler
func NewVariantHandler(params VariantHandlerParams) *VariantHandler {
	return &VariantHandler{
		variantUC: params.VariantUC,
		logger:    params.Logger,
	}
}

// VariantRequest is the full state of a variant on create and update.
type VariantRequest struct {
	ProductID  int64                    `json:"product_id" validate:"omitempty,gt=0"`
	Name       string                   `json:"name" validate:"required,max=255"`
	SKU        string                   `json:"sku" validate:"required,max=100"`
	Price      decimal.Decimal          `json:"price" validate:"gte=0"`
	Stock      int                      `json:"stock" validate:"gte=0"`
	Image      string                   `json:"image" validate:"omitempty,max=512"`
	IsDefault  bool                     `json:"is_default"`
	Status     string                   `json:"status" validate:"omitempty,oneof=active inactive"`
	Metadata   map[string]any           `json:"metadata"`
	Attributes *[]AttributeValueRequest `json:"attributes" validate:"omitempty,dive"`
}

// SetDefaultVariantRequest represents the request body for choosing the default variant
type SetDefaultVariantRequest struct {
	VariantID int64 `json:"variant_id" validate:"required,gt=0"`
}

// SetAttributesRequest replaces every attribute value of a variant.
type SetAttributesRequest struct {
	Attributes []AttributeValueRequest `json:"attributes" validate:"dive"`
}

// SetStockRequest sets stock to an absolute value.
type SetStockRequest struct {
	Stock *int `json:"stock" validate:"required,gte=0"`
}

// SetPriceRequest sets the variant price.
type SetPriceRequest struct {
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// ToggleStatusResponse carries the status after the toggle.
type ToggleStatusResponse struct {
	Success bool          `json:"success"`
	Status  entity.Status `json:"status"`
}

func (h *VariantHandler) bindVariant(c echo.Context) (*VariantRequest, error) {
	var req VariantRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "Invalid variant input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.ValidationError(c, err)
	}

	return &req, nil
}

// ListVariants handles GET /products/:id/variants
func (h *VariantHandler) ListVariants(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	variants, err := h.variantUC.ListVariants(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variants)
}

// CreateVariant handles POST /products/:id/variants
func (h *VariantHandler) CreateVariant(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	req, err := h.bindVariant(c)
	if req == nil {
		return err
	}

	input := &usecase.CreateVariantInput{
		ProductID: productID,
		Name:      req.Name,
		SKU:       req.SKU,
		Price:     req.Price,
		Stock:     req.Stock,
		Image:     req.Image,
		IsDefault: req.IsDefault,
		Status:    entity.Status(req.Status),
		Metadata:  req.Metadata,
	}
	if req.Attributes != nil {
		input.Attributes = toAttributeInputs(*req.Attributes)
	}

	variant, err := h.variantUC.CreateVariant(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, variant)
}

// GetDefaultVariant handles GET /products/:id/default-variant. A product
// without a candidate answers data: null.
func (h *VariantHandler) GetDefaultVariant(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	variant, err := h.variantUC.GetDefaultVariantDetail(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variant)
}

// SetDefaultVariant handles PUT /products/:id/default-variant
func (h *VariantHandler) SetDefaultVariant(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req SetDefaultVariantRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid default variant input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.variantUC.SetDefaultVariant(c.Request().Context(), productID, req.VariantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Mutated(c)
}

// GetVariant handles GET /variants/:id
func (h *VariantHandler) GetVariant(c echo.Context) error {
	variantID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	variant, err := h.variantUC.GetVariant(c.Request().Context(), variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variant)
}

// UpdateVariant handles PUT /variants/:id. Omitted attributes keep the current
// bindings; omitted product_id keeps the current product.
func (h *VariantHandler) UpdateVariant(c echo.Context) error {
	variantID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	req, err := h.bindVariant(c)
	if req == nil {
		return err
	}

	input := &usecase.UpdateVariantInput{
		ProductID: req.ProductID,
		Name:      req.Name,
		SKU:       req.SKU,
		Price:     req.Price,
		Stock:     req.Stock,
		Image:     req.Image,
		IsDefault: req.IsDefault,
		Status:    entity.Status(req.Status),
		Metadata:  req.Metadata,
	}
	if req.Attributes != nil {
		inputs := toAttributeInputs(*req.Attributes)
		input.Attributes = &inputs
	}

	variant, err := h.variantUC.UpdateVariant(c.Request().Context(), variantID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, variant)
}

// DeleteVariant handles DELETE /variants/:id
func (h *VariantHandler) DeleteVariant(c echo.Context) error {
	variantID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	if err := h.variantUC.DeleteVariant(c.Request().Context(), variantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Mutated(c)
}

// SetAttributes handles PUT /variants/:id/attributes. An empty list clears them.
func (h *VariantHandler) SetAttributes(c echo.Context) error {
	variantID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req SetAttributesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid attribute input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.variantUC.SetVariantAttributes(c.Request().Context(), variantID, toAttributeInputs(req.Attributes)); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Mutated(c)
}

// ToggleStatus handles POST /variants/:id/toggle-status
func (h *VariantHandler) ToggleStatus(c echo.Context) error {
	variantID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	status, err := h.variantUC.ToggleStatus(c.Request().Context(), variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ToggleStatusResponse{Success: true, Status: status})
}

// SetStock handles PUT /variants/:id/stock
func (h *VariantHandler) SetStock(c echo.Context) error {
	variantID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req SetStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid stock input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.variantUC.SetStock(c.Request().Context(), variantID, *req.Stock); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Mutated(c)
}

// SetPrice handles PUT /variants/:id/price
func (h *VariantHandler) SetPrice(c echo.Context) error {
	variantID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	var req SetPriceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid price input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.variantUC.SetPrice(c.Request().Context(), variantID, req.Price); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Mutated(c)
}
