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

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves products, their discount and their required attributes.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// DiscountRequest is a tagged discount. An empty kind clears the discount.
type DiscountRequest struct {
	Kind   string          `json:"kind" validate:"omitempty,oneof=percentage fixed"`
	Amount decimal.Decimal `json:"amount" validate:"gte=0"`
}

func (req *DiscountRequest) toEntity() *entity.Discount {
	if req == nil || req.Kind == "" {
		return nil
	}

	return &entity.Discount{Kind: entity.DiscountKind(req.Kind), Amount: req.Amount}
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name       string           `json:"name" validate:"required,max=255"`
	Slug       string           `json:"slug" validate:"required,max=255"`
	Price      decimal.Decimal  `json:"price" validate:"gte=0"`
	Discount   *DiscountRequest `json:"discount"`
	Status     string           `json:"status" validate:"omitempty,oneof=active inactive"`
	CategoryID *int64           `json:"category_id" validate:"omitempty,gt=0"`
	BrandID    *int64           `json:"brand_id" validate:"omitempty,gt=0"`
}

// AddRequiredAttributeRequest represents the request body for requiring an attribute
type AddRequiredAttributeRequest struct {
	AttributeID  int64   `json:"attribute_id" validate:"required,gt=0"`
	DefaultValue *string `json:"default_value" validate:"omitempty,max=255"`
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		Name:       req.Name,
		Slug:       req.Slug,
		Price:      req.Price,
		Discount:   req.Discount.toEntity(),
		Status:     entity.Status(req.Status),
		CategoryID: req.CategoryID,
		BrandID:    req.BrandID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// GetProduct handles GET /products/:id with the variant summary.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	product, err := h.productUC.GetProductDetail(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// SetDiscount handles PUT /products/:id/discount
func (h *ProductHandler) SetDiscount(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req DiscountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid discount input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.productUC.SetProductDiscount(c.Request().Context(), productID, req.toEntity()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Mutated(c)
}

// ListRequiredAttributes handles GET /products/:id/required-attributes
func (h *ProductHandler) ListRequiredAttributes(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	required, err := h.productUC.ListRequiredAttributes(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, required)
}

// AddRequiredAttribute handles POST /products/:id/required-attributes
func (h *ProductHandler) AddRequiredAttribute(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req AddRequiredAttributeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid required attribute input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.productUC.AddRequiredAttribute(c.Request().Context(), productID, req.AttributeID, req.DefaultValue); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.MutationResult{Success: true})
}

// RemoveRequiredAttribute handles DELETE /products/:id/required-attributes/:attributeId
func (h *ProductHandler) RemoveRequiredAttribute(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}
	attributeID, err := pathID(c, "attributeId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid attribute ID")
	}

	if err := h.productUC.RemoveRequiredAttribute(c.Request().Context(), productID, attributeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Mutated(c)
}
