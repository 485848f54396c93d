package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name       string
	Slug       string
	Price      decimal.Decimal
	Discount   *entity.Discount
	Status     entity.Status
	CategoryID *int64
	BrandID    *int64
}

// ProductUsecase covers the product-level state the variant rules depend on.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetProductDetail returns the storefront view including the variant aggregate.
	GetProductDetail(ctx context.Context, productID int64) (*entity.Product, error)

	// SetProductDiscount replaces the discount; nil clears it.
	SetProductDiscount(ctx context.Context, productID int64, discount *entity.Discount) error

	AddRequiredAttribute(ctx context.Context, productID, attributeID int64, defaultValue *string) error
	RemoveRequiredAttribute(ctx context.Context, productID, attributeID int64) error
	ListRequiredAttributes(ctx context.Context, productID int64) ([]*entity.ProductRequiredAttribute, error)
}
