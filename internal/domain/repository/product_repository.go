// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSlug is returned when another product already uses the slug.
	ErrDuplicateSlug = errors.New("product slug already exists")
	// ErrRequiredAttributeNotFound is returned when the product does not require the attribute.
	ErrRequiredAttributeNotFound = errors.New("required attribute not found")
	// ErrDuplicateRequiredAttribute is returned when the product already requires the attribute.
	ErrDuplicateRequiredAttribute = errors.New("required attribute already exists")
)

// ProductRepository defines product persistence plus the product-owned
// required-attribute declarations.
type ProductRepository interface {
	// Create persists a new product and fills its generated fields.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindByIDForUpdate retrieves a product and row-locks it until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)

	// FindDetailByID reads a product for storefront display from the primary.
	FindDetailByID(ctx context.Context, id int64) (*entity.Product, error)

	// UpdateDiscount replaces the product discount; nil clears it.
	UpdateDiscount(ctx context.Context, id int64, discount *entity.Discount) error

	// UpdateVariantsAggregate stores the recomputed variant summary.
	UpdateVariantsAggregate(ctx context.Context, id int64, aggregate *entity.VariantsAggregate) error

	// ListRequiredAttributes returns the product's required attributes ordered by attribute ID.
	ListRequiredAttributes(ctx context.Context, productID int64) ([]*entity.ProductRequiredAttribute, error)

	// AddRequiredAttribute declares an attribute every variant of the product must carry.
	AddRequiredAttribute(ctx context.Context, required *entity.ProductRequiredAttribute) error

	// RemoveRequiredAttribute drops a required attribute declaration.
	RemoveRequiredAttribute(ctx context.Context, productID, attributeID int64) error
}
