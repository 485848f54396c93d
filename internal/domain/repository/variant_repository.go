package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for variant persistence.
var (
	// ErrVariantNotFound is returned when a variant is not found.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrDuplicateSKU is returned when another variant already uses the SKU.
	ErrDuplicateSKU = errors.New("variant sku already exists")
	// ErrInvalidVariantReference is returned when a join row points at a missing variant or value.
	ErrInvalidVariantReference = errors.New("invalid variant reference")
)

// VariantRepository defines the interface for variant and variant-value operations.
type VariantRepository interface {
	// Create persists a new variant and fills its generated fields.
	Create(ctx context.Context, variant *entity.ProductVariant) error

	// FindByID retrieves a variant by its ID.
	FindByID(ctx context.Context, id int64) (*entity.ProductVariant, error)

	// FindByIDForUpdate retrieves a variant and row-locks it until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.ProductVariant, error)

	// FindByProduct returns every variant of a product ordered by ID.
	FindByProduct(ctx context.Context, productID int64) ([]*entity.ProductVariant, error)

	// FindDefault returns the variant flagged default for a product.
	FindDefault(ctx context.Context, productID int64) (*entity.ProductVariant, error)

	// FindTopStocked returns the in-stock variant with the highest stock, lowest ID on ties.
	FindTopStocked(ctx context.Context, productID int64) (*entity.ProductVariant, error)

	// Update overwrites every mutable column of the variant.
	Update(ctx context.Context, variant *entity.ProductVariant) error

	// Delete removes a variant row.
	Delete(ctx context.Context, id int64) error

	// ClearDefault unsets the default flag on every variant of a product.
	ClearDefault(ctx context.Context, productID int64) error

	// MarkDefault flags one variant of the product as default.
	MarkDefault(ctx context.Context, productID, variantID int64) error

	// UpdateStatus sets the variant status.
	UpdateStatus(ctx context.Context, id int64, status entity.Status) error

	// UpdateStock sets the variant stock to an absolute value.
	UpdateStock(ctx context.Context, id int64, stock int) error

	// UpdatePrice sets the variant price to an absolute value.
	UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) error

	// DeleteValues removes every attribute value bound to the variant.
	DeleteValues(ctx context.Context, variantID int64) error

	// InsertValues binds attribute values to the variant.
	InsertValues(ctx context.Context, variantID int64, attributeValueIDs []int64) error

	// FindAttributes returns the bound attributes per variant ID, ordered by attribute ID.
	FindAttributes(ctx context.Context, variantIDs []int64) (map[int64][]entity.VariantAttribute, error)
}
