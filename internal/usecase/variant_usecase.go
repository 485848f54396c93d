package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AttributeInput is one attribute value supplied for a variant.
type AttributeInput struct {
	AttributeID int64
	Value       string
}

// CreateVariantInput defines the data required to create a variant.
type CreateVariantInput struct {
	ProductID  int64
	Name       string
	SKU        string
	Price      decimal.Decimal
	Stock      int
	Image      string
	IsDefault  bool
	Status     entity.Status
	Metadata   map[string]any
	Attributes []AttributeInput
}

// UpdateVariantInput is the complete desired state of a variant. Every field
// overwrites the stored one; Attributes left nil keeps the current bindings.
type UpdateVariantInput struct {
	ProductID  int64
	Name       string
	SKU        string
	Price      decimal.Decimal
	Stock      int
	Image      string
	IsDefault  bool
	Status     entity.Status
	Metadata   map[string]any
	Attributes *[]AttributeInput
}

// VariantUsecase is the single point of mutation for product variants. Every
// successful mutation recomputes the owning product's variant aggregate once.
type VariantUsecase interface {
	CreateVariant(ctx context.Context, input *CreateVariantInput) (*entity.ProductVariant, error)
	UpdateVariant(ctx context.Context, variantID int64, input *UpdateVariantInput) (*entity.ProductVariant, error)
	DeleteVariant(ctx context.Context, variantID int64) error

	// SetDefaultVariant makes variantID the only default of productID.
	SetDefaultVariant(ctx context.Context, productID, variantID int64) error

	// ToggleStatus flips active and inactive and returns the new status.
	ToggleStatus(ctx context.Context, variantID int64) (entity.Status, error)

	// SetStock replaces the stock count; it never increments.
	SetStock(ctx context.Context, variantID int64, stock int) error

	// SetPrice replaces the variant price.
	SetPrice(ctx context.Context, variantID int64, price decimal.Decimal) error

	// SetVariantAttributes replaces the variant's attribute values with exactly values.
	SetVariantAttributes(ctx context.Context, variantID int64, values []AttributeInput) error

	// GetDefaultVariantDetail returns the default variant, falling back to the
	// best-stocked one. It returns nil without error when neither exists.
	GetDefaultVariantDetail(ctx context.Context, productID int64) (*entity.ProductVariant, error)

	GetVariant(ctx context.Context, variantID int64) (*entity.ProductVariant, error)
	ListVariants(ctx context.Context, productID int64) ([]*entity.ProductVariant, error)
}

// AggregateRecomputer rebuilds a product's denormalized variant summary.
type AggregateRecomputer interface {
	Recompute(ctx context.Context, productID int64) error
}
