package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the SPU: the parent of every purchasable variant.
type Product struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Slug              string             `json:"slug"`
	Price             decimal.Decimal    `json:"price"`
	Discount          *Discount          `json:"discount,omitempty"`
	Status            Status             `json:"status"`
	CategoryID        *int64             `json:"category_id,omitempty"`
	BrandID           *int64             `json:"brand_id,omitempty"`
	VariantsAggregate *VariantsAggregate `json:"variants_aggregate,omitempty"` // Cached summary, rebuilt after each variant mutation.
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// ProductRequiredAttribute declares an attribute every variant of a product must carry.
type ProductRequiredAttribute struct {
	ProductID     int64   `json:"product_id"`
	AttributeID   int64   `json:"attribute_id"`
	AttributeName string  `json:"attribute_name,omitempty"`
	DefaultValue  *string `json:"default_value,omitempty"` // Used when a variant omits the attribute.
}
