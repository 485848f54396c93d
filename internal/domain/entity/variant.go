package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant is the SKU: one purchasable configuration of a product.
type ProductVariant struct {
	ID         int64              `json:"id"`
	ProductID  int64              `json:"product_id"`
	Name       string             `json:"name"`
	SKU        string             `json:"sku"`
	Price      decimal.Decimal    `json:"price"`
	Stock      int                `json:"stock"`
	Image      string             `json:"image"`
	IsDefault  bool               `json:"is_default"`
	Status     Status             `json:"status"`
	Metadata   map[string]any     `json:"metadata,omitempty"`
	Attributes []VariantAttribute `json:"attributes"` // Loaded on detail reads only.
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// InStock reports whether the variant can be sold.
func (v *ProductVariant) InStock() bool {
	return v.Stock > 0
}

// VariantAttribute is one resolved attribute value bound to a variant.
type VariantAttribute struct {
	AttributeID      int64  `json:"attribute_id"`
	AttributeName    string `json:"attribute_name"`
	AttributeValueID int64  `json:"attribute_value_id"`
	Value            string `json:"value"`
}

// ProductVariantValue is the join row between a variant and an attribute value.
type ProductVariantValue struct {
	VariantID        int64
	AttributeValueID int64
}

// ResolveDefaultVariant picks the variant the storefront shows first: the one
// flagged default, else the in-stock variant with the highest stock (lowest id
// on ties), else nil.
func ResolveDefaultVariant(variants []*ProductVariant) *ProductVariant {
	var best *ProductVariant
	for _, v := range variants {
		if v.IsDefault {
			return v
		}
		if !v.InStock() {
			continue
		}
		if best == nil || v.Stock > best.Stock || (v.Stock == best.Stock && v.ID < best.ID) {
			best = v
		}
	}

	return best
}
