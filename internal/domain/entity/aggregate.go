package entity

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// VariantsAggregate is the denormalized variant summary stored on a product so
// listings can render without joining variants.
type VariantsAggregate struct {
	Variants         []VariantSummary `json:"variants"`
	DefaultVariantID *int64           `json:"default_variant_id,omitempty"`
	MinPrice         *decimal.Decimal `json:"min_price,omitempty"`
	MaxPrice         *decimal.Decimal `json:"max_price,omitempty"`
	TotalStock       int              `json:"total_stock"`
	ActiveCount      int              `json:"active_count"`
	ComputedAt       time.Time        `json:"computed_at"`
}

// VariantSummary is the listing view of one variant.
type VariantSummary struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	SKU        string             `json:"sku"`
	Price      decimal.Decimal    `json:"price"`
	SalePrice  decimal.Decimal    `json:"sale_price"`
	Stock      int                `json:"stock"`
	Image      string             `json:"image"`
	IsDefault  bool               `json:"is_default"`
	Status     Status             `json:"status"`
	Attributes []VariantAttribute `json:"attributes"`
}

// BuildVariantsAggregate summarizes variants in id order. Price range and stock
// totals only count active variants; the default follows ResolveDefaultVariant.
func BuildVariantsAggregate(product *Product, variants []*ProductVariant, computedAt time.Time) *VariantsAggregate {
	sorted := slices.Clone(variants)
	slices.SortFunc(sorted, func(a, b *ProductVariant) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})

	agg := &VariantsAggregate{
		Variants:   make([]VariantSummary, 0, len(sorted)),
		ComputedAt: computedAt,
	}

	var discount *Discount
	if product != nil {
		discount = product.Discount
	}

	for _, v := range sorted {
		attrs := v.Attributes
		if attrs == nil {
			attrs = []VariantAttribute{}
		}
		agg.Variants = append(agg.Variants, VariantSummary{
			ID:         v.ID,
			Name:       v.Name,
			SKU:        v.SKU,
			Price:      v.Price,
			SalePrice:  discount.Apply(v.Price),
			Stock:      v.Stock,
			Image:      v.Image,
			IsDefault:  v.IsDefault,
			Status:     v.Status,
			Attributes: attrs,
		})

		if v.Status != StatusActive {
			continue
		}
		agg.ActiveCount++
		agg.TotalStock += v.Stock
		price := v.Price
		if agg.MinPrice == nil || price.LessThan(*agg.MinPrice) {
			agg.MinPrice = &price
		}
		if agg.MaxPrice == nil || price.GreaterThan(*agg.MaxPrice) {
			agg.MaxPrice = &price
		}
	}

	if def := ResolveDefaultVariant(sorted); def != nil {
		id := def.ID
		agg.DefaultVariantID = &id
	}

	return agg
}
