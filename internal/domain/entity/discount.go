package entity

import (
	"github.com/shopspring/decimal"
)

// DiscountKind tells how a Discount amount is applied to a price.
type DiscountKind string

const (
	// DiscountKindPercentage takes Amount percent off, 0 < Amount <= 100.
	DiscountKindPercentage DiscountKind = "percentage"
	// DiscountKindFixed takes Amount currency units off, Amount > 0, floored at zero.
	DiscountKindFixed DiscountKind = "fixed"
)

const (
	maxPercentage = 100
	priceScale    = 2
)

// maxPrice is the first value a numeric(12,2) column cannot hold.
var maxPrice = decimal.New(1, 10)

// IsStorablePrice reports whether price fits a numeric(12,2) column exactly:
// non-negative, below 10^10 and with at most two decimal places.
func IsStorablePrice(price decimal.Decimal) bool {
	return !price.IsNegative() && price.LessThan(maxPrice) && price.Equal(price.Truncate(priceScale))
}

// IsValid checks if the DiscountKind is a valid value.
func (k DiscountKind) IsValid() bool {
	switch k {
	case DiscountKindPercentage, DiscountKindFixed:
		return true
	default:
		return false
	}
}

// Discount is a product-level markdown. The kind is explicit; amounts are never
// interpreted by magnitude.
type Discount struct {
	Kind   DiscountKind    `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// IsValid checks the amount against the kind's range. Both kinds need a positive
// amount; a product without a markdown carries a nil Discount instead.
func (d Discount) IsValid() bool {
	if !d.Kind.IsValid() || !d.Amount.IsPositive() || !IsStorablePrice(d.Amount) {
		return false
	}
	if d.Kind == DiscountKindPercentage {
		return d.Amount.LessThanOrEqual(decimal.NewFromInt(maxPercentage))
	}

	return true
}

// Apply returns the discounted price rounded to cents. A nil discount returns price unchanged.
func (d *Discount) Apply(price decimal.Decimal) decimal.Decimal {
	if d == nil {
		return price
	}

	var discounted decimal.Decimal
	switch d.Kind {
	case DiscountKindPercentage:
		remaining := decimal.NewFromInt(maxPercentage).Sub(d.Amount)
		discounted = price.Mul(remaining).Div(decimal.NewFromInt(maxPercentage))
	case DiscountKindFixed:
		discounted = price.Sub(d.Amount)
	default:
		return price
	}

	if discounted.IsNegative() {
		return decimal.Zero
	}

	return discounted.Round(priceScale)
}
