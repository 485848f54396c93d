package constants

// Storefront cache keys are "<prefix>:product:<id>".
const (
	CacheKeyProductDetail = "product"
)

// Upper bound for a percentage discount amount.
const MaxDiscountPercentage = 100

// Longest attribute value, in characters, that the attribute_values column holds.
const MaxAttributeValueLength = 255
