package entity

import "time"

// Attribute is a global dimension such as "Color" or "Storage".
type Attribute struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AttributeValue is a deduplicated (attribute, value) pair shared by all variants.
type AttributeValue struct {
	ID          int64  `json:"id"`
	AttributeID int64  `json:"attribute_id"`
	Value       string `json:"value"`
}
