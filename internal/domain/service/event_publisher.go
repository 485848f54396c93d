package service

import (
	"context"
	"time"
)

// ProductVariantsChangedEvent announces that a product's variant aggregate was rebuilt.
type ProductVariantsChangedEvent struct {
	EventID          string    `json:"event_id"`
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	ProductID        int64     `json:"product_id"`
	DefaultVariantID *int64    `json:"default_variant_id,omitempty"`
	VariantCount     int       `json:"variant_count"`
	ActiveCount      int       `json:"active_count"`
	TotalStock       int       `json:"total_stock"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProductVariantsChanged publishes a change event for downstream consumers such as search indexers
	PublishProductVariantsChanged(ctx context.Context, event *ProductVariantsChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
