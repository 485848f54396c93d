package usecase

import (
	"context"

	"catalog/internal/domain/entity"
)

// AttributeUsecase manages the global attribute dimensions and their deduplicated values.
type AttributeUsecase interface {
	// CreateAttribute registers a new attribute name such as "Color".
	CreateAttribute(ctx context.Context, name string) (*entity.Attribute, error)

	// ListAttributes returns every attribute ordered by name.
	ListAttributes(ctx context.Context) ([]*entity.Attribute, error)

	// ResolveAttributeValue maps an (attribute, value) pair to its stable ID,
	// creating the row on first use. The value is matched exactly, untrimmed.
	ResolveAttributeValue(ctx context.Context, attributeID int64, value string) (int64, error)
}
