package repository

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for attribute persistence.
var (
	// ErrAttributeNotFound is returned when an attribute is not found.
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrDuplicateAttribute is returned when an attribute name is already taken.
	ErrDuplicateAttribute = errors.New("attribute already exists")
	// ErrAttributeValueNotFound is returned when no row exists for an (attribute, value) pair.
	ErrAttributeValueNotFound = errors.New("attribute value not found")
)

// AttributeRepository defines the interface for attribute and attribute value operations.
type AttributeRepository interface {
	// CreateAttribute persists a new attribute.
	CreateAttribute(ctx context.Context, attribute *entity.Attribute) error

	// FindAttributeByID retrieves an attribute by its ID.
	FindAttributeByID(ctx context.Context, id int64) (*entity.Attribute, error)

	// ListAttributes returns all attributes ordered by name.
	ListAttributes(ctx context.Context) ([]*entity.Attribute, error)

	// FindValue looks up the row for an exact (attributeID, value) match.
	FindValue(ctx context.Context, attributeID int64, value string) (*entity.AttributeValue, error)

	// CreateValueIfAbsent inserts the pair unless a row already exists.
	// It reports whether this call inserted the row; when it did, value.ID is set.
	CreateValueIfAbsent(ctx context.Context, value *entity.AttributeValue) (bool, error)
}
