package postgres

import (
	"context"

	"catalog/internal/errors"
	"catalog/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the catalog tables, the (attribute_id, value)
// unique index, and the cascading foreign keys of the join tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.Catalog()...); err != nil {
		return errors.Wrap(err, "failed to migrate catalog schema")
	}

	return nil
}
