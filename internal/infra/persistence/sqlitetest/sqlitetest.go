// Package sqlitetest opens throwaway in-memory catalog databases for tests.
package sqlitetest

import (
	"context"
	"testing"

	"catalog/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dsn keeps foreign keys on so cascades and reference checks behave like Postgres.
const dsn = "file::memory:?_foreign_keys=on"

// Open returns a migrated in-memory database closed when the test ends. It is
// pinned to one connection, so callers must not use it while a transaction
// they started on it is still open.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.WithContext(context.Background()).AutoMigrate(model.Catalog()...))

	return db
}
