// Package dbtest opens migrated in-memory databases for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/festy23/travel_together/internal/database/migrate"
	"github.com/festy23/travel_together/internal/database/pool"
)

// New returns a fresh in-memory SQLite database with the full schema.
// The pool holds a single connection, so code under test must use the
// transaction handle inside a transaction.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, pool.SetupConnectionPool(db, pool.SQLitePoolConfig()))
	require.NoError(t, migrate.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
