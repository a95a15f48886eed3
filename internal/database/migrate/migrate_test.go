package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/festy23/travel_together/internal/database/config"
)

func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default path", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "")
		assert.Equal(t, "migrations", GetMigrationsPath())
	})

	t.Run("custom path from env", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "custom/migrations")
		assert.Equal(t, "custom/migrations", GetMigrationsPath())
	})
}

func TestMigrateWithNilDatabase(t *testing.T) {
	err := Migrate(nil, config.DriverSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection is nil")
}

func TestMigrateUnsupportedDriver(t *testing.T) {
	err := Migrate(createTestDB(t), "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrateSQLite(t *testing.T) {
	db := createTestDB(t)

	require.NoError(t, Migrate(db, config.DriverSQLite))
	// Running again is a no-op.
	require.NoError(t, Migrate(db, config.DriverSQLite))

	for _, table := range []string{"users", "travel_groups", "group_members", "messages"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
	}
	assert.True(t, db.Migrator().HasIndex("users", "idx_users_username"))
	assert.True(t, db.Migrator().HasIndex("users", "idx_users_email"))
	assert.True(t, db.Migrator().HasIndex("group_members", "idx_group_members_group_user"))
}

func TestMigratePostgresWithNonExistentDirectory(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", "/non/existent/path")

	err := Migrate(createTestDB(t), config.DriverPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory does not exist")
}

func TestMigratePostgresDriverOnSQLiteConnection(t *testing.T) {
	t.Setenv("MIGRATIONS_PATH", t.TempDir())

	err := Migrate(createTestDB(t), config.DriverPostgres)
	assert.Error(t, err)
}
