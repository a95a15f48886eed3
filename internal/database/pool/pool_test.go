package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func createTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig()
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 5, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, cfg.ConnMaxIdleTime)
}

func TestSQLitePoolConfig(t *testing.T) {
	cfg := SQLitePoolConfig()
	assert.Equal(t, 1, cfg.MaxOpenConns)
	assert.Equal(t, 1, cfg.MaxIdleConns)
	assert.Zero(t, cfg.ConnMaxLifetime)
}

func TestLoadPoolConfigFromEnv(t *testing.T) {
	t.Run("keeps base when unset", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "")
		t.Setenv("DB_MAX_IDLE_CONNS", "")
		t.Setenv("DB_CONN_MAX_LIFETIME", "")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "")

		assert.Equal(t, DefaultPoolConfig(), LoadPoolConfigFromEnv(DefaultPoolConfig()))
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "40")
		t.Setenv("DB_MAX_IDLE_CONNS", "8")
		t.Setenv("DB_CONN_MAX_LIFETIME", "1m")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "30s")

		cfg := LoadPoolConfigFromEnv(DefaultPoolConfig())

		assert.Equal(t, Config{
			MaxOpenConns:    40,
			MaxIdleConns:    8,
			ConnMaxLifetime: time.Minute,
			ConnMaxIdleTime: 30 * time.Second,
		}, cfg)
	})
}

func TestSetupConnectionPool(t *testing.T) {
	t.Run("applies settings", func(t *testing.T) {
		db := createTestDB(t)

		err := SetupConnectionPool(db, Config{MaxOpenConns: 10, MaxIdleConns: 5})
		require.NoError(t, err)

		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
	})

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero max open", cfg: Config{MaxOpenConns: 0}, wantErr: "MaxOpenConns must be greater than 0"},
		{name: "negative idle", cfg: Config{MaxOpenConns: 1, MaxIdleConns: -1}, wantErr: "MaxIdleConns must be non-negative"},
		{
			name:    "idle above open",
			cfg:     Config{MaxOpenConns: 2, MaxIdleConns: 3},
			wantErr: "MaxIdleConns (3) cannot be greater than MaxOpenConns (2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := createTestDB(t)
			err := SetupConnectionPool(db, tt.cfg)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
