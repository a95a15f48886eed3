// Package migrate provides database schema management.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	appConfig "github.com/festy23/travel_together/internal/config"
	"github.com/festy23/travel_together/internal/database/config"
	groupModel "github.com/festy23/travel_together/internal/group/model"
	messageModel "github.com/festy23/travel_together/internal/message/model"
	userModel "github.com/festy23/travel_together/internal/user/model"
)

// GetMigrationsPath returns the default path to migrations directory.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Models lists every persisted model, in dependency order.
func Models() []any {
	return []any{
		&userModel.User{},
		&groupModel.TravelGroup{},
		&groupModel.GroupMember{},
		&messageModel.Message{},
	}
}

// Migrate brings the schema up to date. PostgreSQL runs the versioned SQL
// migrations; SQLite, used for local runs and tests, is migrated from the models.
func Migrate(db *gorm.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	switch driver {
	case config.DriverPostgres:
		return migratePostgres(db)
	case config.DriverSQLite:
		return AutoMigrate(db)
	default:
		return fmt.Errorf("unsupported database driver: %q", driver)
	}
}

// AutoMigrate creates or updates tables from the models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}
	return nil
}

func migratePostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrationsPath, err := filepath.Abs(GetMigrationsPath())
	if err != nil {
		return fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}
	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
