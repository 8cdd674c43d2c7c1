package database

import (
	"errors"
	"fmt"
	"time"

	"billbook/internal/logger"
	"billbook/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config *Config
}

// NewManager creates a new database manager
func NewManager(config *Config) (*Manager, error) {
	db, err := gorm.Open(dialector(config), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == DriverSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return &Manager{db: db, config: config}, nil
}

func dialector(config *Config) gorm.Dialector {
	switch config.Driver {
	case DriverMySQL:
		return mysql.Open(config.DSN())
	case DriverSQLite:
		return sqlite.Open(config.DSN())
	default:
		return postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	}
}

// NewMigrator creates a golang-migrate instance for the configured driver.
func NewMigrator(config *Config) (*migrate.Migrate, error) {
	if config.Driver == DriverSQLite {
		return nil, fmt.Errorf("sql migrations are not used with %s; tables are auto-migrated", DriverSQLite)
	}
	mig, err := migrate.New(config.MigrationsSource(), config.MigrateURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

// CloseMigrator closes both ends of a migrate instance, logging failures.
func CloseMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// RunMigrations applies pending SQL migrations for the configured driver.
// SQLite databases are auto-migrated from the models instead.
func (m *Manager) RunMigrations() error {
	logger.Get().Infow("Running database migrations...", "driver", m.config.Driver)

	if m.config.Driver == DriverSQLite {
		if err := m.db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Get().Info("Database migrations completed successfully")
		return nil
	}

	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer CloseMigrator(mig)

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
