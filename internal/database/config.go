package database

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

// Supported drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds database configuration
type Config struct {
	Driver        string
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	Path          string // sqlite file
	MigrationsDir string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	driver := getEnv("DB_DRIVER", DriverPostgres)
	defaultPort := "5432"
	switch driver {
	case DriverPostgres, DriverSQLite:
	case DriverMySQL:
		defaultPort = "3306"
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres, mysql or sqlite)", driver)
	}

	return &Config{
		Driver:        driver,
		Host:          getEnv("DB_HOST", "localhost"),
		Port:          getEnv("DB_PORT", defaultPort),
		User:          getEnv("DB_USER", "billbook"),
		Password:      getEnv("DB_PASSWORD", "billbook"),
		DBName:        getEnv("DB_NAME", "billbook"),
		SSLMode:       getEnv("DB_SSLMODE", "disable"),
		Path:          getEnv("DB_PATH", "billbook.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}, nil
}

// DSN returns the driver-specific connection string used by GORM.
func (c *Config) DSN() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.DBName)
	case DriverSQLite:
		return c.Path
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
}

// MigrateURL returns the golang-migrate database URL. SQLite databases are
// migrated with GORM instead and have no migrate URL.
func (c *Config) MigrateURL() string {
	switch c.Driver {
	case DriverMySQL:
		return fmt.Sprintf("mysql://%s:%s@tcp(%s:%s)/%s?multiStatements=true",
			url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName)
	case DriverPostgres:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host, c.Port, c.DBName, c.SSLMode)
	default:
		return ""
	}
}

// MigrationsSource returns the file:// source for this driver's SQL files.
func (c *Config) MigrationsSource() string {
	return "file://" + c.MigrationsDir + "/" + c.Driver
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
