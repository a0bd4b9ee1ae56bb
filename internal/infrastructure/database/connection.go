// Package database opens the optional telemetry store (config.TelemetryConfig)
// and runs its migration.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MyForking/halite3-bot-1/internal/adapters/persistence"
	"github.com/MyForking/halite3-bot-1/internal/infrastructure/config"
)

// NewConnection opens a database connection per cfg.Driver/cfg.DSN.
func NewConnection(cfg config.TelemetryConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = ":memory:"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported telemetry driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open telemetry database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates/updates the turn_records table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&persistence.TurnRecord{})
}

// Close closes the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
