package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"fintrack-backend/pkg/config"
)

// NewPostgresConnection opens a GORM connection to Postgres using the
// application config.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	logLevel := glogger.Warn
	if cfg.IsProduction() {
		logLevel = glogger.Error
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: glogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("database: connecting to postgres: %w", err)
	}
	return db, nil
}
