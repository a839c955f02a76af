// Package repositories provides the Postgres-backed data access layer.
package repositories

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"walletsync/internal/config"
	"walletsync/internal/models"
)

// InitDB opens the Postgres connection, tunes the pool from config, verifies
// connectivity and migrates the schema. The returned handle is injected into
// everything that touches the database; there is no package-level singleton.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate provisions the Wallets and Transactions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Wallet{}, &models.Transaction{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// CloseDB releases the underlying connection pool.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
