package database

import (
	"fmt"
	"time"

	"backend/internal/config"
	"backend/internal/model"
	"backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewConnection initializes a connection pool using GORM and migrates the
// schema.
func NewConnection(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Error
	switch cfg.Database.LogLevel {
	case "silent":
		logLevel = gormlogger.Silent
	case "warn":
		logLevel = gormlogger.Warn
	case "info":
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	log := logger.Get()
	start := time.Now()
	log.Info("Starting database migration...")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.Shift{},
		&model.InventoryItem{},
		&model.InventoryLog{},
		&model.Equipment{},
		&model.MaintenanceLog{},
		&model.Customer{},
		&model.SalesOrder{},
		&model.BoardFootCalculator{},
		&model.QuestionAndAnswer{},
		&model.RoleModule{},
	); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	log.Info("Database migration completed",
		zap.Duration("duration", time.Since(start)))

	return db, nil
}
