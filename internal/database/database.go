package database

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"moul.io/zapgorm2"

	"videogames/backend/internal/config"
	"videogames/backend/internal/models"
)

// Connect opens the store for driver and synchronises the schema.
// Existing tables are never dropped.
func Connect(driver, dsn string, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := Open(dialector, newGormLogger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established", zap.String("driver", driver))

	// An in-memory sqlite database only exists on the connection that created it.
	if driver == config.DriverSQLite && strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database migrated successfully")

	return db, nil
}

// Open wraps gorm.Open with the options every connection in this service uses.
func Open(dialector gorm.Dialector, gormLog gormlogger.Interface) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         gormLog,
		TranslateError: true,
	})
}

// Migrate creates missing tables, columns and indexes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Genre{}, &models.Game{})
}

func newGormLogger(log *zap.Logger) gormlogger.Interface {
	gormLog := zapgorm2.New(log.Named("gorm"))
	gormLog.SlowThreshold = 200 * time.Millisecond
	gormLog.IgnoreRecordNotFoundError = true
	gormLog.SetAsDefault()
	return gormLog.LogMode(gormlogger.Warn)
}
