package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"jewelry_backend/internals/configs"
)

func ConnectDB(cfg *configs.Config, log *zap.Logger) (*gorm.DB, error) {
	level := gormLogger.Warn
	if !cfg.IsProduction() && cfg.LogLevel == "debug" {
		level = gormLogger.Info
	}

	db, err := Open(cfg.DatabaseURL, configs.NewGormLogger(log, level))
	if err != nil {
		return nil, err
	}
	log.Info("🔌 connecting to database", zap.String("driver", db.Dialector.Name()))

	if err := TunePool(db); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Ping(ctx, db); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("✅ DB connected")
	return db, nil
}

// Dialector picks the driver from the DSN: "sqlite:<path>" or "file:<path>"
// opens SQLite (local development and tests), anything else is PostgreSQL.
func Dialector(dsn string) gorm.Dialector {
	switch {
	case strings.HasPrefix(dsn, "sqlite:"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite:"))
	case strings.HasPrefix(dsn, "file:"):
		return sqlite.Open(dsn)
	}
	return postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	})
}

func Open(dsn string, logger gormLogger.Interface) (*gorm.DB, error) {
	if logger == nil {
		logger = gormLogger.Discard
	}
	db, err := gorm.Open(Dialector(dsn), &gorm.Config{
		Logger:         logger,
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("pool tune: %w", err)
	}
	if db.Dialector.Name() == "sqlite" {
		// one writer; also keeps a :memory: database alive across queries
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxIdleTime(0)
		sqlDB.SetConnMaxLifetime(0)
		return nil
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
