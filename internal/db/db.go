package db

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jarana/guia/internal/config"
)

// Open connects to postgres when a database URL is configured and falls back
// to a local sqlite file otherwise.
func Open(conf *config.DatabaseConfig) (*gorm.DB, error) {
	if conf.URL != "" {
		return OpenPostgresWithURL(conf.URL)
	}

	return OpenSQLite(conf.SQLitePath)
}

func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{Logger: newGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	zap.L().Info("connected to postgres")

	return db, nil
}

func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	// sqlite allows one writer at a time.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	zap.L().Info("connected to sqlite", zap.String("path", path))

	return db, nil
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(
		zap.NewStdLog(zap.L()),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
