package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"absenteeism-system/internal/model"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDB opens the configured database and migrates the tables the
// application writes to.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.DBDriver == "sqlite" {
		// One writer at a time; this also keeps ":memory:" on a single database.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(
		&model.AbsenceEvent{},
		&model.PredictionLog{},
		&model.Reason{},
		&model.EducationLevel{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	logrus.WithField("driver", cfg.DBDriver).Info("Database connected")
	return db, nil
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBDSN != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.DBDSN), 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		return sqlite.Open(cfg.DBDSN), nil
	case "mysql":
		// e.g. root:@tcp(127.0.0.1:3306)/absenteeism?charset=utf8mb4&parseTime=True&loc=Local
		return mysql.Open(cfg.DBDSN), nil
	case "postgres":
		return postgres.Open(cfg.DBDSN), nil
	default:
		return nil, fmt.Errorf("%w: unknown DB_DRIVER %q", ErrInvalidConfig, cfg.DBDriver)
	}
}

// Ping reports whether the database answers.
func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not configured")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
