package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenGorm connects to MySQL. SQL statements are only logged in development.
func OpenGorm(dsn string, development bool, log *zap.Logger) (*gorm.DB, error) {
	level := logger.Warn
	if development {
		level = logger.Info
	}
	db, err := openGorm(mysql.Open(dsn), level)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Info("gorm: connected")
	}
	return db, nil
}

// OpenGormWithDialector is OpenGorm for a prepared dialector (tests, sqlite).
func OpenGormWithDialector(d gorm.Dialector) (*gorm.DB, error) {
	return openGorm(d, logger.Silent)
}

func openGorm(d gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               logger.Default.LogMode(level),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(d, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
