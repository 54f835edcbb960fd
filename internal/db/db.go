package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/venue-scheduler/internal/config"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/models"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

func NewDB(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if cfg.DBDebug {
		level = gormlogger.Info
	}

	var (
		db  *gorm.DB
		err error
	)

	// o banco pode subir depois da API no docker-compose
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
			PrepareStmt:    true,
			TranslateError: true,
			Logger:         gormlogger.Default.LogMode(level),
		})
		if err == nil {
			break
		}
		log.Warn("db", "connect attempt %d/%d failed: %v", attempt, connectAttempts, err)
		time.Sleep(connectBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("db", "connected and migrated")
	return db, nil
}
