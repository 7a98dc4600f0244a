package config

import (
	"time"

	"github.com/xiao1992/WellnessTracker/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the shared connection pool and migrates the schema.
// Called once at process start; the pool lives until shutdown.
func InitDB(cfg Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return DB.AutoMigrate(
		&models.User{},
		&models.HealthEntry{},
		&models.DiaryEntry{},
	)
}
