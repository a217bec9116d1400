package infra

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"memberpay/internal/config"
	"memberpay/internal/models/db_models"
)

// InitPostgresql opens the pool and keeps schema in sync. The
// TranslateError option is what turns unique-index violations into
// gorm.ErrDuplicatedKey, which the ledger relies on for idempotent
// reference recording.
func InitPostgresql(cfg *config.Config, logger *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.WithError(err).Fatal("error connecting to database")
	}

	if err := db.AutoMigrate(
		&db_models.Member{},
		&db_models.Category{},
		&db_models.Due{},
		&db_models.Subscription{},
		&db_models.Transaction{},
		&db_models.ResetCode{},
		&db_models.Notification{},
		&db_models.SessionToken{},
	); err != nil {
		logger.WithError(err).Fatal("error migrating database schema")
	}

	return db
}

func ClosePostgresql(db *gorm.DB, logger *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.WithError(err).Error("error getting database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.WithError(err).Error("error closing database connection")
	}
}
