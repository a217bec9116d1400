package db_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"memberpay/internal/config"
	"memberpay/internal/infra"
)

var Module = fx.Provide(
	provideLogger, provideConfig, provideDB)

func provideLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	return logger
}

func provideConfig(logger *logrus.Logger) *config.Config {
	return config.Load(logger)
}

func provideDB(cfg *config.Config, logger *logrus.Logger) *gorm.DB {
	return infra.InitPostgresql(cfg, logger)
}
