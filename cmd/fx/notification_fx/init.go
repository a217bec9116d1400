package notification_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"memberpay/internal/repositories"
	"memberpay/internal/services"
)

var Module = fx.Provide(
	provideNotificationRepo, provideNotificationService)

func provideNotificationRepo(db *gorm.DB) repositories.NotificationRepository {
	return repositories.NewNotificationRepository(db)
}

func provideNotificationService(repo repositories.NotificationRepository, logger *logrus.Logger) services.NotificationServiceInterface {
	return services.NewNotificationService(repo, logger)
}
