package identity_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"memberpay/internal/clients"
	"memberpay/internal/config"
	"memberpay/internal/repositories"
	"memberpay/internal/services"
)

var Module = fx.Provide(
	provideMemberRepo, provideIdentityService)

func provideMemberRepo(db *gorm.DB) repositories.MemberRepository {
	return repositories.NewMemberRepository(db)
}

func provideIdentityService(
	members repositories.MemberRepository,
	storage clients.FileStorage,
	notifier services.NotificationServiceInterface,
	mailer services.IMailService,
	logger *logrus.Logger,
	cfg *config.Config,
) services.IdentityServiceInterface {
	return services.NewIdentityService(members, storage, notifier, mailer, logger,
		cfg.AppName, cfg.MembershipIDPrefix, cfg.Storage.Folder)
}
