package credential_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"memberpay/internal/repositories"
	"memberpay/internal/services"
)

var Module = fx.Provide(
	provideSessionTokenRepo, provideResetCodeRepo, provideCredentialService)

func provideSessionTokenRepo(db *gorm.DB) repositories.SessionTokenRepository {
	return repositories.NewSessionTokenRepository(db)
}

func provideResetCodeRepo(db *gorm.DB) repositories.ResetCodeRepository {
	return repositories.NewResetCodeRepository(db)
}

func provideCredentialService(
	members repositories.MemberRepository,
	tokens repositories.SessionTokenRepository,
	codes repositories.ResetCodeRepository,
	mailer services.IMailService,
	logger *logrus.Logger,
) services.CredentialServiceInterface {
	return services.NewCredentialService(members, tokens, codes, mailer, logger)
}
