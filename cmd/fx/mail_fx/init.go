package mail_fx

import (
	"go.uber.org/fx"

	"memberpay/internal/config"
	"memberpay/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService(cfg *config.Config) (services.IMailService, error) {
	return services.NewSMTPMailService(cfg.SMTP, cfg.AppName)
}
