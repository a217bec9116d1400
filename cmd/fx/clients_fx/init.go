package clients_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"memberpay/internal/clients"
	"memberpay/internal/config"
)

var Module = fx.Provide(
	provideGateway, provideStorage)

func provideGateway(cfg *config.Config, logger *logrus.Logger) clients.PaymentGateway {
	return clients.NewPaystackGateway(cfg.Gateway, logger)
}

func provideStorage(cfg *config.Config, logger *logrus.Logger) clients.FileStorage {
	return clients.NewHTTPFileStorage(cfg.Storage, logger)
}
