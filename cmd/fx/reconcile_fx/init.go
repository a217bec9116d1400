package reconcile_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"memberpay/internal/clients"
	"memberpay/internal/config"
	"memberpay/internal/repositories"
	"memberpay/internal/services"
)

var Module = fx.Provide(
	provideReconciliationService)

func provideReconciliationService(
	identity services.IdentityServiceInterface,
	ledger services.LedgerServiceInterface,
	dues repositories.DueRepository,
	subscriptions repositories.SubscriptionRepository,
	gateway clients.PaymentGateway,
	storage clients.FileStorage,
	notifier services.NotificationServiceInterface,
	mailer services.IMailService,
	logger *logrus.Logger,
	cfg *config.Config,
) services.ReconciliationServiceInterface {
	return services.NewReconciliationService(identity, ledger, dues, subscriptions,
		gateway, storage, notifier, mailer, logger, cfg.Storage.Folder)
}
