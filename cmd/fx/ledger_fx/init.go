package ledger_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"memberpay/internal/repositories"
	"memberpay/internal/services"
)

var Module = fx.Provide(
	provideTransactionRepo, provideLedgerService)

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideLedgerService(transactions repositories.TransactionRepository) services.LedgerServiceInterface {
	return services.NewLedgerService(transactions)
}
