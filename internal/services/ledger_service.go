package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"memberpay/internal/clients"
	"memberpay/internal/models/db_models"
	"memberpay/internal/repositories"
	"memberpay/pkg/utils"
)

// LedgerServiceInterface is the append-mostly store of payment
// attempts. Recording is idempotent per gateway reference; manual
// receipts always enter pending.
type LedgerServiceInterface interface {
	// RecordGatewayPayment inserts one transaction for a verified
	// gateway result. The status is taken verbatim from the gateway
	// and the amount is normalized from minor units. A successful
	// subscription payment also flips the member's subscribed flag,
	// atomically with the insert.
	RecordGatewayPayment(ctx context.Context, memberID uuid.UUID, target db_models.PaymentTarget, result *clients.VerifyResult) (*db_models.Transaction, error)

	// RecordManualReceipt inserts a pending transaction for an
	// uploaded receipt. The amount comes from the due's definition,
	// never from the caller.
	RecordManualReceipt(ctx context.Context, memberID uuid.UUID, due *db_models.Due, receiptURL string) (*db_models.Transaction, error)

	// ReviewTransaction is the admin decision on a pending payment.
	ReviewTransaction(ctx context.Context, admin *db_models.Member, transactionID uuid.UUID, status db_models.TransactionStatus) (*db_models.Transaction, error)

	ListByMemberAndStatus(ctx context.Context, memberID uuid.UUID, status db_models.TransactionStatus) ([]db_models.Transaction, error)
	ListDuePayments(ctx context.Context) ([]db_models.Transaction, error)
	ListSubscriptionPayments(ctx context.Context) ([]db_models.Transaction, error)
}

type ledgerService struct {
	transactions repositories.TransactionRepository
}

func NewLedgerService(transactions repositories.TransactionRepository) LedgerServiceInterface {
	return &ledgerService{transactions: transactions}
}

func (s *ledgerService) RecordGatewayPayment(ctx context.Context, memberID uuid.UUID, target db_models.PaymentTarget, result *clients.VerifyResult) (*db_models.Transaction, error) {
	txn := &db_models.Transaction{
		MemberID:       memberID,
		DueID:          target.DueID(),
		SubscriptionID: target.SubscriptionID(),
		Amount:         float64(result.AmountMinor) / 100,
		RefID:          result.Reference,
		Status:         db_models.TransactionStatus(result.Status),
		Channel:        result.Channel,
		PaidAt:         result.PaidAt,
		IP:             result.IPAddress,
	}
	if len(result.Raw) > 0 {
		txn.Metadata = datatypes.JSON(result.Raw)
	}

	if target.IsSubscription() && txn.Status == db_models.TxnStatusSuccess {
		if err := s.transactions.CreateAndSubscribe(ctx, txn, memberID); err != nil {
			return nil, err
		}
		return txn, nil
	}

	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) RecordManualReceipt(ctx context.Context, memberID uuid.UUID, due *db_models.Due, receiptURL string) (*db_models.Transaction, error) {
	dueID := due.ID
	txn := &db_models.Transaction{
		MemberID: memberID,
		DueID:    &dueID,
		Amount:   due.Amount,
		RefID:    db_models.ManualPaymentRef,
		Status:   db_models.TxnStatusPending,
		Channel:  db_models.ManualPaymentRef,
		Receipt:  receiptURL,
	}
	if err := s.transactions.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ReviewTransaction(ctx context.Context, admin *db_models.Member, transactionID uuid.UUID, status db_models.TransactionStatus) (*db_models.Transaction, error) {
	if admin == nil || !admin.IsAdministrator() {
		return nil, utils.ErrNotAnAdministrator
	}

	txn, err := s.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}

	if err := s.transactions.UpdateStatus(ctx, transactionID, status); err != nil {
		return nil, utils.ErrDatabaseError
	}
	txn.Status = status
	return txn, nil
}

func (s *ledgerService) ListByMemberAndStatus(ctx context.Context, memberID uuid.UUID, status db_models.TransactionStatus) ([]db_models.Transaction, error) {
	txns, err := s.transactions.ListByMemberAndStatus(ctx, memberID, status)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

func (s *ledgerService) ListDuePayments(ctx context.Context) ([]db_models.Transaction, error) {
	txns, err := s.transactions.ListDuePayments(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

func (s *ledgerService) ListSubscriptionPayments(ctx context.Context) ([]db_models.Transaction, error) {
	txns, err := s.transactions.ListSubscriptionPayments(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}
