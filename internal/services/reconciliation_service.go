package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"memberpay/internal/clients"
	"memberpay/internal/models/db_models"
	"memberpay/internal/repositories"
	"memberpay/pkg/metrics"
	"memberpay/pkg/utils"
)

// ReconciliationServiceInterface orchestrates verify-record-flip-notify
// for both payment tracks and the admin-side member admission actions.
//
// The gateway call happens before any mutation, so a gateway failure
// leaves no partial state. The ledger insert and the subscribed flag
// are one database transaction; a duplicate reference aborts both.
// Notifications and mail are emitted after commit and never fail the
// operation.
type ReconciliationServiceInterface interface {
	SettleSubscriptionPayment(ctx context.Context, memberID, subscriptionID uuid.UUID, gatewayRef string) (*db_models.Transaction, error)
	SettleDuePayment(ctx context.Context, memberID, dueID uuid.UUID, gatewayRef string) (*db_models.Transaction, error)
	SubmitManualReceipt(ctx context.Context, memberID, dueID uuid.UUID, receipt []byte, filename string) (*db_models.Transaction, error)
	AdminReviewDuePayment(ctx context.Context, adminID, transactionID uuid.UUID, status db_models.TransactionStatus) error

	ActivateMember(ctx context.Context, adminID, memberID uuid.UUID) (*db_models.Member, error)
	DeactivateMember(ctx context.Context, adminID, memberID uuid.UUID) (*db_models.Member, error)
}

type reconciliationService struct {
	identity      IdentityServiceInterface
	ledger        LedgerServiceInterface
	dues          repositories.DueRepository
	subscriptions repositories.SubscriptionRepository
	gateway       clients.PaymentGateway
	storage       clients.FileStorage
	notifier      NotificationServiceInterface
	mailer        IMailService
	logger        *logrus.Logger
	folder        string
}

func NewReconciliationService(
	identity IdentityServiceInterface,
	ledger LedgerServiceInterface,
	dues repositories.DueRepository,
	subscriptions repositories.SubscriptionRepository,
	gateway clients.PaymentGateway,
	storage clients.FileStorage,
	notifier NotificationServiceInterface,
	mailer IMailService,
	logger *logrus.Logger,
	folder string,
) ReconciliationServiceInterface {
	return &reconciliationService{
		identity:      identity,
		ledger:        ledger,
		dues:          dues,
		subscriptions: subscriptions,
		gateway:       gateway,
		storage:       storage,
		notifier:      notifier,
		mailer:        mailer,
		logger:        logger,
		folder:        folder,
	}
}

func (s *reconciliationService) SettleSubscriptionPayment(ctx context.Context, memberID, subscriptionID uuid.UUID, gatewayRef string) (*db_models.Transaction, error) {
	sub, err := s.subscriptions.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	result, err := s.gateway.Verify(ctx, gatewayRef)
	if err != nil {
		metrics.GatewayFailures.Inc()
		return nil, err
	}

	txn, err := s.ledger.RecordGatewayPayment(ctx, memberID,
		db_models.SubscriptionTarget(subscriptionID), result)
	if err != nil {
		if errors.Is(err, utils.ErrDuplicateReference) {
			metrics.DuplicateReferences.Inc()
		}
		return nil, err
	}
	metrics.PaymentsSettled.WithLabelValues("subscription", string(txn.Status)).Inc()

	if txn.Status == db_models.TxnStatusSuccess {
		s.notifier.Emit(ctx, memberID, "Subscription Payment",
			"You have successfully subscribed.", "Subscription Payment", nil)
	}
	return txn, nil
}

func (s *reconciliationService) SettleDuePayment(ctx context.Context, memberID, dueID uuid.UUID, gatewayRef string) (*db_models.Transaction, error) {
	due, err := s.dues.FindByID(ctx, dueID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if due == nil {
		return nil, utils.ErrDueNotFound
	}

	result, err := s.gateway.Verify(ctx, gatewayRef)
	if err != nil {
		metrics.GatewayFailures.Inc()
		return nil, err
	}

	txn, err := s.ledger.RecordGatewayPayment(ctx, memberID,
		db_models.DueTarget(dueID), result)
	if err != nil {
		if errors.Is(err, utils.ErrDuplicateReference) {
			metrics.DuplicateReferences.Inc()
		}
		return nil, err
	}
	metrics.PaymentsSettled.WithLabelValues("due", string(txn.Status)).Inc()

	if txn.Status == db_models.TxnStatusSuccess {
		s.notifier.Emit(ctx, memberID, "Due Payment",
			"You have successfully made a payment.", "Due Payment", nil)
	}
	return txn, nil
}

func (s *reconciliationService) SubmitManualReceipt(ctx context.Context, memberID, dueID uuid.UUID, receipt []byte, filename string) (*db_models.Transaction, error) {
	due, err := s.dues.FindByID(ctx, dueID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if due == nil {
		return nil, utils.ErrDueNotFound
	}
	if due.Status != db_models.DueStatusActive {
		return nil, utils.ErrDueInactive
	}

	receiptURL, err := s.storage.Upload(ctx, receipt, s.folder, filename)
	if err != nil {
		return nil, err
	}

	txn, err := s.ledger.RecordManualReceipt(ctx, memberID, due, receiptURL)
	if err != nil {
		return nil, err
	}
	metrics.ManualReceipts.Inc()

	s.notifier.Emit(ctx, memberID, "Due Payment",
		"You have successfully uploaded a payment receipt.", "Due Payment", nil)
	return txn, nil
}

func (s *reconciliationService) AdminReviewDuePayment(ctx context.Context, adminID, transactionID uuid.UUID, status db_models.TransactionStatus) error {
	admin, err := s.identity.FindByID(ctx, adminID)
	if err != nil {
		return err
	}

	txn, err := s.ledger.ReviewTransaction(ctx, admin, transactionID, status)
	if err != nil {
		return err
	}

	s.notifier.Emit(ctx, txn.MemberID, "Due Payment",
		"Your payment has been reviewed.", "Due Payment", &adminID)
	return nil
}

func (s *reconciliationService) ActivateMember(ctx context.Context, adminID, memberID uuid.UUID) (*db_models.Member, error) {
	if _, err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	member, firstActivation, err := s.identity.TransitionStatus(ctx, memberID, db_models.MemberStatusActive)
	if err != nil {
		return nil, err
	}

	if firstActivation {
		if err := s.mailer.SendActivationMail(member); err != nil {
			s.logger.WithError(err).WithField("email", member.Email).
				Warn("activation mail failed")
		}
		s.notifier.Emit(ctx, member.ID, "Account Activated",
			fmt.Sprintf("Welcome %s, your membership account is now active.", member.FullName()),
			"Account Activated", &adminID)
	}
	return member, nil
}

func (s *reconciliationService) DeactivateMember(ctx context.Context, adminID, memberID uuid.UUID) (*db_models.Member, error) {
	if _, err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	member, _, err := s.identity.TransitionStatus(ctx, memberID, db_models.MemberStatusInactive)
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (s *reconciliationService) requireAdmin(ctx context.Context, adminID uuid.UUID) (*db_models.Member, error) {
	admin, err := s.identity.FindByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !admin.IsAdministrator() {
		return nil, utils.ErrNotAnAdministrator
	}
	return admin, nil
}
