package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberpay/internal/models/db_models"
	"memberpay/pkg/utils"
)

type TransactionRepository interface {
	// Create inserts a transaction. A gateway reference that already
	// exists surfaces as utils.ErrDuplicateReference; the partial
	// unique index enforces this even when two requests race past any
	// application pre-check.
	Create(ctx context.Context, txn *db_models.Transaction) error
	// CreateAndSubscribe inserts the transaction and flips the
	// member's subscribed flag in one database transaction. If the
	// insert is rejected as a duplicate the flag is untouched.
	CreateAndSubscribe(ctx context.Context, txn *db_models.Transaction, memberID uuid.UUID) error
	ExistsByRef(ctx context.Context, refID string) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TransactionStatus) error
	ListByMemberAndStatus(ctx context.Context, memberID uuid.UUID, status db_models.TransactionStatus) ([]db_models.Transaction, error)
	ListDuePayments(ctx context.Context) ([]db_models.Transaction, error)
	ListSubscriptionPayments(ctx context.Context) ([]db_models.Transaction, error)
	ListByDue(ctx context.Context, dueID uuid.UUID) ([]db_models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func translateCreateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrDuplicateReference
	}
	return err
}

func (r *transactionRepository) Create(ctx context.Context, txn *db_models.Transaction) error {
	return translateCreateError(r.db.WithContext(ctx).Create(txn).Error)
}

func (r *transactionRepository) CreateAndSubscribe(ctx context.Context, txn *db_models.Transaction, memberID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.Member{}).
			Where("id = ?", memberID).
			Update("is_subscribed", true).Error
	})
	return translateCreateError(err)
}

func (r *transactionRepository) ExistsByRef(ctx context.Context, refID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("ref_id = ?", refID).
		Count(&count).Error
	return count > 0, err
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).First(&txn, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TransactionStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *transactionRepository) ListByMemberAndStatus(ctx context.Context, memberID uuid.UUID, status db_models.TransactionStatus) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, status).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) ListDuePayments(ctx context.Context) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("due_id IS NOT NULL").
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) ListSubscriptionPayments(ctx context.Context) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("subscription_id IS NOT NULL").
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}

func (r *transactionRepository) ListByDue(ctx context.Context, dueID uuid.UUID) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := r.db.WithContext(ctx).
		Where("due_id = ?", dueID).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}
