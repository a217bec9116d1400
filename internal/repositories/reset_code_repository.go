package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberpay/internal/models/db_models"
)

type ResetCodeRepository interface {
	// Replace deletes any live code for the email and inserts the new
	// one in a single database transaction, so concurrent
	// forget-password calls cannot leave two live codes.
	Replace(ctx context.Context, code *db_models.ResetCode) error
	FindByCode(ctx context.Context, code string) (*db_models.ResetCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type resetCodeRepository struct {
	db *gorm.DB
}

func NewResetCodeRepository(db *gorm.DB) ResetCodeRepository {
	return &resetCodeRepository{db: db}
}

func (r *resetCodeRepository) Replace(ctx context.Context, code *db_models.ResetCode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("email = ?", code.Email).
			Delete(&db_models.ResetCode{}).Error; err != nil {
			return err
		}
		return tx.Create(code).Error
	})
}

func (r *resetCodeRepository) FindByCode(ctx context.Context, code string) (*db_models.ResetCode, error) {
	var rc db_models.ResetCode
	err := r.db.WithContext(ctx).First(&rc, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rc, nil
}

func (r *resetCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Delete(&db_models.ResetCode{}, "id = ?", id).Error
}
