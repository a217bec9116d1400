package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"memberpay/internal/models/db_models"
)

type SessionTokenRepository interface {
	// Rotate replaces the member's live token id for a purpose in one
	// upsert, so revoke-old and issue-new cannot interleave with a
	// racing login. Last writer wins.
	Rotate(ctx context.Context, memberID uuid.UUID, purpose string, tokenID uuid.UUID) error
	CurrentTokenID(ctx context.Context, memberID uuid.UUID, purpose string) (uuid.UUID, error)
}

type sessionTokenRepository struct {
	db *gorm.DB
}

func NewSessionTokenRepository(db *gorm.DB) SessionTokenRepository {
	return &sessionTokenRepository{db: db}
}

func (r *sessionTokenRepository) Rotate(ctx context.Context, memberID uuid.UUID, purpose string, tokenID uuid.UUID) error {
	record := db_models.SessionToken{
		MemberID: memberID,
		Purpose:  purpose,
		TokenID:  tokenID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "purpose"}},
		DoUpdates: clause.AssignmentColumns([]string{"token_id", "updated_at"}),
	}).Create(&record).Error
}

func (r *sessionTokenRepository) CurrentTokenID(ctx context.Context, memberID uuid.UUID, purpose string) (uuid.UUID, error) {
	var record db_models.SessionToken
	err := r.db.WithContext(ctx).
		First(&record, "member_id = ? AND purpose = ?", memberID, purpose).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return record.TokenID, nil
}
