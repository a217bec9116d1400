package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberpay/internal/models/db_models"
)

type MemberRepository interface {
	Insert(ctx context.Context, member *db_models.Member) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error)
	// FindByLoginKey matches the key against username or email.
	FindByLoginKey(ctx context.Context, key string) (*db_models.Member, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Member, error)
	FindByUsername(ctx context.Context, username string) (*db_models.Member, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.MemberStatus) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Save(ctx context.Context, member *db_models.Member) error
	// CountMembers counts non-administrator rows, used for membership
	// id generation.
	CountMembers(ctx context.Context) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Insert(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByLoginKey(ctx context.Context, key string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).
		Where("username = ? OR email = ?", key, key).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByUsername(ctx context.Context, username string) (*db_models.Member, error) {
	var member db_models.Member
	err := r.db.WithContext(ctx).First(&member, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.MemberStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *memberRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (r *memberRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (r *memberRepository) Save(ctx context.Context, member *db_models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Member{}).
		Where("account_type <> ?", db_models.AccountTypeAdministrator).
		Count(&count).Error
	return count, err
}
