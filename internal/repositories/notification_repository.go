package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberpay/internal/models/db_models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *db_models.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Notification, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error)
	ListUnread(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error)
	CountUnread(ctx context.Context, memberID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Notification, error) {
	var n db_models.Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error) {
	var list []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *notificationRepository) ListUnread(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error) {
	var list []db_models.Notification
	err := r.db.WithContext(ctx).
		Where("member_id = ? AND status = ?", memberID, db_models.NotificationUnread).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, memberID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("member_id = ? AND status = ?", memberID, db_models.NotificationUnread).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ?", id).
		Update("status", db_models.NotificationRead).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Notification{}, "id = ?", id).Error
}
