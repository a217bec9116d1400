package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"memberpay/internal/models/db_models"
	"memberpay/internal/repositories"
	"memberpay/pkg/utils"
)

type NotificationServiceInterface interface {
	// Emit records a notification for later display. It is
	// fire-and-forget: failures are logged and never abort the
	// operation that triggered them.
	Emit(ctx context.Context, memberID uuid.UUID, title, body, notificationType string, fromID *uuid.UUID)

	ListAll(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error)
	ListUnread(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error)
	CountUnread(ctx context.Context, memberID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, callerID, notificationID uuid.UUID) error
	Delete(ctx context.Context, callerID uuid.UUID, callerIsAdmin bool, notificationID uuid.UUID) error
}

type notificationService struct {
	repo   repositories.NotificationRepository
	logger *logrus.Logger
}

func NewNotificationService(repo repositories.NotificationRepository, logger *logrus.Logger) NotificationServiceInterface {
	return &notificationService{repo: repo, logger: logger}
}

func (s *notificationService) Emit(ctx context.Context, memberID uuid.UUID, title, body, notificationType string, fromID *uuid.UUID) {
	n := &db_models.Notification{
		MemberID: memberID,
		FromID:   fromID,
		Title:    title,
		Body:     body,
		Type:     notificationType,
		Status:   db_models.NotificationUnread,
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"member_id": memberID,
			"type":      notificationType,
		}).Warn("failed to emit notification")
	}
}

func (s *notificationService) ListAll(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error) {
	list, err := s.repo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return list, nil
}

func (s *notificationService) ListUnread(ctx context.Context, memberID uuid.UUID) ([]db_models.Notification, error) {
	list, err := s.repo.ListUnread(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return list, nil
}

func (s *notificationService) CountUnread(ctx context.Context, memberID uuid.UUID) (int64, error) {
	count, err := s.repo.CountUnread(ctx, memberID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, callerID, notificationID uuid.UUID) error {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n == nil {
		return utils.ErrNotificationNotFound
	}
	if n.MemberID != callerID {
		return utils.ErrNotOwner
	}
	if err := s.repo.MarkRead(ctx, notificationID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, callerID uuid.UUID, callerIsAdmin bool, notificationID uuid.UUID) error {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n == nil {
		return utils.ErrNotificationNotFound
	}
	if n.MemberID != callerID && !callerIsAdmin {
		return utils.ErrNotOwner
	}
	if err := s.repo.Delete(ctx, notificationID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
