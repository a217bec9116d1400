package services

import (
	"context"

	"github.com/google/uuid"

	"memberpay/internal/models/db_models"
	"memberpay/internal/models/request_models"
	"memberpay/internal/repositories"
	"memberpay/pkg/utils"
)

// MembershipServiceInterface covers the catalogue side of the system:
// dues, their categories, and the per-account-type subscription plans.
type MembershipServiceInterface interface {
	CreateDue(ctx context.Context, req request_models.DueCreateRequest) (*db_models.Due, error)
	UpdateDue(ctx context.Context, req request_models.DueUpdateRequest) (*db_models.Due, error)
	DeactivateDue(ctx context.Context, dueID uuid.UUID) error
	FindDue(ctx context.Context, dueID uuid.UUID) (*db_models.Due, error)
	ListActiveDues(ctx context.Context) ([]db_models.Due, error)
	ListUnpaidDues(ctx context.Context, memberID uuid.UUID) ([]db_models.Due, error)

	CreateCategory(ctx context.Context, name string) (*db_models.Category, error)
	ListCategories(ctx context.Context) ([]db_models.Category, error)

	ListSubscriptions(ctx context.Context) ([]db_models.Subscription, error)
	SubscriptionForAccountType(ctx context.Context, accountType db_models.AccountType) (*db_models.Subscription, error)
	UpdateSubscriptionAmount(ctx context.Context, subscriptionID uuid.UUID, amount float64) (*db_models.Subscription, error)
}

type membershipService struct {
	dues          repositories.DueRepository
	subscriptions repositories.SubscriptionRepository
}

func NewMembershipService(dues repositories.DueRepository, subscriptions repositories.SubscriptionRepository) MembershipServiceInterface {
	return &membershipService{dues: dues, subscriptions: subscriptions}
}

func (s *membershipService) CreateDue(ctx context.Context, req request_models.DueCreateRequest) (*db_models.Due, error) {
	categoryID := uuid.MustParse(req.CategoryID)
	category, err := s.dues.FindCategory(ctx, categoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	due := &db_models.Due{
		CategoryID:  categoryID,
		Description: req.Description,
		Amount:      req.Amount,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      db_models.DueStatusActive,
	}
	if err := s.dues.Insert(ctx, due); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return due, nil
}

func (s *membershipService) UpdateDue(ctx context.Context, req request_models.DueUpdateRequest) (*db_models.Due, error) {
	due, err := s.dues.FindByID(ctx, uuid.MustParse(req.DueID))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if due == nil {
		return nil, utils.ErrDueNotFound
	}

	categoryID := uuid.MustParse(req.CategoryID)
	category, err := s.dues.FindCategory(ctx, categoryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	due.CategoryID = categoryID
	due.Description = req.Description
	due.Amount = req.Amount
	due.StartDate = req.StartDate
	due.EndDate = req.EndDate

	if err := s.dues.Save(ctx, due); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return due, nil
}

func (s *membershipService) DeactivateDue(ctx context.Context, dueID uuid.UUID) error {
	due, err := s.dues.FindByID(ctx, dueID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if due == nil {
		return utils.ErrDueNotFound
	}
	if err := s.dues.Deactivate(ctx, dueID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *membershipService) FindDue(ctx context.Context, dueID uuid.UUID) (*db_models.Due, error) {
	due, err := s.dues.FindByID(ctx, dueID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if due == nil {
		return nil, utils.ErrDueNotFound
	}
	return due, nil
}

func (s *membershipService) ListActiveDues(ctx context.Context) ([]db_models.Due, error) {
	dues, err := s.dues.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return dues, nil
}

func (s *membershipService) ListUnpaidDues(ctx context.Context, memberID uuid.UUID) ([]db_models.Due, error) {
	dues, err := s.dues.ListUnpaidForMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return dues, nil
}

func (s *membershipService) CreateCategory(ctx context.Context, name string) (*db_models.Category, error) {
	category := &db_models.Category{Name: name}
	if err := s.dues.InsertCategory(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *membershipService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	categories, err := s.dues.ListCategories(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return categories, nil
}

func (s *membershipService) ListSubscriptions(ctx context.Context) ([]db_models.Subscription, error) {
	subs, err := s.subscriptions.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}

func (s *membershipService) SubscriptionForAccountType(ctx context.Context, accountType db_models.AccountType) (*db_models.Subscription, error) {
	sub, err := s.subscriptions.FindByAccountType(ctx, accountType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *membershipService) UpdateSubscriptionAmount(ctx context.Context, subscriptionID uuid.UUID, amount float64) (*db_models.Subscription, error) {
	sub, err := s.subscriptions.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}
	if err := s.subscriptions.UpdateAmount(ctx, subscriptionID, amount); err != nil {
		return nil, utils.ErrDatabaseError
	}
	sub.Amount = amount
	return sub, nil
}
