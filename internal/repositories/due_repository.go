package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memberpay/internal/models/db_models"
)

type DueRepository interface {
	Insert(ctx context.Context, due *db_models.Due) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Due, error)
	Save(ctx context.Context, due *db_models.Due) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]db_models.Due, error)
	// ListUnpaidForMember returns active dues the member has no
	// transaction against.
	ListUnpaidForMember(ctx context.Context, memberID uuid.UUID) ([]db_models.Due, error)

	InsertCategory(ctx context.Context, category *db_models.Category) error
	FindCategory(ctx context.Context, id uuid.UUID) (*db_models.Category, error)
	ListCategories(ctx context.Context) ([]db_models.Category, error)
}

type dueRepository struct {
	db *gorm.DB
}

func NewDueRepository(db *gorm.DB) DueRepository {
	return &dueRepository{db: db}
}

func (r *dueRepository) Insert(ctx context.Context, due *db_models.Due) error {
	return r.db.WithContext(ctx).Create(due).Error
}

func (r *dueRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Due, error) {
	var due db_models.Due
	err := r.db.WithContext(ctx).First(&due, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &due, nil
}

func (r *dueRepository) Save(ctx context.Context, due *db_models.Due) error {
	return r.db.WithContext(ctx).Save(due).Error
}

func (r *dueRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Due{}).
		Where("id = ?", id).
		Update("status", db_models.DueStatusInactive).Error
}

func (r *dueRepository) ListActive(ctx context.Context) ([]db_models.Due, error) {
	var dues []db_models.Due
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.DueStatusActive).
		Preload("Category").
		Order("created_at DESC").
		Find(&dues).Error
	return dues, err
}

func (r *dueRepository) ListUnpaidForMember(ctx context.Context, memberID uuid.UUID) ([]db_models.Due, error) {
	var dues []db_models.Due
	err := r.db.WithContext(ctx).
		Where("status = ?", db_models.DueStatusActive).
		Where("id NOT IN (?)", r.db.
			Model(&db_models.Transaction{}).
			Select("due_id").
			Where("member_id = ? AND due_id IS NOT NULL", memberID)).
		Preload("Category").
		Order("created_at DESC").
		Find(&dues).Error
	return dues, err
}

func (r *dueRepository) InsertCategory(ctx context.Context, category *db_models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *dueRepository) FindCategory(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	var category db_models.Category
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *dueRepository) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&categories).Error
	return categories, err
}
