package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub/internal/model"
)

// PurchaseRepository defines purchase-ledger persistence operations. The
// ledger is append-only: there is no update or delete.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *model.Purchase) error
	FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.Purchase, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository.
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Create appends a purchase record. A violation of the (user_id, course_id)
// unique index surfaces as gorm.ErrDuplicatedKey.
func (r *purchaseRepository) Create(ctx context.Context, purchase *model.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

// FindByUserAndCourse finds a purchase for the exact (user, course) pair.
func (r *purchaseRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

// ListByUser returns a user's purchases, each joined with its course.
func (r *purchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	var purchases []model.Purchase
	if err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}
