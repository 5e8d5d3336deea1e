package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
)

// PurchaseService records and lists course purchases. Purchase is recorded
// unconditionally once the checks pass; there is no payment capture.
type PurchaseService interface {
	Buy(ctx context.Context, userID, courseID uuid.UUID) (*model.Purchase, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error)
}

type purchaseService struct {
	purchases repository.PurchaseRepository
	courses   repository.CourseRepository
}

// NewPurchaseService creates a new purchase service.
func NewPurchaseService(purchases repository.PurchaseRepository, courses repository.CourseRepository) PurchaseService {
	return &purchaseService{
		purchases: purchases,
		courses:   courses,
	}
}

// Buy appends a purchase for the (user, course) pair. The existence pre-check
// gives the common case a clean error; the compound unique index catches the
// concurrent double-submit and is mapped to the same outcome.
func (s *purchaseService) Buy(ctx context.Context, userID, courseID uuid.UUID) (*model.Purchase, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	existing, err := s.purchases.FindByUserAndCourse(ctx, userID, courseID)
	if err == nil && existing != nil {
		return nil, errors.ErrAlreadyPurchased
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check purchase: %w", err)
	}

	purchase := &model.Purchase{
		UserID:   userID,
		CourseID: courseID,
	}
	if err := s.purchases.Create(ctx, purchase); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrAlreadyPurchased
		}
		return nil, fmt.Errorf("create purchase: %w", err)
	}

	return purchase, nil
}

// ListForUser returns the user's purchases joined with their courses. Zero
// purchases is the designated empty-result outcome, not a fault.
func (s *purchaseService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	purchases, err := s.purchases.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	if len(purchases) == 0 {
		return nil, errors.ErrNoPurchases
	}
	return purchases, nil
}
