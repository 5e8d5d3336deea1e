package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"coursehub/internal/errors"
	"coursehub/internal/model"
)

// MockPurchaseRepository is a mock implementation of PurchaseRepository.
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *model.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*model.Purchase, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Purchase), args.Error(1)
}

func TestPurchaseService_Buy(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()
	course := &model.Course{ID: courseID, Title: "Go Basics"}

	tests := []struct {
		name          string
		setupMocks    func(*MockPurchaseRepository, *MockCourseRepository)
		expectedError error
	}{
		{
			name: "successful purchase",
			setupMocks: func(purchases *MockPurchaseRepository, courses *MockCourseRepository) {
				courses.On("FindByID", mock.Anything, courseID).Return(course, nil)
				purchases.On("FindByUserAndCourse", mock.Anything, userID, courseID).Return(nil, gorm.ErrRecordNotFound)
				purchases.On("Create", mock.Anything, mock.AnythingOfType("*model.Purchase")).Return(nil)
			},
		},
		{
			name: "course does not exist",
			setupMocks: func(purchases *MockPurchaseRepository, courses *MockCourseRepository) {
				courses.On("FindByID", mock.Anything, courseID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrCourseNotFound,
		},
		{
			name: "pair already purchased",
			setupMocks: func(purchases *MockPurchaseRepository, courses *MockCourseRepository) {
				courses.On("FindByID", mock.Anything, courseID).Return(course, nil)
				purchases.On("FindByUserAndCourse", mock.Anything, userID, courseID).
					Return(&model.Purchase{UserID: userID, CourseID: courseID}, nil)
			},
			expectedError: errors.ErrAlreadyPurchased,
		},
		{
			name: "concurrent double-submit loses to the unique index",
			setupMocks: func(purchases *MockPurchaseRepository, courses *MockCourseRepository) {
				// Pre-check passes, insert hits the (user_id, course_id) index.
				courses.On("FindByID", mock.Anything, courseID).Return(course, nil)
				purchases.On("FindByUserAndCourse", mock.Anything, userID, courseID).Return(nil, gorm.ErrRecordNotFound)
				purchases.On("Create", mock.Anything, mock.AnythingOfType("*model.Purchase")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrAlreadyPurchased,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPurchases := new(MockPurchaseRepository)
			mockCourses := new(MockCourseRepository)
			tt.setupMocks(mockPurchases, mockCourses)

			service := NewPurchaseService(mockPurchases, mockCourses)
			purchase, err := service.Buy(context.Background(), userID, courseID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, purchase)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, purchase)
				assert.Equal(t, userID, purchase.UserID)
				assert.Equal(t, courseID, purchase.CourseID)
			}

			mockPurchases.AssertExpectations(t)
			mockCourses.AssertExpectations(t)
		})
	}
}

func TestPurchaseService_ListForUser(t *testing.T) {
	userID := uuid.New()

	t.Run("zero purchases is the empty-result outcome", func(t *testing.T) {
		mockPurchases := new(MockPurchaseRepository)
		mockPurchases.On("ListByUser", mock.Anything, userID).Return([]model.Purchase{}, nil)

		service := NewPurchaseService(mockPurchases, new(MockCourseRepository))
		_, err := service.ListForUser(context.Background(), userID)

		assert.ErrorIs(t, err, errors.ErrNoPurchases)
	})

	t.Run("purchases come joined with their courses", func(t *testing.T) {
		mockPurchases := new(MockPurchaseRepository)
		mockPurchases.On("ListByUser", mock.Anything, userID).Return([]model.Purchase{
			{UserID: userID, Course: &model.Course{Title: "Go Basics"}},
		}, nil)

		service := NewPurchaseService(mockPurchases, new(MockCourseRepository))
		purchases, err := service.ListForUser(context.Background(), userID)

		assert.NoError(t, err)
		assert.Len(t, purchases, 1)
		assert.Equal(t, "Go Basics", purchases[0].Course.Title)
	})
}
