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
	"coursehub/internal/storage"
)

// MockCourseRepository is a mock implementation of CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Save(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context) ([]model.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Course, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Course), args.Error(1)
}

// MockUploader is a mock implementation of storage.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, name string, data []byte, contentType string) (*storage.UploadResult, error) {
	args := m.Called(ctx, name, data, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func validCreateInput() CreateCourseInput {
	return CreateCourseInput{
		Title:            "Go Basics",
		Description:      "Syntax and tooling from zero.",
		Price:            100,
		Image:            []byte{0xFF, 0xD8, 0xFF},
		ImageName:        "cover.jpg",
		ImageContentType: "image/jpeg",
	}
}

func TestCourseService_Create(t *testing.T) {
	creatorID := uuid.New()

	tests := []struct {
		name          string
		mutate        func(*CreateCourseInput)
		setupMocks    func(*MockCourseRepository, *MockUploader)
		expectedError error
	}{
		{
			name: "successful create binds creator and image",
			setupMocks: func(repo *MockCourseRepository, up *MockUploader) {
				up.On("Upload", mock.Anything, "cover.jpg", mock.Anything, "image/jpeg").
					Return(&storage.UploadResult{ExternalID: "courses/abc.jpg", URL: "https://cdn.example/courses/abc.jpg"}, nil)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)
			},
		},
		{
			name:          "missing fields",
			mutate:        func(in *CreateCourseInput) { in.Title = "" },
			expectedError: errors.ErrMissingFields,
		},
		{
			name:          "negative price",
			mutate:        func(in *CreateCourseInput) { in.Price = -1 },
			expectedError: errors.ErrInvalidPrice,
		},
		{
			name:          "disallowed image type",
			mutate:        func(in *CreateCourseInput) { in.ImageContentType = "image/svg+xml" },
			expectedError: errors.ErrInvalidImageType,
		},
		{
			name: "upload failure propagates",
			setupMocks: func(repo *MockCourseRepository, up *MockUploader) {
				up.On("Upload", mock.Anything, "cover.jpg", mock.Anything, "image/jpeg").
					Return(nil, assert.AnError)
			},
			expectedError: errors.ErrUploadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCourseRepository)
			mockUploader := new(MockUploader)
			if tt.setupMocks != nil {
				tt.setupMocks(mockRepo, mockUploader)
			}

			in := validCreateInput()
			if tt.mutate != nil {
				tt.mutate(&in)
			}

			service := NewCourseService(mockRepo, mockUploader, nil)
			course, err := service.Create(context.Background(), creatorID, in)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, course)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, course)
				assert.Equal(t, creatorID, course.CreatorID)
				assert.Equal(t, "courses/abc.jpg", course.Image.ExternalID)
				assert.Equal(t, "https://cdn.example/courses/abc.jpg", course.Image.URL)
			}

			mockRepo.AssertExpectations(t)
			mockUploader.AssertExpectations(t)
		})
	}
}

func TestCourseService_Update(t *testing.T) {
	courseID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()
	newPrice := 150.0

	existing := func() *model.Course {
		return &model.Course{
			ID:          courseID,
			Title:       "Go Basics",
			Description: "Original description",
			Price:       100,
			CreatorID:   ownerID,
		}
	}

	t.Run("not found is checked before ownership", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCourseService(mockRepo, new(MockUploader), nil)
		_, err := service.Update(context.Background(), courseID, strangerID, UpdateCoursePatch{Price: &newPrice})

		assert.ErrorIs(t, err, errors.ErrCourseNotFound)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(existing(), nil)

		service := NewCourseService(mockRepo, new(MockUploader), nil)
		_, err := service.Update(context.Background(), courseID, strangerID, UpdateCoursePatch{Price: &newPrice})

		assert.ErrorIs(t, err, errors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("partial update keeps omitted fields", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(existing(), nil)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)

		service := NewCourseService(mockRepo, new(MockUploader), nil)
		course, err := service.Update(context.Background(), courseID, ownerID, UpdateCoursePatch{Price: &newPrice})

		assert.NoError(t, err)
		assert.Equal(t, newPrice, course.Price)
		assert.Equal(t, "Go Basics", course.Title)
		assert.Equal(t, "Original description", course.Description)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative patched price rejected", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(existing(), nil)

		bad := -5.0
		service := NewCourseService(mockRepo, new(MockUploader), nil)
		_, err := service.Update(context.Background(), courseID, ownerID, UpdateCoursePatch{Price: &bad})

		assert.ErrorIs(t, err, errors.ErrInvalidPrice)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCourseService_Delete(t *testing.T) {
	courseID := uuid.New()
	ownerID := uuid.New()
	strangerID := uuid.New()

	existing := &model.Course{ID: courseID, Title: "Go Basics", CreatorID: ownerID}

	t.Run("creator may delete", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, courseID).Return(nil)

		service := NewCourseService(mockRepo, new(MockUploader), nil)
		assert.NoError(t, service.Delete(context.Background(), courseID, ownerID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(existing, nil)

		service := NewCourseService(mockRepo, new(MockUploader), nil)
		err := service.Delete(context.Background(), courseID, strangerID)

		assert.ErrorIs(t, err, errors.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCourseService_GetByID(t *testing.T) {
	courseID := uuid.New()

	t.Run("missing course is not found", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(nil, gorm.ErrRecordNotFound)

		service := NewCourseService(mockRepo, new(MockUploader), nil)
		_, err := service.GetByID(context.Background(), courseID)

		assert.ErrorIs(t, err, errors.ErrCourseNotFound)
	})

	t.Run("existing course is returned", func(t *testing.T) {
		mockRepo := new(MockCourseRepository)
		mockRepo.On("FindByID", mock.Anything, courseID).Return(&model.Course{ID: courseID, Title: "Go Basics"}, nil)

		service := NewCourseService(mockRepo, new(MockUploader), nil)
		course, err := service.GetByID(context.Background(), courseID)

		assert.NoError(t, err)
		assert.Equal(t, "Go Basics", course.Title)
	})
}
