package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub/internal/cache"
	"coursehub/internal/errors"
	"coursehub/internal/model"
	"coursehub/internal/repository"
	"coursehub/internal/storage"
)

const (
	courseListCacheKey = "courses:all"
	courseListCacheTTL = 30 * time.Second
)

// allowedImageTypes is the set of MIME types accepted for course images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// CreateCourseInput carries the fields of a create request. Image bytes come
// from the multipart upload; the content type is taken from the part header.
type CreateCourseInput struct {
	Title            string
	Description      string
	Price            float64
	Image            []byte
	ImageName        string
	ImageContentType string
}

// UpdateCoursePatch carries a partial update; nil fields keep prior values.
type UpdateCoursePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Image       *model.CourseImage
}

// CourseService handles course CRUD with creator-ownership checks.
type CourseService interface {
	Create(ctx context.Context, creatorID uuid.UUID, in CreateCourseInput) (*model.Course, error)
	Update(ctx context.Context, courseID, adminID uuid.UUID, patch UpdateCoursePatch) (*model.Course, error)
	Delete(ctx context.Context, courseID, adminID uuid.UUID) error
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, courseID uuid.UUID) (*model.Course, error)
	ListByCreator(ctx context.Context, adminID uuid.UUID) ([]model.Course, error)
}

type courseService struct {
	courses  repository.CourseRepository
	uploader storage.Uploader
	cache    *cache.Client
}

// NewCourseService creates a new course service.
func NewCourseService(courses repository.CourseRepository, uploader storage.Uploader, cache *cache.Client) CourseService {
	return &courseService{
		courses:  courses,
		uploader: uploader,
		cache:    cache,
	}
}

// Create validates the input, uploads the image to the external store, and
// persists the course bound to its creator.
func (s *courseService) Create(ctx context.Context, creatorID uuid.UUID, in CreateCourseInput) (*model.Course, error) {
	if in.Title == "" || in.Description == "" || len(in.Image) == 0 {
		return nil, errors.ErrMissingFields
	}
	if in.Price < 0 {
		return nil, errors.ErrInvalidPrice
	}
	if !allowedImageTypes[in.ImageContentType] {
		return nil, errors.ErrInvalidImageType
	}

	uploaded, err := s.uploader.Upload(ctx, in.ImageName, in.Image, in.ImageContentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrUploadFailed, err)
	}

	course := &model.Course{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Image: model.CourseImage{
			ExternalID: uploaded.ExternalID,
			URL:        uploaded.URL,
		},
		CreatorID: creatorID,
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	s.cache.Delete(ctx, courseListCacheKey)
	return course, nil
}

// Update applies a partial update after existence and ownership checks, in
// that order: a missing course is NotFound even for a non-creator.
func (s *courseService) Update(ctx context.Context, courseID, adminID uuid.UUID, patch UpdateCoursePatch) (*model.Course, error) {
	course, err := s.findOwned(ctx, courseID, adminID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, errors.ErrInvalidPrice
		}
		course.Price = *patch.Price
	}
	if patch.Image != nil && patch.Image.ExternalID != "" && patch.Image.URL != "" {
		course.Image = *patch.Image
	}

	if err := s.courses.Save(ctx, course); err != nil {
		return nil, fmt.Errorf("save course: %w", err)
	}

	s.cache.Delete(ctx, courseListCacheKey)
	return course, nil
}

// Delete removes a course after the same existence and ownership checks as
// Update.
func (s *courseService) Delete(ctx context.Context, courseID, adminID uuid.UUID) error {
	if _, err := s.findOwned(ctx, courseID, adminID); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, courseID); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}

	s.cache.Delete(ctx, courseListCacheKey)
	return nil
}

// List returns all courses, unfiltered. The hot public read goes through a
// short-TTL cache.
func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	if data, ok := s.cache.Get(ctx, courseListCacheKey); ok {
		var cached []model.Course
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	if data, err := json.Marshal(courses); err == nil {
		s.cache.Set(ctx, courseListCacheKey, data, courseListCacheTTL)
	}
	return courses, nil
}

// GetByID returns a single course.
func (s *courseService) GetByID(ctx context.Context, courseID uuid.UUID) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return course, nil
}

// ListByCreator returns the acting admin's own courses.
func (s *courseService) ListByCreator(ctx context.Context, adminID uuid.UUID) ([]model.Course, error) {
	courses, err := s.courses.ListByCreator(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("list courses by creator: %w", err)
	}
	return courses, nil
}

func (s *courseService) findOwned(ctx context.Context, courseID, adminID uuid.UUID) (*model.Course, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	if course.CreatorID != adminID {
		return nil, errors.ErrForbidden
	}
	return course, nil
}
