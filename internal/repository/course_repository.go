package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Save(ctx context.Context, course *model.Course) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create inserts a new course.
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// Save persists changes to an existing course.
func (r *courseRepository) Save(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// Delete removes a course by id.
func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, "id = ?", id).Error
}

// FindByID finds a course by id.
func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// List returns all courses.
func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// ListByCreator returns all courses created by the given admin.
func (r *courseRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
