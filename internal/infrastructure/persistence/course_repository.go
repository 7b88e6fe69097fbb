package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCourseRepository implements CourseRepository using GORM
type GormCourseRepository struct {
	db *gorm.DB
}

// NewGormCourseRepository creates a new GormCourseRepository
func NewGormCourseRepository(db *gorm.DB) *GormCourseRepository {
	return &GormCourseRepository{db: db}
}

// FindByID finds a course by ID
func (r *GormCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*academics.Course, error) {
	var model models.CourseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs loads multiple courses at once. Missing IDs are simply absent
// from the result; callers compare lengths to detect them.
func (r *GormCourseRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]academics.Course, error) {
	if len(ids) == 0 {
		return []academics.Course{}, nil
	}

	var courseModels []models.CourseModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&courseModels).Error; err != nil {
		return nil, err
	}

	courses := make([]academics.Course, len(courseModels))
	for i, model := range courseModels {
		courses[i] = *model.ToDomain()
	}
	return courses, nil
}
