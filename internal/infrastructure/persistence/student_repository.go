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

// GormStudentRepository implements StudentRepository using GORM
type GormStudentRepository struct {
	db *gorm.DB
}

// NewGormStudentRepository creates a new GormStudentRepository
func NewGormStudentRepository(db *gorm.DB) *GormStudentRepository {
	return &GormStudentRepository{db: db}
}

// Create persists a new student record
func (r *GormStudentRepository) Create(ctx context.Context, student *academics.Student) error {
	model := models.StudentModelFromDomain(student)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds a student by ID
func (r *GormStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*academics.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStudentNumber finds a student by the STU-... number
func (r *GormStudentRepository) FindByStudentNumber(ctx context.Context, studentNumber string) (*academics.Student, error) {
	var model models.StudentModel
	if err := r.db.WithContext(ctx).
		Where("student_number = ?", studentNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Update persists changes to an existing student
func (r *GormStudentRepository) Update(ctx context.Context, student *academics.Student) error {
	model := models.StudentModelFromDomain(student)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count returns the total number of student records
func (r *GormStudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StudentModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
