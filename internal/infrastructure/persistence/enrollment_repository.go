package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEnrollmentRepository implements EnrollmentRepository using GORM
type GormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository creates a new GormEnrollmentRepository
func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

// CreateSemesterEnrollment persists a semester enrollment record
func (r *GormEnrollmentRepository) CreateSemesterEnrollment(ctx context.Context, enrollment *academics.SemesterEnrollment) error {
	model := models.SemesterEnrollmentModelFromDomain(enrollment)
	return r.db.WithContext(ctx).Create(model).Error
}

// CreateCourseEnrollments persists a batch of course enrollment rows in one
// transaction so a partial registration never lands.
func (r *GormEnrollmentRepository) CreateCourseEnrollments(ctx context.Context, enrollments []academics.CourseEnrollment) error {
	if len(enrollments) == 0 {
		return nil
	}

	enrollmentModels := make([]*models.CourseEnrollmentModel, len(enrollments))
	for i := range enrollments {
		m := &models.CourseEnrollmentModel{}
		m.FromDomain(&enrollments[i])
		enrollmentModels[i] = m
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(enrollmentModels).Error
	})
}

// FindCourseEnrollments returns a student's course enrollments for a period
func (r *GormEnrollmentRepository) FindCourseEnrollments(ctx context.Context, studentID uuid.UUID, academicYear, semester string) ([]academics.CourseEnrollment, error) {
	var enrollmentModels []models.CourseEnrollmentModel
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND academic_year = ? AND semester = ?", studentID, academicYear, semester).
		Find(&enrollmentModels).Error; err != nil {
		return nil, err
	}

	enrollments := make([]academics.CourseEnrollment, len(enrollmentModels))
	for i, model := range enrollmentModels {
		enrollments[i] = *model.ToDomain()
	}
	return enrollments, nil
}
