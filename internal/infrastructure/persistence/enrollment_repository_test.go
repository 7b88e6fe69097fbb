package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupEnrollmentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.SemesterEnrollmentModel{},
		&models.CourseEnrollmentModel{},
	)
	require.NoError(t, err)

	return db
}

func TestGormEnrollmentRepository_CreateSemesterEnrollment(t *testing.T) {
	db := setupEnrollmentTestDB(t)
	repo := NewGormEnrollmentRepository(db)
	ctx := context.Background()

	enrollment, err := academics.NewSemesterEnrollment(uuid.New(), "2026", "Semester 1", "BCS")
	require.NoError(t, err)
	enrollment.Level = 1
	enrollment.AmountPaid = 1500
	enrollment.DeclarationAgree = true

	require.NoError(t, repo.CreateSemesterEnrollment(ctx, enrollment))

	var model models.SemesterEnrollmentModel
	require.NoError(t, db.First(&model, "id = ?", enrollment.ID).Error)
	assert.Equal(t, "2026", model.AcademicYear)
	assert.Equal(t, "1500.00", model.AmountPaid)
}

func TestGormEnrollmentRepository_CreateCourseEnrollments(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the whole batch", func(t *testing.T) {
		db := setupEnrollmentTestDB(t)
		repo := NewGormEnrollmentRepository(db)

		studentID := uuid.New()
		registeredBy := uuid.New()
		enrollments := []academics.CourseEnrollment{
			newCourseEnrollment(studentID, uuid.New(), registeredBy),
			newCourseEnrollment(studentID, uuid.New(), registeredBy),
			newCourseEnrollment(studentID, uuid.New(), registeredBy),
		}

		require.NoError(t, repo.CreateCourseEnrollments(ctx, enrollments))

		found, err := repo.FindCourseEnrollments(ctx, studentID, "2026", "Semester 1")
		require.NoError(t, err)
		assert.Len(t, found, 3)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		db := setupEnrollmentTestDB(t)
		repo := NewGormEnrollmentRepository(db)

		assert.NoError(t, repo.CreateCourseEnrollments(ctx, nil))
	})

	t.Run("duplicate registration rolls back the whole batch", func(t *testing.T) {
		db := setupEnrollmentTestDB(t)
		repo := NewGormEnrollmentRepository(db)

		studentID := uuid.New()
		courseID := uuid.New()
		registeredBy := uuid.New()

		first := []academics.CourseEnrollment{
			newCourseEnrollment(studentID, courseID, registeredBy),
		}
		require.NoError(t, repo.CreateCourseEnrollments(ctx, first))

		// Second batch repeats the already-registered course; the unique
		// index rejects it and the fresh course must not land either.
		second := []academics.CourseEnrollment{
			newCourseEnrollment(studentID, uuid.New(), registeredBy),
			newCourseEnrollment(studentID, courseID, registeredBy),
		}
		assert.Error(t, repo.CreateCourseEnrollments(ctx, second))

		found, err := repo.FindCourseEnrollments(ctx, studentID, "2026", "Semester 1")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}

func TestGormEnrollmentRepository_FindCourseEnrollments_FiltersPeriod(t *testing.T) {
	db := setupEnrollmentTestDB(t)
	repo := NewGormEnrollmentRepository(db)
	ctx := context.Background()

	studentID := uuid.New()
	current := newCourseEnrollment(studentID, uuid.New(), uuid.New())
	previous := newCourseEnrollment(studentID, uuid.New(), uuid.New())
	previous.AcademicYear = "2025"
	previous.Semester = "Semester 2"

	require.NoError(t, repo.CreateCourseEnrollments(ctx, []academics.CourseEnrollment{current, previous}))

	found, err := repo.FindCourseEnrollments(ctx, studentID, "2026", "Semester 1")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, current.CourseID, found[0].CourseID)
}

func newCourseEnrollment(studentID, courseID, registeredBy uuid.UUID) academics.CourseEnrollment {
	return academics.CourseEnrollment{
		BaseEntity:   shared.NewBaseEntity(),
		StudentID:    studentID,
		CourseID:     courseID,
		AcademicYear: "2026",
		Semester:     "Semester 1",
		Status:       academics.CourseEnrollmentEnrolled,
		EnrolledBy:   registeredBy,
	}
}
