package academics

import (
	"context"

	"github.com/google/uuid"
)

// StudentRepository defines the persistence interface for students
type StudentRepository interface {
	// Create persists a new student record
	Create(ctx context.Context, student *Student) error
	// FindByID finds a student by ID (equal to the owning user's ID)
	FindByID(ctx context.Context, id uuid.UUID) (*Student, error)
	// FindByStudentNumber finds a student by the STU-... number
	FindByStudentNumber(ctx context.Context, studentNumber string) (*Student, error)
	// Update persists changes to an existing student
	Update(ctx context.Context, student *Student) error
	// Count returns the total number of student records
	Count(ctx context.Context) (int64, error)
}

// ProgramRepository provides read access to program reference data
type ProgramRepository interface {
	// FindByID finds a program by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Program, error)
	// FindAll returns all active programs
	FindAll(ctx context.Context) ([]Program, error)
}

// CourseRepository provides access to course reference data
type CourseRepository interface {
	// FindByID finds a course by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Course, error)
	// FindByIDs loads multiple courses at once
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Course, error)
}

// EnrollmentRepository persists semester and course enrollments
type EnrollmentRepository interface {
	// CreateSemesterEnrollment persists a semester enrollment record
	CreateSemesterEnrollment(ctx context.Context, enrollment *SemesterEnrollment) error
	// CreateCourseEnrollments persists a batch of course enrollment rows
	CreateCourseEnrollments(ctx context.Context, enrollments []CourseEnrollment) error
	// FindCourseEnrollments returns a student's course enrollments for a period
	FindCourseEnrollments(ctx context.Context, studentID uuid.UUID, academicYear, semester string) ([]CourseEnrollment, error)
}
