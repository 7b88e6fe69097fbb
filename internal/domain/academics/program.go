package academics

import (
	"github.com/sis/backend/internal/domain/shared"
)

// Degree levels offered by the institution.
const (
	DegreeLevelUndergraduate = "undergraduate"
	DegreeLevelPostgraduate  = "postgraduate"
)

// Program represents a degree program offered by the institution.
// Reference data: read-only from the admission and finance workflows.
type Program struct {
	shared.BaseEntity
	ProgramName  string
	ProgramCode  string
	DegreeLevel  string // undergraduate, postgraduate
	SchoolID     string
	DepartmentID string
	DurationYRS  int
	IsActive     bool
}

// Course represents a course offered within a program
type Course struct {
	shared.BaseEntity
	CourseCode    string
	CourseName    string
	Credits       int
	Capacity      int
	EnrolledCount int
	Semester      string
	Prerequisites []string `gorm:"-"`
}

// HasCapacity reports whether the course can take another enrollment
func (c *Course) HasCapacity() bool {
	return c.EnrolledCount < c.Capacity
}
