package academics

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/shared"
)

// EnrollmentStatus represents a student's enrollment standing
type EnrollmentStatus string

const (
	EnrollmentStatusAdmitted  EnrollmentStatus = "admitted"
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusSuspended EnrollmentStatus = "suspended"
	EnrollmentStatusGraduated EnrollmentStatus = "graduated"
	EnrollmentStatusWithdrawn EnrollmentStatus = "withdrawn"
)

// IsValid checks if the status is a known EnrollmentStatus
func (s EnrollmentStatus) IsValid() bool {
	switch s {
	case EnrollmentStatusAdmitted, EnrollmentStatusEnrolled, EnrollmentStatusSuspended,
		EnrollmentStatusGraduated, EnrollmentStatusWithdrawn:
		return true
	}
	return false
}

// Student represents the academic record derived from an approved application.
// The aggregate ID equals the owning user's ID (1:1 via shared identifier).
type Student struct {
	shared.BaseAggregateRoot
	StudentNumber    string           // STU-<year>-<sequence>
	ProgramID        uuid.UUID
	EnrollmentStatus EnrollmentStatus
	AdmissionDate    time.Time
	AcademicYear     string
	CurrentSemester  string
	CurrentYearLevel int

	// Demographics copied from the application at approval time
	DateOfBirth                  string
	Gender                       string
	Nationality                  string
	NationalID                   string
	MaritalStatus                string
	Religion                     string
	Province                     string
	District                     string
	HomeAddress                  string
	EmergencyContactName         string
	EmergencyContactPhone        string
	EmergencyContactRelationship string
	SecondarySchool              string
	Grade12Results               float64
	NearestAirport               string
	ResidentType                 string
	Sponsor                      string
}

// NewStudent creates a student record owned by the given user.
// The student's ID is the user's ID so the two stay linked 1:1.
func NewStudent(userID uuid.UUID, studentNumber string, programID uuid.UUID, academicYear, semester string) (*Student, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User ID cannot be empty")
	}
	if studentNumber == "" {
		return nil, shared.NewDomainError("INVALID_STUDENT_NUMBER", "Student number cannot be empty")
	}
	if programID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROGRAM", "Program ID cannot be empty")
	}

	student := &Student{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StudentNumber:     studentNumber,
		ProgramID:         programID,
		EnrollmentStatus:  EnrollmentStatusAdmitted,
		AdmissionDate:     time.Now(),
		AcademicYear:      academicYear,
		CurrentSemester:   semester,
		CurrentYearLevel:  1,
	}
	student.ID = userID
	return student, nil
}

// MarkEnrolled transitions the student into the enrolled state
func (s *Student) MarkEnrolled() error {
	if s.EnrollmentStatus == EnrollmentStatusGraduated || s.EnrollmentStatus == EnrollmentStatusWithdrawn {
		return shared.ErrInvalidState
	}
	s.EnrollmentStatus = EnrollmentStatusEnrolled
	s.Touch()
	return nil
}
