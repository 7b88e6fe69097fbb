package academics

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/shared"
)

// Per-semester credit windows. Postgraduate programs carry a lighter load
// than undergraduate ones.
const (
	MinCreditsPerSemester = 12
	MaxCreditsPerSemester = 18

	MinCreditsPostgraduate = 9
	MaxCreditsPostgraduate = 12
)

// SemesterEnrollmentStatus represents the approval state of a semester enrollment
type SemesterEnrollmentStatus string

const (
	SemesterEnrollmentPending  SemesterEnrollmentStatus = "pending_approval"
	SemesterEnrollmentApproved SemesterEnrollmentStatus = "approved"
	SemesterEnrollmentRejected SemesterEnrollmentStatus = "rejected"
)

// SemesterEnrollment records a student's enrollment for an academic period
type SemesterEnrollment struct {
	shared.BaseAggregateRoot
	StudentID        uuid.UUID
	AcademicYear     string
	Semester         string
	ProgramCode      string
	Level            int
	AmountPaid       float64
	ReceiptNumber    string
	LibraryNumber    string
	MealNumber       string
	Dormitory        string
	RoomNumber       string
	DeclarationAgree bool
	Signature        string
	Witness          string
	RegistrationDate time.Time
	Status           SemesterEnrollmentStatus
}

// NewSemesterEnrollment creates a pending enrollment record
func NewSemesterEnrollment(studentID uuid.UUID, academicYear, semester, programCode string) (*SemesterEnrollment, error) {
	if studentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT", "Student ID cannot be empty")
	}
	return &SemesterEnrollment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StudentID:         studentID,
		AcademicYear:      academicYear,
		Semester:          semester,
		ProgramCode:       programCode,
		RegistrationDate:  time.Now(),
		Status:            SemesterEnrollmentPending,
	}, nil
}

// CourseEnrollmentStatus tracks a single course registration row
type CourseEnrollmentStatus string

const (
	CourseEnrollmentPendingAdvisor CourseEnrollmentStatus = "pending_advisor"
	CourseEnrollmentEnrolled       CourseEnrollmentStatus = "enrolled"
	CourseEnrollmentDropped        CourseEnrollmentStatus = "dropped"
)

// CourseEnrollment links a student to one course for a period
type CourseEnrollment struct {
	shared.BaseEntity
	StudentID    uuid.UUID
	CourseID     uuid.UUID
	AcademicYear string
	Semester     string
	Status       CourseEnrollmentStatus
	EnrolledBy   uuid.UUID
}

// CreditWindow returns the allowed per-semester credit range for a degree
// level. Anything that is not postgraduate gets the undergraduate window.
func CreditWindow(degreeLevel string) (minCredits, maxCredits int) {
	if degreeLevel == DegreeLevelPostgraduate {
		return MinCreditsPostgraduate, MaxCreditsPostgraduate
	}
	return MinCreditsPerSemester, MaxCreditsPerSemester
}

// ValidateCreditLoad checks the total credits against the per-semester
// window for the program's degree level
func ValidateCreditLoad(totalCredits int, degreeLevel string) error {
	minCredits, maxCredits := CreditWindow(degreeLevel)
	if totalCredits < minCredits {
		return shared.NewDomainError("CREDITS_BELOW_MINIMUM", "Minimum credit load not reached")
	}
	if totalCredits > maxCredits {
		return shared.NewDomainError("CREDITS_ABOVE_MAXIMUM", "Maximum credit load exceeded")
	}
	return nil
}
