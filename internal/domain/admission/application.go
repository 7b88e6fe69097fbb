package admission

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/shared"
)

// ApplicationStatus represents the lifecycle state of an admission application
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// IsValid checks if the status is a valid ApplicationStatus
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of ApplicationStatus
func (s ApplicationStatus) String() string {
	return string(s)
}

// IsTerminal returns true once a decision has been recorded
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// DefaultRejectionReason is recorded when a rejection carries no explicit reason
const DefaultRejectionReason = "Application does not meet admission requirements"

// Application represents a prospective student's admission request.
// Identity fields are immutable after submission; the aggregate is mutated
// exactly once by an approve or reject decision and is terminal afterwards.
type Application struct {
	shared.BaseAggregateRoot
	ApplicationID string            `json:"application_id"` // APP-<millis>-<rand>
	Status        ApplicationStatus `json:"status"`

	// Applicant identity
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
	NationalID  string `json:"national_id"`

	// Demographics
	MaritalStatus string `json:"marital_status"`
	Religion      string `json:"religion"`
	Province      string `json:"province"`
	District      string `json:"district"`
	Village       string `json:"village"`
	PostalAddress string `json:"postal_address"`

	// Emergency contact
	EmergencyContactName         string `json:"emergency_contact_name"`
	EmergencyContactPhone        string `json:"emergency_contact_phone"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship"`

	// Academic background
	ProgramID           uuid.UUID `json:"program_id"`
	Grade12School       string    `json:"grade_12_school"`
	Grade12Year         string    `json:"grade_12_year"`
	Grade12Marks        float64   `json:"grade_12_marks"`
	MatriculationCentre string    `json:"matriculation_centre"`
	NearestAirport      string    `json:"nearest_airport"`
	ResidentType        string    `json:"resident_type"`
	Sponsor             string    `json:"sponsor"`

	// Declared documents (opaque URIs)
	Grade12Certificate string `json:"grade_12_certificate"`
	AcademicTranscript string `json:"academic_transcript"`
	NationalIDDocument string `json:"national_id_document"`
	PassportPhoto      string `json:"passport_photo"`

	// Decision metadata
	ApplicationDate    time.Time  `json:"application_date"`
	ApprovedAt         *time.Time `json:"approved_at"`
	ApprovedBy         *uuid.UUID `json:"approved_by"`
	RejectedAt         *time.Time `json:"rejected_at"`
	RejectedBy         *uuid.UUID `json:"rejected_by"`
	RejectionReason    string     `json:"rejection_reason"`
	GeneratedStudentID string     `json:"student_id_generated"`
}

// NewApplication creates a new submitted application
func NewApplication(applicationID string, programID uuid.UUID, firstName, lastName, email string) (*Application, error) {
	if applicationID == "" {
		return nil, shared.NewDomainError("INVALID_APPLICATION_ID", "Application ID cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Applicant email cannot be empty")
	}
	if programID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PROGRAM", "Program ID cannot be empty")
	}

	return &Application{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ApplicationID:     applicationID,
		Status:            ApplicationStatusSubmitted,
		FirstName:         firstName,
		LastName:          lastName,
		Email:             email,
		ProgramID:         programID,
		ApplicationDate:   time.Now(),
	}, nil
}

// FullName returns the applicant's display name
func (a *Application) FullName() string {
	return a.FirstName + " " + a.LastName
}

// CanDecide returns true if a decision can still be recorded
func (a *Application) CanDecide() bool {
	return a.Status == ApplicationStatusSubmitted
}

// Approve records the approval decision with the minted student identifier
func (a *Application) Approve(approvedBy uuid.UUID, studentID string) error {
	if !a.CanDecide() {
		return shared.ErrInvalidState
	}
	now := time.Now()
	a.Status = ApplicationStatusApproved
	a.ApprovedAt = &now
	a.ApprovedBy = &approvedBy
	a.GeneratedStudentID = studentID
	a.UpdatedAt = now
	a.IncrementVersion()
	return nil
}

// Reject records the rejection decision. An empty reason falls back to
// DefaultRejectionReason.
func (a *Application) Reject(rejectedBy uuid.UUID, reason string) error {
	if !a.CanDecide() {
		return shared.ErrInvalidState
	}
	if reason == "" {
		reason = DefaultRejectionReason
	}
	now := time.Now()
	a.Status = ApplicationStatusRejected
	a.RejectedAt = &now
	a.RejectedBy = &rejectedBy
	a.RejectionReason = reason
	a.UpdatedAt = now
	a.IncrementVersion()
	return nil
}
