package admission

import "github.com/google/uuid"

// SubmitApplicationRequest carries a new application submission
type SubmitApplicationRequest struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth string
	Gender      string
	Nationality string
	NationalID  string

	MaritalStatus string
	Religion      string
	Province      string
	District      string
	Village       string
	PostalAddress string

	EmergencyContactName         string
	EmergencyContactPhone        string
	EmergencyContactRelationship string

	ProgramID           uuid.UUID
	Grade12School       string
	Grade12Year         string
	Grade12Marks        float64
	MatriculationCentre string
	NearestAirport      string
	ResidentType        string
	Sponsor             string

	Grade12Certificate string
	AcademicTranscript string
	NationalIDDocument string
	PassportPhoto      string
}

// SubmitApplicationResult reports a successful submission
type SubmitApplicationResult struct {
	ApplicationID string `json:"application_id"`
}

// ApproveApplicationResult reports a successful approval
type ApproveApplicationResult struct {
	StudentNumber string    `json:"student_id"`
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
}
