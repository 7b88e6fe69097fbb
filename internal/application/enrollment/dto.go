package enrollment

import "github.com/google/uuid"

// EnrollSemesterRequest carries a semester enrollment submission
type EnrollSemesterRequest struct {
	StudentID        uuid.UUID
	AcademicYear     string
	Semester         string
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
}

// EnrollSemesterResult reports a recorded semester enrollment
type EnrollSemesterResult struct {
	EnrollmentID uuid.UUID `json:"enrollment_id"`
	Status       string    `json:"status"`
}

// RegisterCoursesRequest carries a course registration submission
type RegisterCoursesRequest struct {
	StudentID    uuid.UUID
	CourseIDs    []uuid.UUID
	AcademicYear string
	Semester     string
	RegisteredBy uuid.UUID
}

// RegisterCoursesResult reports a successful course registration
type RegisterCoursesResult struct {
	TotalCredits  int      `json:"total_credits"`
	Courses       []string `json:"courses"`
	InvoiceNumber string   `json:"invoice_number,omitempty"`
}
