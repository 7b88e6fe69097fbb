package document

import (
	"context"

	"github.com/sis/backend/internal/domain/finance"
)

// Kind selects which document template to render
type Kind string

const (
	KindInvoice         Kind = "invoice"
	KindReceipt         Kind = "receipt"
	KindAdmissionLetter Kind = "admission_letter"
	KindStudentID       Kind = "student_id"
)

// IsValid checks if the kind is a known document Kind
func (k Kind) IsValid() bool {
	switch k {
	case KindInvoice, KindReceipt, KindAdmissionLetter, KindStudentID:
		return true
	}
	return false
}

// AdmissionLetterData is the flat record rendered into an admission letter
type AdmissionLetterData struct {
	StudentName   string
	StudentNumber string
	Program       string
	ProgramCode   string
	DegreeLevel   string
	AdmissionDate string
	AcademicYear  string
	Semester      string
	Campus        string
}

// ReceiptData is the flat record rendered into a payment receipt
type ReceiptData struct {
	ReceiptNumber string
	StudentNumber string
	StudentName   string
	Program       string
	PaymentDate   string
	PaymentMethod string
	Amount        float64
	Description   string
	Balance       float64
}

// InvoiceData is the flat record rendered into an invoice document
type InvoiceData struct {
	InvoiceNumber string
	StudentNumber string
	StudentName   string
	Program       string
	AcademicYear  string
	Semester      string
	Items         []finance.FeeItem
	TotalAmount   float64
	AmountPaid    float64
	Balance       float64
	DueDate       string
	IssueDate     string
}

// StudentIDData is the flat record rendered into a student ID card
type StudentIDData struct {
	StudentNumber string
	StudentName   string
	Program       string
	ProgramCode   string
	Year          int
	IssueDate     string
	ExpiryDate    string
}

// Renderer produces PDF bytes from the four document records. Output is
// deterministic given its input; the renderer embeds no timestamps of its own.
type Renderer interface {
	RenderAdmissionLetter(ctx context.Context, data AdmissionLetterData) ([]byte, error)
	RenderReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
	RenderInvoice(ctx context.Context, data InvoiceData) ([]byte, error)
	RenderStudentID(ctx context.Context, data StudentIDData) ([]byte, error)
}

// Storage persists rendered documents under deterministic keys. Existing
// objects under the same key are overwritten.
type Storage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
}

// Storage key prefixes by document purpose
const (
	AdmissionLetterKeyPrefix = "admission-letters/"
	ReceiptKeyPrefix         = "receipts/"
)

// AdmissionLetterKey returns the storage key for a student's admission letter
func AdmissionLetterKey(studentNumber string) string {
	return AdmissionLetterKeyPrefix + studentNumber + "_admission_letter.pdf"
}

// ReceiptKey returns the storage key for a payment receipt
func ReceiptKey(receiptNumber string) string {
	return ReceiptKeyPrefix + receiptNumber + ".pdf"
}
