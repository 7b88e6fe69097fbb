package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/shared"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "pending"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusPaid          InvoiceStatus = "paid"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPartiallyPaid, InvoiceStatusPaid:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice represents a student's financial obligation for an academic period.
// Monetary fields are float64 in the domain and persisted as decimal strings;
// balance arithmetic is plain float addition and subtraction on the parsed
// values, maintained incrementally rather than recomputed from payments.
type Invoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber   string
	StudentID       uuid.UUID
	AcademicYear    string
	Semester        string
	TotalAmount     float64
	AmountPaid      float64
	Balance         float64
	Status          InvoiceStatus
	DueDate         time.Time
	LastPaymentDate *time.Time
	GeneratedBy     uuid.UUID
}

// NewInvoice creates a pending invoice with nothing paid yet
func NewInvoice(invoiceNumber string, studentID uuid.UUID, academicYear, semester string, totalAmount float64, dueDate time.Time, generatedBy uuid.UUID) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if studentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STUDENT", "Student ID cannot be empty")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     invoiceNumber,
		StudentID:         studentID,
		AcademicYear:      academicYear,
		Semester:          semester,
		TotalAmount:       totalAmount,
		AmountPaid:        0,
		Balance:           totalAmount,
		Status:            InvoiceStatusPending,
		DueDate:           dueDate,
		GeneratedBy:       generatedBy,
	}, nil
}

// DeriveStatus computes the invoice status for the given running totals.
// The pending branch is unreachable once any payment has been applied; this
// mirrors the behaviour of the payment-processing flow in production.
func DeriveStatus(newBalance, newAmountPaid float64) InvoiceStatus {
	if newBalance <= 0 {
		return InvoiceStatusPaid
	}
	if newAmountPaid > 0 {
		return InvoiceStatusPartiallyPaid
	}
	return InvoiceStatusPending
}

// ApplyPayment adds the payment amount to the running totals and derives the
// new status. It does not persist anything.
func (i *Invoice) ApplyPayment(amount float64, at time.Time) {
	i.AmountPaid = i.AmountPaid + amount
	i.Balance = i.Balance - amount
	i.Status = DeriveStatus(i.Balance, i.AmountPaid)
	i.LastPaymentDate = &at
	i.UpdatedAt = at
	i.IncrementVersion()
}
