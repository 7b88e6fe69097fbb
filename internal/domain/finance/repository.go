package finance

import (
	"context"

	"github.com/google/uuid"
)

// InvoiceDetails carries an invoice together with the joined student, user
// and program fields needed for receipts and notifications.
type InvoiceDetails struct {
	Invoice       Invoice
	StudentNumber string
	ProgramID     uuid.UUID
	ProgramName   string
	FirstName     string
	LastName      string
	Email         string
}

// StudentName returns the joined display name for documents, with the usual
// placeholder when both fields are empty.
func (d *InvoiceDetails) StudentName() string {
	name := d.FirstName + " " + d.LastName
	if name == " " {
		return "N/A"
	}
	return name
}

// InvoiceRepository defines the persistence interface for invoices
type InvoiceRepository interface {
	// Create persists a new invoice
	Create(ctx context.Context, invoice *Invoice) error
	// FindByID finds an invoice by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByIDWithDetails finds an invoice with joined student/user/program data
	FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*InvoiceDetails, error)
	// FindByStudent returns a student's invoices
	FindByStudent(ctx context.Context, studentID uuid.UUID) ([]Invoice, error)
	// Update persists changes to an existing invoice
	Update(ctx context.Context, invoice *Invoice) error
}

// PaymentRepository defines the persistence interface for payments
type PaymentRepository interface {
	// Create persists a new payment ledger entry
	Create(ctx context.Context, payment *Payment) error
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	// FindByInvoice returns the payments recorded against an invoice
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
	// Delete removes a payment. Used only as a compensating action when the
	// invoice update fails after the payment has been created.
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeeStructureRepository provides read access to fee reference data
type FeeStructureRepository interface {
	// FindByProgramAndYear finds the fee structure for a program and academic
	// year. Returns shared.ErrNotFound when no row matches.
	FindByProgramAndYear(ctx context.Context, programID uuid.UUID, academicYear string) (*FeeStructure, error)
}
