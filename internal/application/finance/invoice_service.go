package finance

import (
	"context"

	"github.com/google/uuid"
	financedomain "github.com/sis/backend/internal/domain/finance"
	"go.uber.org/zap"
)

// InvoiceService exposes read access to invoices and their payment history
type InvoiceService struct {
	invoices financedomain.InvoiceRepository
	payments financedomain.PaymentRepository
	logger   *zap.Logger
}

// NewInvoiceService creates an InvoiceService
func NewInvoiceService(invoices financedomain.InvoiceRepository, payments financedomain.PaymentRepository, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{invoices: invoices, payments: payments, logger: logger}
}

// GetInvoice returns an invoice with its joined student and program fields
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*financedomain.InvoiceDetails, error) {
	return s.invoices.FindByIDWithDetails(ctx, id)
}

// ListStudentInvoices returns a student's invoices
func (s *InvoiceService) ListStudentInvoices(ctx context.Context, studentID uuid.UUID) ([]financedomain.Invoice, error) {
	return s.invoices.FindByStudent(ctx, studentID)
}

// ListInvoicePayments returns the payments recorded against an invoice
func (s *InvoiceService) ListInvoicePayments(ctx context.Context, invoiceID uuid.UUID) ([]financedomain.Payment, error) {
	return s.payments.FindByInvoice(ctx, invoiceID)
}
