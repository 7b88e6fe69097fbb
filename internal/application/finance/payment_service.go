package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/application/document"
	"github.com/sis/backend/internal/application/notification"
	"github.com/sis/backend/internal/application/workflow"
	financedomain "github.com/sis/backend/internal/domain/finance"
	"github.com/sis/backend/internal/domain/numbering"
	"github.com/sis/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProcessPaymentRequest carries a payment to record against an invoice
type ProcessPaymentRequest struct {
	InvoiceID            uuid.UUID
	Amount               float64
	PaymentMethod        string
	TransactionReference string
	Description          string
	ProcessedBy          uuid.UUID
}

// ProcessPaymentResult reports a recorded payment
type ProcessPaymentResult struct {
	PaymentID     uuid.UUID `json:"payment_id"`
	ReceiptNumber string    `json:"receipt_number"`
	Amount        float64   `json:"amount"`
	NewBalance    float64   `json:"new_balance"`
	InvoiceStatus string    `json:"invoice_status"`
}

// PaymentService posts payments against invoices and maintains the invoice
// running totals incrementally.
type PaymentService struct {
	invoices financedomain.InvoiceRepository
	payments financedomain.PaymentRepository
	renderer document.Renderer
	storage  document.Storage
	mailer   notification.Mailer
	executor *workflow.Executor
	logger   *zap.Logger
}

// NewPaymentService creates a PaymentService
func NewPaymentService(
	invoices financedomain.InvoiceRepository,
	payments financedomain.PaymentRepository,
	renderer document.Renderer,
	storage document.Storage,
	mailer notification.Mailer,
	logger *zap.Logger,
) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		invoices: invoices,
		payments: payments,
		renderer: renderer,
		storage:  storage,
		mailer:   mailer,
		executor: workflow.NewExecutor(logger),
		logger:   logger,
	}
}

// ProcessPayment records a payment and updates the invoice totals. The
// payment insert and the invoice update are hard steps: if the update fails
// after the payment was created, the payment is deleted again and the call
// reports an error. Receipt rendering, upload and the confirmation email are
// best-effort.
func (s *PaymentService) ProcessPayment(ctx context.Context, req ProcessPaymentRequest) (*ProcessPaymentResult, error) {
	if req.InvoiceID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION", "Invoice ID is required")
	}
	if req.Amount <= 0 {
		return nil, shared.NewDomainError("VALIDATION", "Payment amount must be positive")
	}

	details, err := s.invoices.FindByIDWithDetails(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	invoice := details.Invoice

	// Read-then-write on the running totals: concurrent payments against the
	// same invoice can overwrite each other. Accepted.
	newPaid := invoice.AmountPaid + req.Amount
	newBalance := invoice.Balance - req.Amount
	newStatus := financedomain.DeriveStatus(newBalance, newPaid)

	now := time.Now()
	receiptNumber := numbering.ReceiptNumber(now)

	method := financedomain.PaymentMethod(req.PaymentMethod)
	description := req.Description
	if description == "" {
		description = fmt.Sprintf("Payment for %s", invoice.InvoiceNumber)
	}

	payment, err := financedomain.NewPayment(
		invoice.ID, invoice.StudentID, receiptNumber, req.Amount,
		method, req.TransactionReference, description, req.ProcessedBy,
	)
	if err != nil {
		return nil, err
	}

	steps := []workflow.Step{
		{
			Name:        "create-payment",
			Criticality: workflow.Hard,
			Run: func(ctx context.Context) error {
				if err := s.payments.Create(ctx, payment); err != nil {
					return shared.NewDomainError("CREATE_FAILED", "Failed to record payment")
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.payments.Delete(ctx, payment.ID)
			},
		},
		{
			Name:        "update-invoice",
			Criticality: workflow.Hard,
			Run: func(ctx context.Context) error {
				invoice.ApplyPayment(req.Amount, now)
				if err := s.invoices.Update(ctx, &invoice); err != nil {
					return shared.NewDomainError("UPDATE_FAILED", "Failed to update invoice")
				}
				return nil
			},
		},
		{
			Name:        "render-receipt",
			Criticality: workflow.BestEffort,
			Run: func(ctx context.Context) error {
				data := document.ReceiptData{
					ReceiptNumber: receiptNumber,
					StudentNumber: orPlaceholder(details.StudentNumber),
					StudentName:   details.StudentName(),
					Program:       orPlaceholder(details.ProgramName),
					PaymentDate:   now.Format("02/01/2006"),
					PaymentMethod: string(payment.PaymentMethod),
					Amount:        req.Amount,
					Description:   description,
					Balance:       newBalance,
				}
				pdf, err := s.renderer.RenderReceipt(ctx, data)
				if err != nil {
					return err
				}
				return s.storage.Upload(ctx, document.ReceiptKey(receiptNumber), "application/pdf", pdf)
			},
		},
		{
			Name:        "send-payment-confirmation",
			Criticality: workflow.BestEffort,
			Run: func(ctx context.Context) error {
				if details.Email == "" {
					return nil
				}
				s.mailer.SendPaymentConfirmation(ctx, details.Email, details.StudentName(), req.Amount, receiptNumber, description)
				return nil
			},
		},
	}

	if err := s.executor.Execute(ctx, "process-payment", steps); err != nil {
		return nil, err
	}

	return &ProcessPaymentResult{
		PaymentID:     payment.ID,
		ReceiptNumber: receiptNumber,
		Amount:        req.Amount,
		NewBalance:    newBalance,
		InvoiceStatus: newStatus.String(),
	}, nil
}

// orPlaceholder substitutes the document placeholder for empty joined fields
func orPlaceholder(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
