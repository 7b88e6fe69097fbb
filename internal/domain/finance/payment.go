package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/shared"
)

// PaymentStatus represents the state of a payment ledger entry
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusReversed  PaymentStatus = "reversed"
)

// PaymentMethod identifies how a payment was made
type PaymentMethod string

const (
	PaymentMethodBankDeposit PaymentMethod = "bank_deposit"
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCheque      PaymentMethod = "cheque"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodCard        PaymentMethod = "card"
)

// DefaultPaymentMethod is recorded when no method is supplied
const DefaultPaymentMethod = PaymentMethodBankDeposit

// Payment is an immutable ledger entry against one invoice. It is never
// mutated after creation; it may only be deleted as a compensating action
// when the subsequent invoice update fails.
type Payment struct {
	shared.BaseAggregateRoot
	StudentID            uuid.UUID
	InvoiceID            uuid.UUID
	ReceiptNumber        string
	Amount               float64
	PaymentMethod        PaymentMethod
	TransactionReference string
	PaymentDate          time.Time
	Description          string
	Status               PaymentStatus
	ProcessedBy          uuid.UUID
}

// NewPayment creates a completed payment ledger entry
func NewPayment(invoiceID, studentID uuid.UUID, receiptNumber string, amount float64, method PaymentMethod, reference, description string, processedBy uuid.UUID) (*Payment, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Invoice ID cannot be empty")
	}
	if receiptNumber == "" {
		return nil, shared.NewDomainError("INVALID_RECEIPT_NUMBER", "Receipt number cannot be empty")
	}
	if amount <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if method == "" {
		method = DefaultPaymentMethod
	}

	return &Payment{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		StudentID:            studentID,
		InvoiceID:            invoiceID,
		ReceiptNumber:        receiptNumber,
		Amount:               amount,
		PaymentMethod:        method,
		TransactionReference: reference,
		PaymentDate:          time.Now(),
		Description:          description,
		Status:               PaymentStatusCompleted,
		ProcessedBy:          processedBy,
	}, nil
}
