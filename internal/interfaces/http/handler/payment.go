package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	financeapp "github.com/sis/backend/internal/application/finance"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *financeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *financeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// ProcessPaymentRequest represents a payment to record against an invoice
type ProcessPaymentRequest struct {
	InvoiceID            string  `json:"invoice_id" binding:"required,uuid"`
	Amount               float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod        string  `json:"payment_method" binding:"omitempty,oneof=bank_deposit cash cheque mobile_money card"`
	TransactionReference string  `json:"transaction_reference" binding:"max=100"`
	Description          string  `json:"description" binding:"max=500"`
}

// Process handles POST /payments
func (h *PaymentHandler) Process(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoiceID, err := uuid.Parse(req.InvoiceID)
	if err != nil {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	processedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Cashier identity is required")
		return
	}

	result, err := h.paymentService.ProcessPayment(c.Request.Context(), financeapp.ProcessPaymentRequest{
		InvoiceID:            invoiceID,
		Amount:               req.Amount,
		PaymentMethod:        req.PaymentMethod,
		TransactionReference: req.TransactionReference,
		Description:          req.Description,
		ProcessedBy:          processedBy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}
