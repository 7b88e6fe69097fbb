package handler

import (
	"github.com/gin-gonic/gin"
	financeapp "github.com/sis/backend/internal/application/finance"
)

// InvoiceHandler handles invoice query endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *financeapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *financeapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// Get handles GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	details, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, details)
}

// ListPayments handles GET /invoices/:id/payments
func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.invoiceService.ListInvoicePayments(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, payments)
}

// ListForStudent handles GET /students/:id/invoices
func (h *InvoiceHandler) ListForStudent(c *gin.Context) {
	studentID, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid student ID")
		return
	}

	invoices, err := h.invoiceService.ListStudentInvoices(c.Request.Context(), studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, invoices)
}
