package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/domain/finance"
	"github.com/sis/backend/internal/domain/identity"
	"github.com/sis/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const dateLayout = "02/01/2006"

// Rendered is a generated document ready for download
type Rendered struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service renders the four on-demand document types from their persisted
// records. Missing joined fields render as placeholders rather than failing
// the download.
type Service struct {
	invoices finance.InvoiceRepository
	payments finance.PaymentRepository
	fees     finance.FeeStructureRepository
	students academics.StudentRepository
	programs academics.ProgramRepository
	users    identity.UserRepository
	renderer Renderer
	logger   *zap.Logger
}

// NewService creates a document Service
func NewService(
	invoices finance.InvoiceRepository,
	payments finance.PaymentRepository,
	fees finance.FeeStructureRepository,
	students academics.StudentRepository,
	programs academics.ProgramRepository,
	users identity.UserRepository,
	renderer Renderer,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		invoices: invoices,
		payments: payments,
		fees:     fees,
		students: students,
		programs: programs,
		users:    users,
		renderer: renderer,
		logger:   logger,
	}
}

// Generate renders the document of the given kind for the given record ID
func (s *Service) Generate(ctx context.Context, kind Kind, id uuid.UUID) (*Rendered, error) {
	switch kind {
	case KindInvoice:
		return s.generateInvoice(ctx, id)
	case KindReceipt:
		return s.generateReceipt(ctx, id)
	case KindAdmissionLetter:
		return s.generateAdmissionLetter(ctx, id)
	case KindStudentID:
		return s.generateStudentID(ctx, id)
	default:
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type")
	}
}

func (s *Service) generateInvoice(ctx context.Context, id uuid.UUID) (*Rendered, error) {
	details, err := s.invoices.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice := details.Invoice

	// The breakdown lists every non-zero fee line for the period; when the
	// fee structure is gone a single consolidated line stands in.
	var items []finance.FeeItem
	if fs, err := s.fees.FindByProgramAndYear(ctx, details.ProgramID, invoice.AcademicYear); err == nil {
		items = finance.FeeBreakdown(fs, true)
	}
	if len(items) == 0 {
		items = []finance.FeeItem{{Description: "Fees", Amount: invoice.TotalAmount}}
	}

	data := InvoiceData{
		InvoiceNumber: invoice.InvoiceNumber,
		StudentNumber: fallback(details.StudentNumber, "N/A"),
		StudentName:   details.StudentName(),
		Program:       fallback(details.ProgramName, "N/A"),
		AcademicYear:  invoice.AcademicYear,
		Semester:      invoice.Semester,
		Items:         items,
		TotalAmount:   invoice.TotalAmount,
		AmountPaid:    invoice.AmountPaid,
		Balance:       invoice.Balance,
		DueDate:       invoice.DueDate.Format(dateLayout),
		IssueDate:     invoice.CreatedAt.Format(dateLayout),
	}
	pdf, err := s.renderer.RenderInvoice(ctx, data)
	if err != nil {
		return nil, shared.ErrRenderFailed
	}
	return &Rendered{
		Filename:    fmt.Sprintf("Invoice_%s.pdf", invoice.InvoiceNumber),
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}

func (s *Service) generateReceipt(ctx context.Context, id uuid.UUID) (*Rendered, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := s.invoices.FindByIDWithDetails(ctx, payment.InvoiceID)
	if err != nil {
		return nil, err
	}

	data := ReceiptData{
		ReceiptNumber: payment.ReceiptNumber,
		StudentNumber: fallback(details.StudentNumber, "N/A"),
		StudentName:   details.StudentName(),
		Program:       fallback(details.ProgramName, "N/A"),
		PaymentDate:   payment.PaymentDate.Format(dateLayout),
		PaymentMethod: string(payment.PaymentMethod),
		Amount:        payment.Amount,
		Description:   fallback(payment.Description, "Payment"),
		Balance:       details.Invoice.Balance,
	}
	pdf, err := s.renderer.RenderReceipt(ctx, data)
	if err != nil {
		return nil, shared.ErrRenderFailed
	}
	return &Rendered{
		Filename:    fmt.Sprintf("Receipt_%s.pdf", payment.ReceiptNumber),
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}

func (s *Service) generateAdmissionLetter(ctx context.Context, id uuid.UUID) (*Rendered, error) {
	student, program, user, err := s.loadStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	admissionDate := student.AdmissionDate
	if admissionDate.IsZero() {
		admissionDate = time.Now()
	}

	data := AdmissionLetterData{
		StudentName:   user.FullName(),
		StudentNumber: student.StudentNumber,
		Program:       fallback(program.ProgramName, "N/A"),
		ProgramCode:   fallback(program.ProgramCode, "N/A"),
		DegreeLevel:   fallback(program.DegreeLevel, academics.DegreeLevelUndergraduate),
		AdmissionDate: admissionDate.Format(dateLayout),
		AcademicYear:  fallback(student.AcademicYear, fmt.Sprintf("%d", time.Now().Year())),
		Semester:      fallback(student.CurrentSemester, "Semester 1"),
		Campus:        "Main Campus",
	}
	pdf, err := s.renderer.RenderAdmissionLetter(ctx, data)
	if err != nil {
		return nil, shared.ErrRenderFailed
	}
	return &Rendered{
		Filename:    fmt.Sprintf("Admission_Letter_%s.pdf", student.StudentNumber),
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}

func (s *Service) generateStudentID(ctx context.Context, id uuid.UUID) (*Rendered, error) {
	student, program, user, err := s.loadStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	year := student.CurrentYearLevel
	if year == 0 {
		year = 1
	}
	now := time.Now()

	data := StudentIDData{
		StudentNumber: student.StudentNumber,
		StudentName:   user.FullName(),
		Program:       fallback(program.ProgramName, "N/A"),
		ProgramCode:   fallback(program.ProgramCode, "N/A"),
		Year:          year,
		IssueDate:     now.Format(dateLayout),
		ExpiryDate:    time.Date(now.Year()+4, time.December, 31, 0, 0, 0, 0, time.UTC).Format(dateLayout),
	}
	pdf, err := s.renderer.RenderStudentID(ctx, data)
	if err != nil {
		return nil, shared.ErrRenderFailed
	}
	return &Rendered{
		Filename:    fmt.Sprintf("Student_ID_%s.pdf", student.StudentNumber),
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}

// loadStudent fetches a student together with the owning user and program.
// The user shares the student's ID.
func (s *Service) loadStudent(ctx context.Context, id uuid.UUID) (*academics.Student, *academics.Program, *identity.User, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	user, err := s.users.FindByID(ctx, student.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	program, err := s.programs.FindByID(ctx, student.ProgramID)
	if err != nil {
		program = &academics.Program{}
	}
	return student, program, user, nil
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
