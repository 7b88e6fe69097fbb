package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/domain/finance"
	"github.com/sis/backend/internal/domain/identity"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mocks
// =============================================================================

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *finance.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*finance.InvoiceDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.InvoiceDetails), args.Error(1)
}

func (m *MockInvoiceRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]finance.Invoice, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, invoice *finance.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *finance.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]finance.Payment, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]finance.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFeeStructureRepository struct {
	mock.Mock
}

func (m *MockFeeStructureRepository) FindByProgramAndYear(ctx context.Context, programID uuid.UUID, academicYear string) (*finance.FeeStructure, error) {
	args := m.Called(ctx, programID, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.FeeStructure), args.Error(1)
}

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *academics.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) FindByID(ctx context.Context, id uuid.UUID) (*academics.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*academics.Student), args.Error(1)
}

func (m *MockStudentRepository) FindByStudentNumber(ctx context.Context, studentNumber string) (*academics.Student, error) {
	args := m.Called(ctx, studentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*academics.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, student *academics.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockProgramRepository struct {
	mock.Mock
}

func (m *MockProgramRepository) FindByID(ctx context.Context, id uuid.UUID) (*academics.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*academics.Program), args.Error(1)
}

func (m *MockProgramRepository) FindAll(ctx context.Context) ([]academics.Program, error) {
	args := m.Called(ctx)
	return args.Get(0).([]academics.Program), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) RenderAdmissionLetter(ctx context.Context, data AdmissionLetterData) ([]byte, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderReceipt(ctx context.Context, data ReceiptData) ([]byte, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderInvoice(ctx context.Context, data InvoiceData) ([]byte, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) RenderStudentID(ctx context.Context, data StudentIDData) ([]byte, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// =============================================================================
// Test Helpers
// =============================================================================

type documentMocks struct {
	invoices *MockInvoiceRepository
	payments *MockPaymentRepository
	fees     *MockFeeStructureRepository
	students *MockStudentRepository
	programs *MockProgramRepository
	users    *MockUserRepository
	renderer *MockRenderer
}

func newDocumentServiceWithMocks() (*Service, *documentMocks) {
	m := &documentMocks{
		invoices: new(MockInvoiceRepository),
		payments: new(MockPaymentRepository),
		fees:     new(MockFeeStructureRepository),
		students: new(MockStudentRepository),
		programs: new(MockProgramRepository),
		users:    new(MockUserRepository),
		renderer: new(MockRenderer),
	}
	svc := NewService(m.invoices, m.payments, m.fees, m.students, m.programs, m.users, m.renderer, nil)
	return svc, m
}

func invoiceDetailsFixture() *finance.InvoiceDetails {
	due := time.Date(time.Now().Year(), time.February, 28, 0, 0, 0, 0, time.UTC)
	invoice, _ := finance.NewInvoice("INV-2025-0007", uuid.New(), "2025", "Semester 1", 2800, due, uuid.New())
	return &finance.InvoiceDetails{
		Invoice:       *invoice,
		StudentNumber: "STU-2025-0007",
		ProgramID:     uuid.New(),
		ProgramName:   "Bachelor of Arts",
		FirstName:     "Alice",
		LastName:      "Kaupa",
		Email:         "alice@example.com",
	}
}

// =============================================================================
// Tests
// =============================================================================

func TestDocumentService_Generate_Invoice(t *testing.T) {
	svc, m := newDocumentServiceWithMocks()
	details := invoiceDetailsFixture()

	fs := &finance.FeeStructure{
		ProgramID:      details.ProgramID,
		AcademicYear:   "2025",
		TuitionFee:     "2500.00",
		CompulsoryFees: "300.00",
	}

	m.invoices.On("FindByIDWithDetails", mock.Anything, details.Invoice.ID).Return(details, nil)
	m.fees.On("FindByProgramAndYear", mock.Anything, details.ProgramID, "2025").Return(fs, nil)
	m.renderer.On("RenderInvoice", mock.Anything, mock.AnythingOfType("document.InvoiceData")).Return([]byte("%PDF"), nil)

	result, err := svc.Generate(context.Background(), KindInvoice, details.Invoice.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Invoice_INV-2025-0007.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType)

	data := m.renderer.Calls[0].Arguments.Get(1).(InvoiceData)
	assert.Equal(t, "Alice Kaupa", data.StudentName)
	assert.Len(t, data.Items, 2)
	assert.Equal(t, "Tuition Fee", data.Items[0].Description)
}

func TestDocumentService_Generate_Invoice_NoFeeStructureUsesConsolidatedLine(t *testing.T) {
	svc, m := newDocumentServiceWithMocks()
	details := invoiceDetailsFixture()

	m.invoices.On("FindByIDWithDetails", mock.Anything, details.Invoice.ID).Return(details, nil)
	m.fees.On("FindByProgramAndYear", mock.Anything, details.ProgramID, "2025").Return(nil, shared.ErrNotFound)
	m.renderer.On("RenderInvoice", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)

	_, err := svc.Generate(context.Background(), KindInvoice, details.Invoice.ID)

	assert.NoError(t, err)
	data := m.renderer.Calls[0].Arguments.Get(1).(InvoiceData)
	assert.Equal(t, []finance.FeeItem{{Description: "Fees", Amount: 2800}}, data.Items)
}

func TestDocumentService_Generate_Receipt(t *testing.T) {
	svc, m := newDocumentServiceWithMocks()
	details := invoiceDetailsFixture()
	details.Invoice.Balance = 1300
	payment, _ := finance.NewPayment(details.Invoice.ID, details.Invoice.StudentID, "REC-2025-123456", 1500,
		finance.PaymentMethodCash, "", "Tuition instalment", uuid.New())

	m.payments.On("FindByID", mock.Anything, payment.ID).Return(payment, nil)
	m.invoices.On("FindByIDWithDetails", mock.Anything, details.Invoice.ID).Return(details, nil)
	m.renderer.On("RenderReceipt", mock.Anything, mock.AnythingOfType("document.ReceiptData")).Return([]byte("%PDF"), nil)

	result, err := svc.Generate(context.Background(), KindReceipt, payment.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Receipt_REC-2025-123456.pdf", result.Filename)

	data := m.renderer.Calls[0].Arguments.Get(1).(ReceiptData)
	assert.Equal(t, 1500.0, data.Amount)
	assert.Equal(t, 1300.0, data.Balance)
	assert.Equal(t, "cash", data.PaymentMethod)
}

func TestDocumentService_Generate_AdmissionLetter(t *testing.T) {
	svc, m := newDocumentServiceWithMocks()
	programID := uuid.New()
	student, _ := academics.NewStudent(uuid.New(), "STU-2025-0001", programID, "2025", "Semester 1")
	user, _ := identity.NewUser("x@example.com", "Grace", "Mond", identity.RoleStudent)
	program := &academics.Program{ProgramName: "Bachelor of Science", ProgramCode: "BSC", DegreeLevel: "undergraduate"}
	program.ID = programID

	m.students.On("FindByID", mock.Anything, student.ID).Return(student, nil)
	m.users.On("FindByID", mock.Anything, student.ID).Return(user, nil)
	m.programs.On("FindByID", mock.Anything, programID).Return(program, nil)
	m.renderer.On("RenderAdmissionLetter", mock.Anything, mock.AnythingOfType("document.AdmissionLetterData")).Return([]byte("%PDF"), nil)

	result, err := svc.Generate(context.Background(), KindAdmissionLetter, student.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Admission_Letter_STU-2025-0001.pdf", result.Filename)

	data := m.renderer.Calls[0].Arguments.Get(1).(AdmissionLetterData)
	assert.Equal(t, "Grace Mond", data.StudentName)
	assert.Equal(t, "Main Campus", data.Campus)
}

func TestDocumentService_Generate_StudentID_MissingProgramFallsBack(t *testing.T) {
	svc, m := newDocumentServiceWithMocks()
	student, _ := academics.NewStudent(uuid.New(), "STU-2025-0002", uuid.New(), "2025", "Semester 1")
	user, _ := identity.NewUser("y@example.com", "Paul", "Siune", identity.RoleStudent)

	m.students.On("FindByID", mock.Anything, student.ID).Return(student, nil)
	m.users.On("FindByID", mock.Anything, student.ID).Return(user, nil)
	m.programs.On("FindByID", mock.Anything, student.ProgramID).Return(nil, shared.ErrNotFound)
	m.renderer.On("RenderStudentID", mock.Anything, mock.AnythingOfType("document.StudentIDData")).Return([]byte("%PDF"), nil)

	result, err := svc.Generate(context.Background(), KindStudentID, student.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Student_ID_STU-2025-0002.pdf", result.Filename)

	data := m.renderer.Calls[0].Arguments.Get(1).(StudentIDData)
	assert.Equal(t, "N/A", data.Program)
	assert.Equal(t, "N/A", data.ProgramCode)
	assert.Equal(t, 1, data.Year)
}

func TestDocumentService_Generate_UnknownKind(t *testing.T) {
	svc, _ := newDocumentServiceWithMocks()

	result, err := svc.Generate(context.Background(), Kind("transcript"), uuid.New())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestDocumentService_Generate_RenderFailure(t *testing.T) {
	svc, m := newDocumentServiceWithMocks()
	details := invoiceDetailsFixture()

	m.invoices.On("FindByIDWithDetails", mock.Anything, details.Invoice.ID).Return(details, nil)
	m.fees.On("FindByProgramAndYear", mock.Anything, details.ProgramID, "2025").Return(nil, shared.ErrNotFound)
	m.renderer.On("RenderInvoice", mock.Anything, mock.Anything).Return(nil, errors.New("chromium crashed"))

	result, err := svc.Generate(context.Background(), KindInvoice, details.Invoice.ID)

	assert.ErrorIs(t, err, shared.ErrRenderFailed)
	assert.Nil(t, result)
}
