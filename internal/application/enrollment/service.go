package enrollment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/application/notification"
	"github.com/sis/backend/internal/application/workflow"
	"github.com/sis/backend/internal/domain/academics"
	"github.com/sis/backend/internal/domain/finance"
	"github.com/sis/backend/internal/domain/identity"
	"github.com/sis/backend/internal/domain/numbering"
	"github.com/sis/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Per-credit tuition and the flat levies added to every course registration
// invoice, in Kina.
const (
	TuitionPerCredit   = 150.0
	ICTLevyFee         = 100.0
	StudentServicesFee = 100.0
	LibraryFee         = 50.0
)

// RegistrationFeesTotal is the flat portion of a registration invoice
const RegistrationFeesTotal = ICTLevyFee + StudentServicesFee + LibraryFee

// Service handles semester enrollment and course registration for admitted
// students.
type Service struct {
	students    academics.StudentRepository
	programs    academics.ProgramRepository
	courses     academics.CourseRepository
	enrollments academics.EnrollmentRepository
	users       identity.UserRepository
	invoices    finance.InvoiceRepository
	mailer      notification.Mailer
	executor    *workflow.Executor
	logger      *zap.Logger
}

// NewService creates an enrollment Service
func NewService(
	students academics.StudentRepository,
	programs academics.ProgramRepository,
	courses academics.CourseRepository,
	enrollments academics.EnrollmentRepository,
	users identity.UserRepository,
	invoices finance.InvoiceRepository,
	mailer notification.Mailer,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		students:    students,
		programs:    programs,
		courses:     courses,
		enrollments: enrollments,
		users:       users,
		invoices:    invoices,
		mailer:      mailer,
		executor:    workflow.NewExecutor(logger),
		logger:      logger,
	}
}

// EnrollSemester records a semester enrollment pending registrar approval and
// sends the confirmation email (best-effort).
func (s *Service) EnrollSemester(ctx context.Context, req EnrollSemesterRequest) (*EnrollSemesterResult, error) {
	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	program, err := s.programs.FindByID(ctx, student.ProgramID)
	if err != nil {
		return nil, err
	}

	enrollment, err := academics.NewSemesterEnrollment(student.ID, req.AcademicYear, req.Semester, program.ProgramCode)
	if err != nil {
		return nil, err
	}
	enrollment.Level = req.Level
	enrollment.AmountPaid = req.AmountPaid
	enrollment.ReceiptNumber = req.ReceiptNumber
	enrollment.LibraryNumber = req.LibraryNumber
	enrollment.MealNumber = req.MealNumber
	enrollment.Dormitory = req.Dormitory
	enrollment.RoomNumber = req.RoomNumber
	enrollment.DeclarationAgree = req.DeclarationAgree
	enrollment.Signature = req.Signature
	enrollment.Witness = req.Witness

	if err := s.enrollments.CreateSemesterEnrollment(ctx, enrollment); err != nil {
		return nil, shared.NewDomainError("CREATE_FAILED", "Failed to record enrollment")
	}

	if user, err := s.users.FindByID(ctx, student.ID); err == nil {
		s.mailer.SendEnrollmentConfirmation(ctx, user.Email, user.FullName(), student.StudentNumber, program.ProgramName)
	}

	return &EnrollSemesterResult{
		EnrollmentID: enrollment.ID,
		Status:       string(enrollment.Status),
	}, nil
}

// RegisterCourses validates the course selection against the credit window
// and course capacity, writes the enrollment rows and the registration
// invoice, and sends the confirmation email (best-effort). The invoice uses
// the per-credit tuition rate plus the flat levies.
func (s *Service) RegisterCourses(ctx context.Context, req RegisterCoursesRequest) (*RegisterCoursesResult, error) {
	if len(req.CourseIDs) == 0 {
		return nil, shared.NewDomainError("VALIDATION", "At least one course is required")
	}

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.FindByIDs(ctx, req.CourseIDs)
	if err != nil {
		return nil, err
	}
	if len(courses) != len(req.CourseIDs) {
		return nil, shared.NewDomainError("COURSE_NOT_FOUND", "One or more selected courses do not exist")
	}

	totalCredits := 0
	courseNames := make([]string, 0, len(courses))
	for i := range courses {
		if !courses[i].HasCapacity() {
			return nil, shared.NewDomainError("COURSE_FULL", "Course "+courses[i].CourseCode+" is full")
		}
		totalCredits += courses[i].Credits
		courseNames = append(courseNames, courses[i].CourseCode+" "+courses[i].CourseName)
	}
	program, err := s.programs.FindByID(ctx, student.ProgramID)
	if err != nil {
		return nil, err
	}
	if err := academics.ValidateCreditLoad(totalCredits, program.DegreeLevel); err != nil {
		return nil, err
	}

	registeredBy := req.RegisteredBy
	if registeredBy == uuid.Nil {
		registeredBy = student.ID
	}

	rows := make([]academics.CourseEnrollment, 0, len(courses))
	for i := range courses {
		rows = append(rows, academics.CourseEnrollment{
			BaseEntity:   shared.NewBaseEntity(),
			StudentID:    student.ID,
			CourseID:     courses[i].ID,
			AcademicYear: req.AcademicYear,
			Semester:     req.Semester,
			Status:       academics.CourseEnrollmentPendingAdvisor,
			EnrolledBy:   registeredBy,
		})
	}

	total := float64(totalCredits)*TuitionPerCredit + RegistrationFeesTotal
	now := time.Now()
	invoiceNumber := numbering.RegistrationInvoiceNumber(req.AcademicYear, now)
	dueDate := time.Date(now.Year(), time.February, 28, 0, 0, 0, 0, time.UTC)
	invoice, err := finance.NewInvoice(invoiceNumber, student.ID, req.AcademicYear, req.Semester, total, dueDate, registeredBy)
	if err != nil {
		return nil, err
	}

	steps := []workflow.Step{
		{
			Name:        "create-course-enrollments",
			Criticality: workflow.Hard,
			Run: func(ctx context.Context) error {
				if err := s.enrollments.CreateCourseEnrollments(ctx, rows); err != nil {
					return shared.NewDomainError("CREATE_FAILED", "Failed to record course enrollments")
				}
				return nil
			},
		},
		{
			Name:        "create-registration-invoice",
			Criticality: workflow.Hard,
			Run: func(ctx context.Context) error {
				if err := s.invoices.Create(ctx, invoice); err != nil {
					return shared.NewDomainError("CREATE_FAILED", "Failed to create registration invoice")
				}
				return nil
			},
		},
		{
			Name:        "send-registration-confirmation",
			Criticality: workflow.BestEffort,
			Run: func(ctx context.Context) error {
				user, err := s.users.FindByID(ctx, student.ID)
				if err != nil {
					return err
				}
				s.mailer.SendCourseRegistrationConfirmation(ctx, user.Email, user.FullName(), courseNames, totalCredits)
				return nil
			},
		},
	}

	if err := s.executor.Execute(ctx, "register-courses", steps); err != nil {
		return nil, err
	}

	return &RegisterCoursesResult{
		TotalCredits:  totalCredits,
		Courses:       courseNames,
		InvoiceNumber: invoiceNumber,
	}, nil
}
