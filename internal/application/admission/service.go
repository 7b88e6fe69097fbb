package admission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/application/document"
	"github.com/sis/backend/internal/application/notification"
	"github.com/sis/backend/internal/application/workflow"
	"github.com/sis/backend/internal/domain/academics"
	admissiondomain "github.com/sis/backend/internal/domain/admission"
	"github.com/sis/backend/internal/domain/finance"
	"github.com/sis/backend/internal/domain/identity"
	"github.com/sis/backend/internal/domain/numbering"
	"github.com/sis/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Fixed period parameters applied to admissions in the current intake.
const (
	defaultSemester = "Semester 1"
	defaultCampus   = "Main Campus"
)

// Service orchestrates the application lifecycle: submission, approval with
// its user/student/invoice side effects, and rejection.
type Service struct {
	applications admissiondomain.ApplicationRepository
	users        identity.UserRepository
	students     academics.StudentRepository
	programs     academics.ProgramRepository
	feeRepo      finance.FeeStructureRepository
	invoices     finance.InvoiceRepository
	sequence     numbering.Sequence
	renderer     document.Renderer
	storage      document.Storage
	mailer       notification.Mailer
	executor     *workflow.Executor
	logger       *zap.Logger
}

// NewService creates an admission Service
func NewService(
	applications admissiondomain.ApplicationRepository,
	users identity.UserRepository,
	students academics.StudentRepository,
	programs academics.ProgramRepository,
	feeRepo finance.FeeStructureRepository,
	invoices finance.InvoiceRepository,
	sequence numbering.Sequence,
	renderer document.Renderer,
	storage document.Storage,
	mailer notification.Mailer,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		applications: applications,
		users:        users,
		students:     students,
		programs:     programs,
		feeRepo:      feeRepo,
		invoices:     invoices,
		sequence:     sequence,
		renderer:     renderer,
		storage:      storage,
		mailer:       mailer,
		executor:     workflow.NewExecutor(logger),
		logger:       logger,
	}
}

// SubmitApplication records a new application and sends the confirmation
// email (best-effort).
func (s *Service) SubmitApplication(ctx context.Context, req SubmitApplicationRequest) (*SubmitApplicationResult, error) {
	applicationID := numbering.ApplicationID(time.Now())

	app, err := admissiondomain.NewApplication(applicationID, req.ProgramID, req.FirstName, req.LastName, req.Email)
	if err != nil {
		return nil, err
	}
	app.Phone = req.Phone
	app.DateOfBirth = req.DateOfBirth
	app.Gender = req.Gender
	app.Nationality = req.Nationality
	app.NationalID = req.NationalID
	app.MaritalStatus = req.MaritalStatus
	app.Religion = req.Religion
	app.Province = req.Province
	app.District = req.District
	app.Village = req.Village
	app.PostalAddress = req.PostalAddress
	app.EmergencyContactName = req.EmergencyContactName
	app.EmergencyContactPhone = req.EmergencyContactPhone
	app.EmergencyContactRelationship = req.EmergencyContactRelationship
	app.Grade12School = req.Grade12School
	app.Grade12Year = req.Grade12Year
	app.Grade12Marks = req.Grade12Marks
	app.MatriculationCentre = req.MatriculationCentre
	app.NearestAirport = req.NearestAirport
	app.ResidentType = req.ResidentType
	app.Sponsor = req.Sponsor
	app.Grade12Certificate = req.Grade12Certificate
	app.AcademicTranscript = req.AcademicTranscript
	app.NationalIDDocument = req.NationalIDDocument
	app.PassportPhoto = req.PassportPhoto

	if err := s.applications.Create(ctx, app); err != nil {
		return nil, shared.NewDomainError("CREATE_FAILED", "Failed to submit application")
	}

	s.mailer.SendApplicationConfirmation(ctx, app.Email, app.FullName(), applicationID)

	return &SubmitApplicationResult{ApplicationID: applicationID}, nil
}

// ApproveApplication converts a submitted application into User, Student and
// (when a fee structure exists) Invoice records, uploads the admission letter
// and sends the offer email. Persistence writes run first and in order; the
// letter, email and invoice are best-effort once user and student exist.
func (s *Service) ApproveApplication(ctx context.Context, applicationID, approvedBy uuid.UUID) (*ApproveApplicationResult, error) {
	app, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !app.CanDecide() {
		return nil, shared.ErrInvalidState
	}

	program, err := s.programs.FindByID(ctx, app.ProgramID)
	if err != nil {
		return nil, err
	}

	// Read-then-use sequence: two concurrent approvals can mint the same
	// number. Accepted; the Redis-backed Sequence avoids it where configured.
	seq, err := s.sequence.Next(ctx, numbering.CounterStudents)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	academicYear := fmt.Sprintf("%d", year)
	studentNumber := numbering.StudentNumber(year, seq)

	user, err := identity.NewUser(app.Email, app.FirstName, app.LastName, identity.RoleStudent)
	if err != nil {
		return nil, err
	}
	user.Phone = app.Phone
	// Initial portal password is the minted student number, as promised
	// in the offer email.
	if err := user.SetPassword(studentNumber); err != nil {
		return nil, err
	}

	var letter []byte

	steps := []workflow.Step{
		{
			Name:        "create-user",
			Criticality: workflow.Hard,
			Run: func(ctx context.Context) error {
				if err := s.users.Create(ctx, user); err != nil {
					return shared.NewDomainError("CREATE_FAILED", "Failed to create user account")
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.users.Delete(ctx, user.ID)
			},
		},
		{
			Name:        "create-student",
			Criticality: workflow.Hard,
			Run: func(ctx context.Context) error {
				student, err := s.buildStudent(app, user.ID, studentNumber, academicYear)
				if err != nil {
					return err
				}
				if err := s.students.Create(ctx, student); err != nil {
					return shared.NewDomainError("CREATE_FAILED", "Failed to create student record")
				}
				return nil
			},
		},
		{
			// User and Student already exist at this point; a failed status
			// update is logged and accepted rather than rolled back.
			Name:        "update-application",
			Criticality: workflow.BestEffort,
			Run: func(ctx context.Context) error {
				if err := app.Approve(approvedBy, studentNumber); err != nil {
					return err
				}
				return s.applications.Update(ctx, app)
			},
		},
		{
			Name:        "render-admission-letter",
			Criticality: workflow.BestEffort,
			Run: func(ctx context.Context) error {
				data := document.AdmissionLetterData{
					StudentName:   app.FullName(),
					StudentNumber: studentNumber,
					Program:       program.ProgramName,
					ProgramCode:   program.ProgramCode,
					DegreeLevel:   program.DegreeLevel,
					AdmissionDate: time.Now().Format("02/01/2006"),
					AcademicYear:  academicYear,
					Semester:      defaultSemester,
					Campus:        defaultCampus,
				}
				pdf, err := s.renderer.RenderAdmissionLetter(ctx, data)
				if err != nil {
					return err
				}
				letter = pdf
				return s.storage.Upload(ctx, document.AdmissionLetterKey(studentNumber), "application/pdf", pdf)
			},
		},
		{
			Name:        "send-admission-offer",
			Criticality: workflow.BestEffort,
			Run: func(ctx context.Context) error {
				s.mailer.SendAdmissionOffer(ctx, app.Email, app.FullName(), studentNumber, program.ProgramName, letter)
				return nil
			},
		},
		{
			// No fee structure for the period means no invoice; the approval
			// still succeeds.
			Name:        "create-invoice",
			Criticality: workflow.BestEffort,
			Run: func(ctx context.Context) error {
				return s.createAdmissionInvoice(ctx, app, user.ID, approvedBy, academicYear, seq)
			},
		},
	}

	if err := s.executor.Execute(ctx, "approve-application", steps); err != nil {
		return nil, err
	}

	return &ApproveApplicationResult{
		StudentNumber: studentNumber,
		UserID:        user.ID,
		Email:         app.Email,
	}, nil
}

// RejectApplication records the rejection and sends the notice (best-effort).
// Unlike approval, a failed status update here is a hard error: nothing else
// has been written yet, so there is nothing to preserve.
func (s *Service) RejectApplication(ctx context.Context, applicationID uuid.UUID, reason string, rejectedBy uuid.UUID) error {
	app, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if !app.CanDecide() {
		return shared.ErrInvalidState
	}

	if err := app.Reject(rejectedBy, reason); err != nil {
		return err
	}
	if err := s.applications.Update(ctx, app); err != nil {
		return shared.NewDomainError("UPDATE_FAILED", "Failed to update application")
	}

	s.mailer.SendApplicationRejection(ctx, app.Email, app.FullName(), app.RejectionReason)

	return nil
}

// GetApplication returns one application by internal ID
func (s *Service) GetApplication(ctx context.Context, id uuid.UUID) (*admissiondomain.Application, error) {
	return s.applications.FindByID(ctx, id)
}

// ListApplications returns applications matching the filter together with the
// total count for pagination.
func (s *Service) ListApplications(ctx context.Context, filter admissiondomain.ApplicationFilter) ([]admissiondomain.Application, int64, error) {
	apps, err := s.applications.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.applications.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

// buildStudent copies the application's demographic fields onto a new student
// record owned by the given user.
func (s *Service) buildStudent(app *admissiondomain.Application, userID uuid.UUID, studentNumber, academicYear string) (*academics.Student, error) {
	student, err := academics.NewStudent(userID, studentNumber, app.ProgramID, academicYear, defaultSemester)
	if err != nil {
		return nil, err
	}
	student.DateOfBirth = app.DateOfBirth
	student.Gender = app.Gender
	student.Nationality = app.Nationality
	student.NationalID = app.NationalID
	student.MaritalStatus = app.MaritalStatus
	student.Religion = app.Religion
	student.Province = app.Province
	student.District = app.District
	student.HomeAddress = app.Village
	student.EmergencyContactName = app.EmergencyContactName
	student.EmergencyContactPhone = app.EmergencyContactPhone
	student.EmergencyContactRelationship = app.EmergencyContactRelationship
	student.SecondarySchool = app.Grade12School
	student.Grade12Results = app.Grade12Marks
	student.NearestAirport = app.NearestAirport
	student.ResidentType = app.ResidentType
	student.Sponsor = app.Sponsor
	return student, nil
}

// createAdmissionInvoice looks up the fee structure for the application's
// program and period and creates the initial invoice. A missing fee structure
// skips invoice creation silently.
func (s *Service) createAdmissionInvoice(ctx context.Context, app *admissiondomain.Application, studentID, approvedBy uuid.UUID, academicYear string, seq int64) error {
	fs, err := s.feeRepo.FindByProgramAndYear(ctx, app.ProgramID, academicYear)
	if err != nil {
		if err == shared.ErrNotFound {
			s.logger.Info("no fee structure for program, skipping invoice",
				zap.String("program_id", app.ProgramID.String()),
				zap.String("academic_year", academicYear),
			)
			return nil
		}
		return err
	}

	residential := strings.EqualFold(app.ResidentType, "boarding")
	total := finance.CalculateTotal(fs, residential)

	generatedBy := approvedBy
	if generatedBy == uuid.Nil {
		generatedBy = studentID
	}

	dueDate := time.Date(time.Now().Year(), time.February, 28, 0, 0, 0, 0, time.UTC)
	invoice, err := finance.NewInvoice(
		numbering.AdmissionInvoiceNumber(academicYear, seq),
		studentID, academicYear, defaultSemester, total, dueDate, generatedBy,
	)
	if err != nil {
		return err
	}
	return s.invoices.Create(ctx, invoice)
}
