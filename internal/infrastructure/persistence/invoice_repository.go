package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/finance"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// Create persists a new invoice
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *finance.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID finds an invoice by ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// invoiceDetailsRow carries the joined columns for FindByIDWithDetails.
// Students share their primary key with the owning user, so the user join
// goes through students.id.
type invoiceDetailsRow struct {
	StudentNumber string
	ProgramID     uuid.UUID
	ProgramName   string
	FirstName     string
	LastName      string
	Email         string
}

// FindByIDWithDetails finds an invoice with joined student, user and program
// data. The joins are LEFT joins: an invoice whose student record is missing
// still resolves, with empty detail fields.
func (r *GormInvoiceRepository) FindByIDWithDetails(ctx context.Context, id uuid.UUID) (*finance.InvoiceDetails, error) {
	invoice, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var row invoiceDetailsRow
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select("students.student_number, students.program_id, programs.program_name, users.first_name, users.last_name, users.email").
		Joins("LEFT JOIN students ON students.id = invoices.student_id").
		Joins("LEFT JOIN users ON users.id = students.id").
		Joins("LEFT JOIN programs ON programs.id = students.program_id").
		Where("invoices.id = ?", id).
		Scan(&row).Error; err != nil {
		return nil, err
	}

	return &finance.InvoiceDetails{
		Invoice:       *invoice,
		StudentNumber: row.StudentNumber,
		ProgramID:     row.ProgramID,
		ProgramName:   row.ProgramName,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Email:         row.Email,
	}, nil
}

// FindByStudent returns a student's invoices, newest first
func (r *GormInvoiceRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) ([]finance.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]finance.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// Update persists changes to an existing invoice
func (r *GormInvoiceRepository) Update(ctx context.Context, invoice *finance.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	return r.db.WithContext(ctx).Save(model).Error
}
