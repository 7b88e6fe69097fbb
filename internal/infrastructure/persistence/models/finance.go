package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/finance"
)

// Monetary columns are stored as decimal strings and parsed to floats at the
// domain boundary. Scanning through a string keeps trailing precision intact
// on the way back out.
func parseDecimalString(s string) float64 {
	return finance.ParseAmount(s)
}

func formatDecimalString(v float64) string {
	return finance.FormatAmount(v)
}

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	AggregateModel
	InvoiceNumber   string                `gorm:"type:varchar(30);not null;uniqueIndex"`
	StudentID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	AcademicYear    string                `gorm:"type:varchar(10)"`
	Semester        string                `gorm:"type:varchar(30)"`
	TotalAmount     string                `gorm:"type:decimal(12,2);not null;default:0"`
	AmountPaid      string                `gorm:"type:decimal(12,2);not null;default:0"`
	Balance         string                `gorm:"type:decimal(12,2);not null;default:0"`
	Status          finance.InvoiceStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate         time.Time             `gorm:"not null"`
	LastPaymentDate *time.Time
	GeneratedBy     uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice aggregate.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvoiceNumber:     m.InvoiceNumber,
		StudentID:         m.StudentID,
		AcademicYear:      m.AcademicYear,
		Semester:          m.Semester,
		TotalAmount:       parseDecimalString(m.TotalAmount),
		AmountPaid:        parseDecimalString(m.AmountPaid),
		Balance:           parseDecimalString(m.Balance),
		Status:            m.Status,
		DueDate:           m.DueDate,
		LastPaymentDate:   m.LastPaymentDate,
		GeneratedBy:       m.GeneratedBy,
	}
}

// FromDomain populates the persistence model from a domain Invoice aggregate.
func (m *InvoiceModel) FromDomain(i *finance.Invoice) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.InvoiceNumber = i.InvoiceNumber
	m.StudentID = i.StudentID
	m.AcademicYear = i.AcademicYear
	m.Semester = i.Semester
	m.TotalAmount = formatDecimalString(i.TotalAmount)
	m.AmountPaid = formatDecimalString(i.AmountPaid)
	m.Balance = formatDecimalString(i.Balance)
	m.Status = i.Status
	m.DueDate = i.DueDate
	m.LastPaymentDate = i.LastPaymentDate
	m.GeneratedBy = i.GeneratedBy
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(i *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}

// PaymentModel is the persistence model for the Payment ledger entry.
type PaymentModel struct {
	AggregateModel
	StudentID            uuid.UUID             `gorm:"type:uuid;not null;index"`
	InvoiceID            uuid.UUID             `gorm:"type:uuid;not null;index"`
	ReceiptNumber        string                `gorm:"type:varchar(30);not null;uniqueIndex"`
	Amount               string                `gorm:"type:decimal(12,2);not null"`
	PaymentMethod        finance.PaymentMethod `gorm:"type:varchar(20);not null;default:'bank_deposit'"`
	TransactionReference string                `gorm:"type:varchar(100)"`
	PaymentDate          time.Time             `gorm:"not null"`
	Description          string                `gorm:"type:text"`
	Status               finance.PaymentStatus `gorm:"type:varchar(20);not null;default:'completed'"`
	ProcessedBy          uuid.UUID             `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment aggregate.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		BaseAggregateRoot:    m.ToDomainAggregateRoot(),
		StudentID:            m.StudentID,
		InvoiceID:            m.InvoiceID,
		ReceiptNumber:        m.ReceiptNumber,
		Amount:               parseDecimalString(m.Amount),
		PaymentMethod:        m.PaymentMethod,
		TransactionReference: m.TransactionReference,
		PaymentDate:          m.PaymentDate,
		Description:          m.Description,
		Status:               m.Status,
		ProcessedBy:          m.ProcessedBy,
	}
}

// FromDomain populates the persistence model from a domain Payment aggregate.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.StudentID = p.StudentID
	m.InvoiceID = p.InvoiceID
	m.ReceiptNumber = p.ReceiptNumber
	m.Amount = formatDecimalString(p.Amount)
	m.PaymentMethod = p.PaymentMethod
	m.TransactionReference = p.TransactionReference
	m.PaymentDate = p.PaymentDate
	m.Description = p.Description
	m.Status = p.Status
	m.ProcessedBy = p.ProcessedBy
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// FeeStructureModel is the persistence model for fee reference data.
// The monetary columns stay as strings end to end; the domain parses them
// lazily and treats unparseable values as zero.
type FeeStructureModel struct {
	BaseModel
	ProgramID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fee_structure_period,priority:1"`
	AcademicYear   string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_fee_structure_period,priority:2"`
	TuitionFee     string    `gorm:"type:decimal(12,2);not null;default:0"`
	CompulsoryFees string    `gorm:"type:decimal(12,2);not null;default:0"`
	BoardingFee    string    `gorm:"type:decimal(12,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (FeeStructureModel) TableName() string {
	return "fee_structures"
}

// ToDomain converts the persistence model to a domain FeeStructure.
func (m *FeeStructureModel) ToDomain() *finance.FeeStructure {
	return &finance.FeeStructure{
		BaseEntity:     m.BaseModel.ToDomain(),
		ProgramID:      m.ProgramID,
		AcademicYear:   m.AcademicYear,
		TuitionFee:     m.TuitionFee,
		CompulsoryFees: m.CompulsoryFees,
		BoardingFee:    m.BoardingFee,
	}
}
