package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/admission"
)

// ApplicationModel is the persistence model for the Application aggregate.
type ApplicationModel struct {
	AggregateModel
	ApplicationID string                      `gorm:"type:varchar(30);not null;uniqueIndex"`
	Status        admission.ApplicationStatus `gorm:"type:varchar(20);not null;default:'submitted';index"`

	FirstName   string `gorm:"type:varchar(100);not null"`
	LastName    string `gorm:"type:varchar(100);not null"`
	Email       string `gorm:"type:varchar(200);not null;index"`
	Phone       string `gorm:"type:varchar(50)"`
	DateOfBirth string `gorm:"type:varchar(20)"`
	Gender      string `gorm:"type:varchar(20)"`
	Nationality string `gorm:"type:varchar(100)"`
	NationalID  string `gorm:"type:varchar(50)"`

	MaritalStatus string `gorm:"type:varchar(20)"`
	Religion      string `gorm:"type:varchar(100)"`
	Province      string `gorm:"type:varchar(100)"`
	District      string `gorm:"type:varchar(100)"`
	Village       string `gorm:"type:varchar(100)"`
	PostalAddress string `gorm:"type:text"`

	EmergencyContactName         string `gorm:"type:varchar(200)"`
	EmergencyContactPhone        string `gorm:"type:varchar(50)"`
	EmergencyContactRelationship string `gorm:"type:varchar(50)"`

	ProgramID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Grade12School       string    `gorm:"type:varchar(200)"`
	Grade12Year         string    `gorm:"type:varchar(10)"`
	Grade12Marks        float64   `gorm:"type:decimal(6,2);not null;default:0"`
	MatriculationCentre string    `gorm:"type:varchar(200)"`
	NearestAirport      string    `gorm:"type:varchar(100)"`
	ResidentType        string    `gorm:"type:varchar(20)"`
	Sponsor             string    `gorm:"type:varchar(200)"`

	Grade12Certificate string `gorm:"type:text"`
	AcademicTranscript string `gorm:"type:text"`
	NationalIDDocument string `gorm:"type:text"`
	PassportPhoto      string `gorm:"type:text"`

	ApplicationDate    time.Time `gorm:"not null"`
	ApprovedAt         *time.Time
	ApprovedBy         *uuid.UUID `gorm:"type:uuid"`
	RejectedAt         *time.Time
	RejectedBy         *uuid.UUID `gorm:"type:uuid"`
	RejectionReason    string     `gorm:"type:text"`
	GeneratedStudentID string     `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (ApplicationModel) TableName() string {
	return "applications"
}

// ToDomain converts the persistence model to a domain Application aggregate.
func (m *ApplicationModel) ToDomain() *admission.Application {
	return &admission.Application{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ApplicationID:     m.ApplicationID,
		Status:            m.Status,

		FirstName:   m.FirstName,
		LastName:    m.LastName,
		Email:       m.Email,
		Phone:       m.Phone,
		DateOfBirth: m.DateOfBirth,
		Gender:      m.Gender,
		Nationality: m.Nationality,
		NationalID:  m.NationalID,

		MaritalStatus: m.MaritalStatus,
		Religion:      m.Religion,
		Province:      m.Province,
		District:      m.District,
		Village:       m.Village,
		PostalAddress: m.PostalAddress,

		EmergencyContactName:         m.EmergencyContactName,
		EmergencyContactPhone:        m.EmergencyContactPhone,
		EmergencyContactRelationship: m.EmergencyContactRelationship,

		ProgramID:           m.ProgramID,
		Grade12School:       m.Grade12School,
		Grade12Year:         m.Grade12Year,
		Grade12Marks:        m.Grade12Marks,
		MatriculationCentre: m.MatriculationCentre,
		NearestAirport:      m.NearestAirport,
		ResidentType:        m.ResidentType,
		Sponsor:             m.Sponsor,

		Grade12Certificate: m.Grade12Certificate,
		AcademicTranscript: m.AcademicTranscript,
		NationalIDDocument: m.NationalIDDocument,
		PassportPhoto:      m.PassportPhoto,

		ApplicationDate:    m.ApplicationDate,
		ApprovedAt:         m.ApprovedAt,
		ApprovedBy:         m.ApprovedBy,
		RejectedAt:         m.RejectedAt,
		RejectedBy:         m.RejectedBy,
		RejectionReason:    m.RejectionReason,
		GeneratedStudentID: m.GeneratedStudentID,
	}
}

// FromDomain populates the persistence model from a domain Application aggregate.
func (m *ApplicationModel) FromDomain(a *admission.Application) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.ApplicationID = a.ApplicationID
	m.Status = a.Status

	m.FirstName = a.FirstName
	m.LastName = a.LastName
	m.Email = a.Email
	m.Phone = a.Phone
	m.DateOfBirth = a.DateOfBirth
	m.Gender = a.Gender
	m.Nationality = a.Nationality
	m.NationalID = a.NationalID

	m.MaritalStatus = a.MaritalStatus
	m.Religion = a.Religion
	m.Province = a.Province
	m.District = a.District
	m.Village = a.Village
	m.PostalAddress = a.PostalAddress

	m.EmergencyContactName = a.EmergencyContactName
	m.EmergencyContactPhone = a.EmergencyContactPhone
	m.EmergencyContactRelationship = a.EmergencyContactRelationship

	m.ProgramID = a.ProgramID
	m.Grade12School = a.Grade12School
	m.Grade12Year = a.Grade12Year
	m.Grade12Marks = a.Grade12Marks
	m.MatriculationCentre = a.MatriculationCentre
	m.NearestAirport = a.NearestAirport
	m.ResidentType = a.ResidentType
	m.Sponsor = a.Sponsor

	m.Grade12Certificate = a.Grade12Certificate
	m.AcademicTranscript = a.AcademicTranscript
	m.NationalIDDocument = a.NationalIDDocument
	m.PassportPhoto = a.PassportPhoto

	m.ApplicationDate = a.ApplicationDate
	m.ApprovedAt = a.ApprovedAt
	m.ApprovedBy = a.ApprovedBy
	m.RejectedAt = a.RejectedAt
	m.RejectedBy = a.RejectedBy
	m.RejectionReason = a.RejectionReason
	m.GeneratedStudentID = a.GeneratedStudentID
}

// ApplicationModelFromDomain creates a new persistence model from a domain Application.
func ApplicationModelFromDomain(a *admission.Application) *ApplicationModel {
	m := &ApplicationModel{}
	m.FromDomain(a)
	return m
}
