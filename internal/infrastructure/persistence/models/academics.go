package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/domain/academics"
)

// StudentModel is the persistence model for the Student aggregate.
// Its primary key equals the owning user's ID.
type StudentModel struct {
	AggregateModel
	StudentNumber    string                     `gorm:"type:varchar(30);not null;uniqueIndex"`
	ProgramID        uuid.UUID                  `gorm:"type:uuid;not null;index"`
	EnrollmentStatus academics.EnrollmentStatus `gorm:"type:varchar(20);not null;default:'admitted';index"`
	AdmissionDate    time.Time                  `gorm:"not null"`
	AcademicYear     string                     `gorm:"type:varchar(10)"`
	CurrentSemester  string                     `gorm:"type:varchar(30)"`
	CurrentYearLevel int                        `gorm:"not null;default:1"`

	DateOfBirth                  string  `gorm:"type:varchar(20)"`
	Gender                       string  `gorm:"type:varchar(20)"`
	Nationality                  string  `gorm:"type:varchar(100)"`
	NationalID                   string  `gorm:"type:varchar(50)"`
	MaritalStatus                string  `gorm:"type:varchar(20)"`
	Religion                     string  `gorm:"type:varchar(100)"`
	Province                     string  `gorm:"type:varchar(100)"`
	District                     string  `gorm:"type:varchar(100)"`
	HomeAddress                  string  `gorm:"type:text"`
	EmergencyContactName         string  `gorm:"type:varchar(200)"`
	EmergencyContactPhone        string  `gorm:"type:varchar(50)"`
	EmergencyContactRelationship string  `gorm:"type:varchar(50)"`
	SecondarySchool              string  `gorm:"type:varchar(200)"`
	Grade12Results               float64 `gorm:"type:decimal(6,2);not null;default:0"`
	NearestAirport               string  `gorm:"type:varchar(100)"`
	ResidentType                 string  `gorm:"type:varchar(20)"`
	Sponsor                      string  `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (StudentModel) TableName() string {
	return "students"
}

// ToDomain converts the persistence model to a domain Student aggregate.
func (m *StudentModel) ToDomain() *academics.Student {
	return &academics.Student{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		StudentNumber:     m.StudentNumber,
		ProgramID:         m.ProgramID,
		EnrollmentStatus:  m.EnrollmentStatus,
		AdmissionDate:     m.AdmissionDate,
		AcademicYear:      m.AcademicYear,
		CurrentSemester:   m.CurrentSemester,
		CurrentYearLevel:  m.CurrentYearLevel,

		DateOfBirth:                  m.DateOfBirth,
		Gender:                       m.Gender,
		Nationality:                  m.Nationality,
		NationalID:                   m.NationalID,
		MaritalStatus:                m.MaritalStatus,
		Religion:                     m.Religion,
		Province:                     m.Province,
		District:                     m.District,
		HomeAddress:                  m.HomeAddress,
		EmergencyContactName:         m.EmergencyContactName,
		EmergencyContactPhone:        m.EmergencyContactPhone,
		EmergencyContactRelationship: m.EmergencyContactRelationship,
		SecondarySchool:              m.SecondarySchool,
		Grade12Results:               m.Grade12Results,
		NearestAirport:               m.NearestAirport,
		ResidentType:                 m.ResidentType,
		Sponsor:                      m.Sponsor,
	}
}

// FromDomain populates the persistence model from a domain Student aggregate.
func (m *StudentModel) FromDomain(s *academics.Student) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.StudentNumber = s.StudentNumber
	m.ProgramID = s.ProgramID
	m.EnrollmentStatus = s.EnrollmentStatus
	m.AdmissionDate = s.AdmissionDate
	m.AcademicYear = s.AcademicYear
	m.CurrentSemester = s.CurrentSemester
	m.CurrentYearLevel = s.CurrentYearLevel

	m.DateOfBirth = s.DateOfBirth
	m.Gender = s.Gender
	m.Nationality = s.Nationality
	m.NationalID = s.NationalID
	m.MaritalStatus = s.MaritalStatus
	m.Religion = s.Religion
	m.Province = s.Province
	m.District = s.District
	m.HomeAddress = s.HomeAddress
	m.EmergencyContactName = s.EmergencyContactName
	m.EmergencyContactPhone = s.EmergencyContactPhone
	m.EmergencyContactRelationship = s.EmergencyContactRelationship
	m.SecondarySchool = s.SecondarySchool
	m.Grade12Results = s.Grade12Results
	m.NearestAirport = s.NearestAirport
	m.ResidentType = s.ResidentType
	m.Sponsor = s.Sponsor
}

// StudentModelFromDomain creates a new persistence model from a domain Student.
func StudentModelFromDomain(s *academics.Student) *StudentModel {
	m := &StudentModel{}
	m.FromDomain(s)
	return m
}

// ProgramModel is the persistence model for the Program reference entity.
type ProgramModel struct {
	BaseModel
	ProgramName  string `gorm:"type:varchar(200);not null"`
	ProgramCode  string `gorm:"type:varchar(20);not null;uniqueIndex"`
	DegreeLevel  string `gorm:"type:varchar(30);not null;default:'undergraduate'"`
	SchoolID     string `gorm:"type:varchar(50)"`
	DepartmentID string `gorm:"type:varchar(50)"`
	DurationYRS  int    `gorm:"column:duration_yrs;not null;default:4"`
	IsActive     bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ProgramModel) TableName() string {
	return "programs"
}

// ToDomain converts the persistence model to a domain Program entity.
func (m *ProgramModel) ToDomain() *academics.Program {
	return &academics.Program{
		BaseEntity:   m.BaseModel.ToDomain(),
		ProgramName:  m.ProgramName,
		ProgramCode:  m.ProgramCode,
		DegreeLevel:  m.DegreeLevel,
		SchoolID:     m.SchoolID,
		DepartmentID: m.DepartmentID,
		DurationYRS:  m.DurationYRS,
		IsActive:     m.IsActive,
	}
}

// CourseModel is the persistence model for the Course reference entity.
type CourseModel struct {
	BaseModel
	CourseCode    string `gorm:"type:varchar(20);not null;uniqueIndex"`
	CourseName    string `gorm:"type:varchar(200);not null"`
	Credits       int    `gorm:"not null;default:3"`
	Capacity      int    `gorm:"not null;default:0"`
	EnrolledCount int    `gorm:"not null;default:0"`
	Semester      string `gorm:"type:varchar(30)"`
}

// TableName returns the table name for GORM
func (CourseModel) TableName() string {
	return "courses"
}

// ToDomain converts the persistence model to a domain Course entity.
func (m *CourseModel) ToDomain() *academics.Course {
	return &academics.Course{
		BaseEntity:    m.BaseModel.ToDomain(),
		CourseCode:    m.CourseCode,
		CourseName:    m.CourseName,
		Credits:       m.Credits,
		Capacity:      m.Capacity,
		EnrolledCount: m.EnrolledCount,
		Semester:      m.Semester,
	}
}

// SemesterEnrollmentModel is the persistence model for semester enrollments.
type SemesterEnrollmentModel struct {
	AggregateModel
	StudentID        uuid.UUID                          `gorm:"type:uuid;not null;index:idx_semester_enrollment_period"`
	AcademicYear     string                             `gorm:"type:varchar(10);not null;index:idx_semester_enrollment_period"`
	Semester         string                             `gorm:"type:varchar(30);not null;index:idx_semester_enrollment_period"`
	ProgramCode      string                             `gorm:"type:varchar(20)"`
	Level            int                                `gorm:"not null;default:1"`
	AmountPaid       string                             `gorm:"type:decimal(12,2);not null;default:0"`
	ReceiptNumber    string                             `gorm:"type:varchar(30)"`
	LibraryNumber    string                             `gorm:"type:varchar(30)"`
	MealNumber       string                             `gorm:"type:varchar(30)"`
	Dormitory        string                             `gorm:"type:varchar(100)"`
	RoomNumber       string                             `gorm:"type:varchar(30)"`
	DeclarationAgree bool                               `gorm:"not null;default:false"`
	Signature        string                             `gorm:"type:varchar(200)"`
	Witness          string                             `gorm:"type:varchar(200)"`
	RegistrationDate time.Time                          `gorm:"not null"`
	Status           academics.SemesterEnrollmentStatus `gorm:"type:varchar(20);not null;default:'pending_approval'"`
}

// TableName returns the table name for GORM
func (SemesterEnrollmentModel) TableName() string {
	return "semester_enrollments"
}

// ToDomain converts the persistence model to a domain SemesterEnrollment.
func (m *SemesterEnrollmentModel) ToDomain() *academics.SemesterEnrollment {
	return &academics.SemesterEnrollment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		StudentID:         m.StudentID,
		AcademicYear:      m.AcademicYear,
		Semester:          m.Semester,
		ProgramCode:       m.ProgramCode,
		Level:             m.Level,
		AmountPaid:        parseDecimalString(m.AmountPaid),
		ReceiptNumber:     m.ReceiptNumber,
		LibraryNumber:     m.LibraryNumber,
		MealNumber:        m.MealNumber,
		Dormitory:         m.Dormitory,
		RoomNumber:        m.RoomNumber,
		DeclarationAgree:  m.DeclarationAgree,
		Signature:         m.Signature,
		Witness:           m.Witness,
		RegistrationDate:  m.RegistrationDate,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain SemesterEnrollment.
func (m *SemesterEnrollmentModel) FromDomain(e *academics.SemesterEnrollment) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.StudentID = e.StudentID
	m.AcademicYear = e.AcademicYear
	m.Semester = e.Semester
	m.ProgramCode = e.ProgramCode
	m.Level = e.Level
	m.AmountPaid = formatDecimalString(e.AmountPaid)
	m.ReceiptNumber = e.ReceiptNumber
	m.LibraryNumber = e.LibraryNumber
	m.MealNumber = e.MealNumber
	m.Dormitory = e.Dormitory
	m.RoomNumber = e.RoomNumber
	m.DeclarationAgree = e.DeclarationAgree
	m.Signature = e.Signature
	m.Witness = e.Witness
	m.RegistrationDate = e.RegistrationDate
	m.Status = e.Status
}

// SemesterEnrollmentModelFromDomain creates a new persistence model from a
// domain SemesterEnrollment.
func SemesterEnrollmentModelFromDomain(e *academics.SemesterEnrollment) *SemesterEnrollmentModel {
	m := &SemesterEnrollmentModel{}
	m.FromDomain(e)
	return m
}

// CourseEnrollmentModel is the persistence model for course enrollment rows.
type CourseEnrollmentModel struct {
	BaseModel
	StudentID    uuid.UUID                        `gorm:"type:uuid;not null;uniqueIndex:idx_course_enrollment_once,priority:1"`
	CourseID     uuid.UUID                        `gorm:"type:uuid;not null;uniqueIndex:idx_course_enrollment_once,priority:2"`
	AcademicYear string                           `gorm:"type:varchar(10);not null;uniqueIndex:idx_course_enrollment_once,priority:3"`
	Semester     string                           `gorm:"type:varchar(30);not null;uniqueIndex:idx_course_enrollment_once,priority:4"`
	Status       academics.CourseEnrollmentStatus `gorm:"type:varchar(20);not null;default:'pending_advisor'"`
	EnrolledBy   uuid.UUID                        `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (CourseEnrollmentModel) TableName() string {
	return "course_enrollments"
}

// ToDomain converts the persistence model to a domain CourseEnrollment.
func (m *CourseEnrollmentModel) ToDomain() *academics.CourseEnrollment {
	return &academics.CourseEnrollment{
		BaseEntity:   m.BaseModel.ToDomain(),
		StudentID:    m.StudentID,
		CourseID:     m.CourseID,
		AcademicYear: m.AcademicYear,
		Semester:     m.Semester,
		Status:       m.Status,
		EnrolledBy:   m.EnrolledBy,
	}
}

// FromDomain populates the persistence model from a domain CourseEnrollment.
func (m *CourseEnrollmentModel) FromDomain(e *academics.CourseEnrollment) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.StudentID = e.StudentID
	m.CourseID = e.CourseID
	m.AcademicYear = e.AcademicYear
	m.Semester = e.Semester
	m.Status = e.Status
	m.EnrolledBy = e.EnrolledBy
}
