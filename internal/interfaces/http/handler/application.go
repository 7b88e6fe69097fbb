package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	admissionapp "github.com/sis/backend/internal/application/admission"
	admissiondomain "github.com/sis/backend/internal/domain/admission"
)

// ApplicationHandler handles admission application endpoints
type ApplicationHandler struct {
	BaseHandler
	admissionService *admissionapp.Service
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(admissionService *admissionapp.Service) *ApplicationHandler {
	return &ApplicationHandler{
		admissionService: admissionService,
	}
}

// SubmitApplicationRequest represents a new application submission
type SubmitApplicationRequest struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100"`
	Email       string `json:"email" binding:"required,email,max=200"`
	Phone       string `json:"phone" binding:"max=50"`
	DateOfBirth string `json:"date_of_birth" binding:"max=20"`
	Gender      string `json:"gender" binding:"max=20"`
	Nationality string `json:"nationality" binding:"max=100"`
	NationalID  string `json:"national_id" binding:"max=50"`

	MaritalStatus string `json:"marital_status" binding:"max=20"`
	Religion      string `json:"religion" binding:"max=100"`
	Province      string `json:"province" binding:"max=100"`
	District      string `json:"district" binding:"max=100"`
	Village       string `json:"village" binding:"max=100"`
	PostalAddress string `json:"postal_address" binding:"max=500"`

	EmergencyContactName         string `json:"emergency_contact_name" binding:"max=200"`
	EmergencyContactPhone        string `json:"emergency_contact_phone" binding:"max=50"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship" binding:"max=50"`

	ProgramID           string  `json:"program_id" binding:"required,uuid"`
	Grade12School       string  `json:"grade12_school" binding:"max=200"`
	Grade12Year         string  `json:"grade12_year" binding:"max=10"`
	Grade12Marks        float64 `json:"grade12_marks" binding:"gte=0"`
	MatriculationCentre string  `json:"matriculation_centre" binding:"max=200"`
	NearestAirport      string  `json:"nearest_airport" binding:"max=100"`
	ResidentType        string  `json:"resident_type" binding:"omitempty,oneof=boarding day"`
	Sponsor             string  `json:"sponsor" binding:"max=200"`

	Grade12Certificate string `json:"grade12_certificate"`
	AcademicTranscript string `json:"academic_transcript"`
	NationalIDDocument string `json:"national_id_document"`
	PassportPhoto      string `json:"passport_photo"`
}

// RejectApplicationRequest represents a rejection decision
type RejectApplicationRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// Submit handles POST /applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	programID, err := uuid.Parse(req.ProgramID)
	if err != nil {
		h.BadRequest(c, "Invalid program ID")
		return
	}

	result, err := h.admissionService.SubmitApplication(c.Request.Context(), admissionapp.SubmitApplicationRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Nationality: req.Nationality,
		NationalID:  req.NationalID,

		MaritalStatus: req.MaritalStatus,
		Religion:      req.Religion,
		Province:      req.Province,
		District:      req.District,
		Village:       req.Village,
		PostalAddress: req.PostalAddress,

		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,

		ProgramID:           programID,
		Grade12School:       req.Grade12School,
		Grade12Year:         req.Grade12Year,
		Grade12Marks:        req.Grade12Marks,
		MatriculationCentre: req.MatriculationCentre,
		NearestAirport:      req.NearestAirport,
		ResidentType:        req.ResidentType,
		Sponsor:             req.Sponsor,

		Grade12Certificate: req.Grade12Certificate,
		AcademicTranscript: req.AcademicTranscript,
		NationalIDDocument: req.NationalIDDocument,
		PassportPhoto:      req.PassportPhoto,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get handles GET /applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	application, err := h.admissionService.GetApplication(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, application)
}

// List handles GET /applications
func (h *ApplicationHandler) List(c *gin.Context) {
	filter := admissiondomain.ApplicationFilter{
		Status: admissiondomain.ApplicationStatus(c.Query("status")),
		Limit:  parseIntQuery(c, "limit", 20),
		Offset: parseIntQuery(c, "offset", 0),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		h.BadRequest(c, "Invalid status filter")
		return
	}

	applications, total, err := h.admissionService.ListApplications(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, applications, total, filter.Limit, filter.Offset)
}

// Approve handles POST /applications/:id/approve
func (h *ApplicationHandler) Approve(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	approvedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Approver identity is required")
		return
	}

	result, err := h.admissionService.ApproveApplication(c.Request.Context(), id, approvedBy)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Reject handles POST /applications/:id/reject
func (h *ApplicationHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid application ID")
		return
	}

	rejectedBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Reviewer identity is required")
		return
	}

	var req RejectApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.admissionService.RejectApplication(c.Request.Context(), id, req.Reason, rejectedBy); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"status": "rejected"})
}
