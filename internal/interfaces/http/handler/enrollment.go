package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	enrollmentapp "github.com/sis/backend/internal/application/enrollment"
)

// EnrollmentHandler handles semester enrollment and course registration
type EnrollmentHandler struct {
	BaseHandler
	enrollmentService *enrollmentapp.Service
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(enrollmentService *enrollmentapp.Service) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// EnrollSemesterRequest represents a semester enrollment submission
type EnrollSemesterRequest struct {
	StudentID        string  `json:"student_id" binding:"required,uuid"`
	AcademicYear     string  `json:"academic_year" binding:"required,max=10"`
	Semester         string  `json:"semester" binding:"required,max=20"`
	Level            int     `json:"level" binding:"required,gte=1,lte=6"`
	AmountPaid       float64 `json:"amount_paid" binding:"gte=0"`
	ReceiptNumber    string  `json:"receipt_number" binding:"max=50"`
	LibraryNumber    string  `json:"library_number" binding:"max=50"`
	MealNumber       string  `json:"meal_number" binding:"max=50"`
	Dormitory        string  `json:"dormitory" binding:"max=100"`
	RoomNumber       string  `json:"room_number" binding:"max=50"`
	DeclarationAgree bool    `json:"declaration_agree"`
	Signature        string  `json:"signature" binding:"max=200"`
	Witness          string  `json:"witness" binding:"max=200"`
}

// RegisterCoursesRequest represents a course registration submission
type RegisterCoursesRequest struct {
	StudentID    string   `json:"student_id" binding:"required,uuid"`
	CourseIDs    []string `json:"course_ids" binding:"required,min=1,dive,uuid"`
	AcademicYear string   `json:"academic_year" binding:"required,max=10"`
	Semester     string   `json:"semester" binding:"required,max=20"`
}

// EnrollSemester handles POST /enrollments
func (h *EnrollmentHandler) EnrollSemester(c *gin.Context) {
	var req EnrollSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		h.BadRequest(c, "Invalid student ID")
		return
	}

	result, err := h.enrollmentService.EnrollSemester(c.Request.Context(), enrollmentapp.EnrollSemesterRequest{
		StudentID:        studentID,
		AcademicYear:     req.AcademicYear,
		Semester:         req.Semester,
		Level:            req.Level,
		AmountPaid:       req.AmountPaid,
		ReceiptNumber:    req.ReceiptNumber,
		LibraryNumber:    req.LibraryNumber,
		MealNumber:       req.MealNumber,
		Dormitory:        req.Dormitory,
		RoomNumber:       req.RoomNumber,
		DeclarationAgree: req.DeclarationAgree,
		Signature:        req.Signature,
		Witness:          req.Witness,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// RegisterCourses handles POST /course-registrations
func (h *EnrollmentHandler) RegisterCourses(c *gin.Context) {
	var req RegisterCoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		h.BadRequest(c, "Invalid student ID")
		return
	}

	courseIDs := make([]uuid.UUID, 0, len(req.CourseIDs))
	for _, raw := range req.CourseIDs {
		courseID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid course ID: "+raw)
			return
		}
		courseIDs = append(courseIDs, courseID)
	}

	registeredBy, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Registrar identity is required")
		return
	}

	result, err := h.enrollmentService.RegisterCourses(c.Request.Context(), enrollmentapp.RegisterCoursesRequest{
		StudentID:    studentID,
		CourseIDs:    courseIDs,
		AcademicYear: req.AcademicYear,
		Semester:     req.Semester,
		RegisteredBy: registeredBy,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}
