package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sis/backend/internal/domain/academics"
)

// ProgramHandler handles program catalogue endpoints
type ProgramHandler struct {
	BaseHandler
	programs academics.ProgramRepository
}

// NewProgramHandler creates a new ProgramHandler
func NewProgramHandler(programs academics.ProgramRepository) *ProgramHandler {
	return &ProgramHandler{
		programs: programs,
	}
}

// List handles GET /programs
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.programs.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, programs)
}

// Get handles GET /programs/:id
func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid program ID")
		return
	}

	program, err := h.programs.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, program)
}
