package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	documentapp "github.com/sis/backend/internal/application/document"
)

// DocumentHandler handles on-demand document generation endpoints
type DocumentHandler struct {
	BaseHandler
	documentService *documentapp.Service
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService *documentapp.Service) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// Generate handles GET /documents/:kind/:id. The response body is the PDF
// itself, not the JSON envelope, so the browser can download it directly.
func (h *DocumentHandler) Generate(c *gin.Context) {
	kind := documentapp.Kind(c.Param("kind"))
	if !kind.IsValid() {
		h.BadRequest(c, "Unknown document type")
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid record ID")
		return
	}

	rendered, err := h.documentService.Generate(c.Request.Context(), kind, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+rendered.Filename+`"`)
	c.Data(http.StatusOK, rendered.ContentType, rendered.Data)
}
