package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sis/backend/internal/infrastructure/persistence"
)

// HealthHandler reports service liveness and database connectivity
type HealthHandler struct {
	db      *persistence.Database
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{
		db:      db,
		started: time.Now(),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	httpStatus := http.StatusOK

	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			dbStatus = "unreachable"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	} else {
		dbStatus = "not configured"
	}

	c.JSON(httpStatus, gin.H{
		"status":   status,
		"database": dbStatus,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}
