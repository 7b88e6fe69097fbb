package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var h BaseHandler
	r := gin.New()
	r.GET("/", func(c *gin.Context) { h.HandleError(c, err) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestBaseHandler_HandleError(t *testing.T) {
	t.Run("not found maps to 404", func(t *testing.T) {
		w := performWithError(t, shared.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})

	t.Run("invalid state maps to 409", func(t *testing.T) {
		w := performWithError(t, shared.ErrInvalidState)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unmapped domain code falls back to 422", func(t *testing.T) {
		w := performWithError(t, shared.NewDomainError("DUPLICATE_REGISTRATION", "Course already registered"))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Course already registered")
	})

	t.Run("plain errors become opaque 500s", func(t *testing.T) {
		w := performWithError(t, errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestParseIntQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(rawQuery string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
		return c
	}

	assert.Equal(t, 25, parseIntQuery(get("limit=25"), "limit", 20))
	assert.Equal(t, 20, parseIntQuery(get(""), "limit", 20))
	assert.Equal(t, 20, parseIntQuery(get("limit=abc"), "limit", 20))
	assert.Equal(t, 20, parseIntQuery(get("limit=-5"), "limit", 20))
}
