package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sis/backend/internal/infrastructure/auth"
	"github.com/sis/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters!!",
		TokenExpiration: expiration,
		Issuer:          "sis-test",
	})
}

func newJWTTestRouter(jwtService *auth.JWTService, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{JWTAuth(jwtService)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	userID := uuid.New()

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		token, err := jwtService.Generate(userID, "john@example.com", "registrar")
		require.NoError(t, err)

		r := newJWTTestRouter(jwtService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token.Value)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		r := newJWTTestRouter(jwtService)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Missing authorization token")
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		r := newJWTTestRouter(jwtService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		r := newJWTTestRouter(jwtService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization token")
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := newTestJWTService(-time.Minute)
		token, err := expired.Generate(userID, "john@example.com", "registrar")
		require.NoError(t, err)

		r := newJWTTestRouter(jwtService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token.Value)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})
}

func TestRequireRoles(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)

	issue := func(t *testing.T, role string) string {
		t.Helper()
		token, err := jwtService.Generate(uuid.New(), "user@example.com", role)
		require.NoError(t, err)
		return token.Value
	}

	t.Run("allows listed roles", func(t *testing.T) {
		r := newJWTTestRouter(jwtService, RequireRoles("admissions", "admin"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, "admissions"))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects other roles", func(t *testing.T) {
		r := newJWTTestRouter(jwtService, RequireRoles("admissions", "admin"))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, "student"))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Insufficient permissions")
	})
}
