package dto

import "net/http"

// Transport-level error codes
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// domainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Unlisted codes fall back to 422 so business rule violations never surface
// as server errors.
var domainErrorHTTPStatus = map[string]int{
	"NOT_FOUND":             http.StatusNotFound,
	"ALREADY_EXISTS":        http.StatusConflict,
	"INVALID_STATE":         http.StatusConflict,
	"VALIDATION":            http.StatusBadRequest,
	"INVALID_INPUT":         http.StatusBadRequest,
	"INVALID_EMAIL":         http.StatusBadRequest,
	"INVALID_PROGRAM":       http.StatusBadRequest,
	"INVALID_AMOUNT":        http.StatusBadRequest,
	"INVALID_INVOICE":       http.StatusBadRequest,
	"INVALID_STUDENT":       http.StatusBadRequest,
	"NO_COURSES":            http.StatusBadRequest,
	"COURSE_NOT_FOUND":      http.StatusNotFound,
	"COURSE_FULL":           http.StatusConflict,
	"CREDITS_BELOW_MINIMUM": http.StatusUnprocessableEntity,
	"CREDITS_ABOVE_MAXIMUM": http.StatusUnprocessableEntity,
	"INVALID_CREDENTIALS":   http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED":   http.StatusForbidden,
	"FORBIDDEN":             http.StatusForbidden,
	"CREATE_FAILED":         http.StatusInternalServerError,
	"UPDATE_FAILED":         http.StatusInternalServerError,
	"RENDER_FAILED":         http.StatusInternalServerError,

	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
