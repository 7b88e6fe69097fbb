package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sis/backend/internal/infrastructure/auth"
	"github.com/sis/backend/internal/interfaces/http/dto"
)

// Context keys for JWT claims
const (
	ContextKeyClaims = "jwt_claims"
	ContextKeyUserID = "jwt_user_id"
	ContextKeyRole   = "jwt_role"
)

// JWTAuth validates the bearer token and stores its claims in the context
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing authorization token"))
			return
		}

		claims, err := jwtService.Validate(token)
		if err != nil {
			message := "Invalid authorization token"
			if errors.Is(err, auth.ErrExpiredToken) {
				message = "Authorization token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireRoles rejects authenticated requests whose role is not in the list
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(ContextKeyRole)
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse("FORBIDDEN", "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetJWTClaims returns the validated claims from the context, or nil
func GetJWTClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// GetJWTUserID returns the authenticated user ID from the context
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(ContextKeyUserID)
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
