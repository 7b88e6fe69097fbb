package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sis/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-that-is-long-enough",
		TokenExpiration: expiration,
		Issuer:          "sis-backend-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(userID, "student@example.com", "student")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Value)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	claims, err := svc.Validate(token.Value)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "sis-backend-test", claims.Issuer)

	parsed, err := claims.UserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.Generate(uuid.New(), "x@example.com", "student")
	require.NoError(t, err)

	_, err = svc.Validate(token.Value)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc := newTestService(time.Hour)
	other := NewJWTService(config.JWTConfig{
		Secret:          "a-different-secret-key-entirely!!",
		TokenExpiration: time.Hour,
		Issuer:          "sis-backend-test",
	})

	token, err := svc.Generate(uuid.New(), "x@example.com", "student")
	require.NoError(t, err)

	_, err = other.Validate(token.Value)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := newTestService(time.Hour)

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
