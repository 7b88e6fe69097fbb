package identity

import (
	"context"
	"strings"
	"time"

	"github.com/sis/backend/internal/domain/identity"
	"github.com/sis/backend/internal/domain/shared"
	"github.com/sis/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// LoginInput carries login credentials
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
}

// AuthService handles authentication
type AuthService struct {
	users      identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(users identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, jwtService: jwtService, logger: logger}
}

// Login authenticates a user by email and password and returns a token.
// Failed lookups and bad passwords produce the same error so the response
// does not reveal which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("login attempt for unknown email", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}
	if !user.IsActive {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}
	if !user.CheckPassword(input.Password) {
		s.logger.Warn("invalid password attempt", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, err := s.jwtService.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_ERROR", "Failed to issue token")
	}

	user.RecordLogin(time.Now())
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Warn("failed to record login time", zap.Error(err))
	}

	return &LoginResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		UserID:    user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName(),
		Role:      string(user.Role),
	}, nil
}
