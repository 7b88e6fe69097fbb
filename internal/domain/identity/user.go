package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/sis/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role represents a user's role within the institution
type Role string

const (
	RoleStudent   Role = "student"
	RoleRegistrar Role = "registrar"
	RoleAdmission Role = "admissions"
	RoleFinance   Role = "finance"
	RoleAdmin     Role = "admin"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleRegistrar, RoleAdmission, RoleFinance, RoleAdmin:
		return true
	}
	return false
}

// Password cost for bcrypt
const bcryptCost = 12

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents an account identity. Student accounts are created during
// application approval and map 1:1 to a Student record via shared ID.
type User struct {
	shared.BaseAggregateRoot
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Role         Role
	IsActive     bool
	PasswordHash string
	LastLoginAt  *time.Time
}

// NewUser creates a new active user with the given role
func NewUser(email, firstName, lastName string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		Role:              role,
		IsActive:          true,
	}, nil
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// SetPassword hashes and stores the given password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// CheckPassword verifies a password against the stored hash
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// RecordLogin stores the last successful login time
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = at
}

// Deactivate disables the account
func (u *User) Deactivate() {
	u.IsActive = false
	u.Touch()
}
