package models

import (
	"time"

	"github.com/sis/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email        string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	FirstName    string        `gorm:"type:varchar(100);not null"`
	LastName     string        `gorm:"type:varchar(100);not null"`
	Phone        string        `gorm:"type:varchar(50)"`
	Role         identity.Role `gorm:"type:varchar(20);not null;default:'student';index"`
	IsActive     bool          `gorm:"not null;default:true"`
	PasswordHash string        `gorm:"type:varchar(100)"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		Role:              m.Role,
		IsActive:          m.IsActive,
		PasswordHash:      m.PasswordHash,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Phone = u.Phone
	m.Role = u.Role
	m.IsActive = u.IsActive
	m.PasswordHash = u.PasswordHash
	m.LastLoginAt = u.LastLoginAt
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
