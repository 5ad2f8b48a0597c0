package models

import (
	"time"

	"github.com/talenttrek/backend/internal/domain/identity"
	"github.com/talenttrek/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	AggregateModel
	Email           string              `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash    string              `gorm:"type:varchar(255);not null"`
	Role            identity.Role       `gorm:"type:varchar(20);not null;index"`
	FullName        string              `gorm:"type:varchar(200);not null"`
	Phone           string              `gorm:"type:varchar(50)"`
	LinkedIn        string              `gorm:"type:varchar(500)"`
	ProfilePhotoURL string              `gorm:"type:varchar(500)"`
	ResumeURL       string              `gorm:"type:varchar(500)"`
	Status          identity.UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt     *time.Time          `gorm:"index"`
	FailedAttempts  int                 `gorm:"not null;default:0"`
	LockedUntil     *time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
			Version: m.Version,
		},
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Role:            m.Role,
		FullName:        m.FullName,
		Phone:           m.Phone,
		LinkedIn:        m.LinkedIn,
		ProfilePhotoURL: m.ProfilePhotoURL,
		ResumeURL:       m.ResumeURL,
		Status:          m.Status,
		LastLoginAt:     m.LastLoginAt,
		FailedAttempts:  m.FailedAttempts,
		LockedUntil:     m.LockedUntil,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.Role = u.Role
	m.FullName = u.FullName
	m.Phone = u.Phone
	m.LinkedIn = u.LinkedIn
	m.ProfilePhotoURL = u.ProfilePhotoURL
	m.ResumeURL = u.ResumeURL
	m.Status = u.Status
	m.LastLoginAt = u.LastLoginAt
	m.FailedAttempts = u.FailedAttempts
	m.LockedUntil = u.LockedUntil
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
