package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/talenttrek/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user
type UserStatus string

const (
	UserStatusActive UserStatus = "active" // Normal active status
	UserStatusLocked UserStatus = "locked" // Locked due to failed attempts/security
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents an account on the platform. It is the aggregate root
// for identity operations. The profile fields (full name, phone,
// LinkedIn, photo, resume) are what recruiters and students see of each
// other.
type User struct {
	shared.BaseAggregateRoot
	Email           string
	PasswordHash    string
	Role            Role
	FullName        string
	Phone           string
	LinkedIn        string
	ProfilePhotoURL string
	ResumeURL       string
	Status          UserStatus
	LastLoginAt     *time.Time
	FailedAttempts  int
	LockedUntil     *time.Time
}

// NewUser creates a new user with the required fields. Students must
// provide a resume URL at sign-up; recruiters must not be asked for one.
func NewUser(email, password string, role Role, fullName string) (*User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Role must be either student or recruiter")
	}
	if err := validateFullName(fullName); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             strings.ToLower(strings.TrimSpace(email)),
		PasswordHash:      passwordHash,
		Role:              role,
		FullName:          strings.TrimSpace(fullName),
		Status:            UserStatusActive,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// SetFullName sets the user's full name
func (u *User) SetFullName(fullName string) error {
	if err := validateFullName(fullName); err != nil {
		return err
	}

	u.FullName = strings.TrimSpace(fullName)
	u.Touch()
	u.IncrementVersion()

	return nil
}

// SetPhone sets the user's phone number
func (u *User) SetPhone(phone string) error {
	if phone != "" && len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	u.Phone = strings.TrimSpace(phone)
	u.Touch()
	u.IncrementVersion()

	return nil
}

// SetLinkedIn sets the user's LinkedIn profile URL
func (u *User) SetLinkedIn(linkedin string) error {
	if linkedin != "" && len(linkedin) > 500 {
		return shared.NewDomainError("INVALID_LINKEDIN", "LinkedIn URL cannot exceed 500 characters")
	}

	u.LinkedIn = strings.TrimSpace(linkedin)
	u.Touch()
	u.IncrementVersion()

	return nil
}

// SetProfilePhotoURL sets the user's profile photo URL. An empty string
// clears the photo.
func (u *User) SetProfilePhotoURL(url string) error {
	if url != "" && len(url) > 1000 {
		return shared.NewDomainError("INVALID_PHOTO_URL", "Photo URL cannot exceed 1000 characters")
	}

	u.ProfilePhotoURL = url
	u.Touch()
	u.IncrementVersion()

	return nil
}

// SetResumeURL sets the user's resume URL
func (u *User) SetResumeURL(url string) error {
	if url != "" && len(url) > 1000 {
		return shared.NewDomainError("INVALID_RESUME_URL", "Resume URL cannot exceed 1000 characters")
	}

	u.ResumeURL = url
	u.Touch()
	u.IncrementVersion()

	return nil
}

// ChangePassword changes the user's password
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	// Verify old password
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without checking the old one
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.Touch()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserPasswordChangedEvent(u))

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Lock locks the user account
func (u *User) Lock(duration time.Duration) {
	u.Status = UserStatusLocked
	if duration > 0 {
		lockedUntil := time.Now().Add(duration)
		u.LockedUntil = &lockedUntil
	}
	u.Touch()
	u.IncrementVersion()
}

// Unlock unlocks the user account
func (u *User) Unlock() error {
	if u.Status != UserStatusLocked {
		return shared.NewDomainError("NOT_LOCKED", "User is not locked")
	}

	u.Status = UserStatusActive
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.Touch()
	u.IncrementVersion()

	return nil
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess() {
	now := time.Now()
	u.LastLoginAt = &now
	u.FailedAttempts = 0
	u.Touch()
	u.IncrementVersion()
}

// RecordLoginFailure records a failed login attempt
// Returns true if the account was locked as a result
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.Touch()
	u.IncrementVersion()

	if u.FailedAttempts >= maxAttempts {
		u.Lock(lockDuration)
		return true
	}

	return false
}

// IsLocked returns true if the user is locked and the lock has not expired
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}

	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}

	return true
}

// CanLogin returns true if the user can login
func (u *User) CanLogin() bool {
	return !u.IsLocked()
}

// IsStudent returns true if the user has the student role
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// IsRecruiter returns true if the user has the recruiter role
func (u *User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}

// Validation functions

func validateFullName(fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	// Check for at least one letter and one number
	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	// Basic email validation
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
