package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/talenttrek/backend/internal/domain/identity"
)

// SignUpInput contains the input for account registration
type SignUpInput struct {
	Email     string
	Password  string
	Role      string
	FullName  string
	Phone     string
	LinkedIn  string
	ResumeURL string
}

// SignInInput contains the input for user sign-in
type SignInInput struct {
	Email    string
	Password string
}

// AuthResult contains tokens plus the authenticated user's profile
type AuthResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains the user profile exposed to clients
type UserInfo struct {
	ID              uuid.UUID
	Email           string
	Role            identity.Role
	FullName        string
	Phone           string
	LinkedIn        string
	ProfilePhotoURL string
	ResumeURL       string
	CreatedAt       time.Time
}

// NewUserInfo maps a domain user to its client representation
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role,
		FullName:        user.FullName,
		Phone:           user.Phone,
		LinkedIn:        user.LinkedIn,
		ProfilePhotoURL: user.ProfilePhotoURL,
		ResumeURL:       user.ResumeURL,
		CreatedAt:       user.CreatedAt,
	}
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the result of a token refresh
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// SignOutInput contains the input for sign-out
type SignOutInput struct {
	UserID uuid.UUID

	// TokenJTI and TokenTTL identify the access token being revoked
	TokenJTI string
	TokenTTL time.Duration

	// AllSessions revokes every token issued to the user so far
	AllSessions bool
}

// UpdateProfileInput contains the input for a profile update.
// Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	FullName        *string
	Phone           *string
	LinkedIn        *string
	ProfilePhotoURL *string
	ResumeURL       *string
}

// ChangePasswordInput contains the input for password change
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}
