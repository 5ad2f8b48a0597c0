package handler

import (
	"time"

	"github.com/google/uuid"

	identityapp "github.com/talenttrek/backend/internal/application/identity"
)

// SignUpRequest represents an account registration request
type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	Role      string `json:"role" binding:"required,oneof=student recruiter"`
	FullName  string `json:"full_name" binding:"required,min=1,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
	LinkedIn  string `json:"linkedin" binding:"omitempty,url,max=255"`
	ResumeURL string `json:"resume_url" binding:"omitempty,url,max=512"`
}

// SignInRequest represents a sign-in request
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// SignOutRequest represents a sign-out request
type SignOutRequest struct {
	AllSessions bool `json:"all_sessions"`
}

// TokenResponse represents the token pair in API responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse represents a user profile in API responses
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone,omitempty"`
	LinkedIn        string    `json:"linkedin,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	ResumeURL       string    `json:"resume_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthResponse represents the sign-up/sign-in response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RefreshTokenResponse represents the token refresh response
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

func toUserResponse(user identityapp.UserInfo) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		Role:            user.Role.String(),
		FullName:        user.FullName,
		Phone:           user.Phone,
		LinkedIn:        user.LinkedIn,
		ProfilePhotoURL: user.ProfilePhotoURL,
		ResumeURL:       user.ResumeURL,
		CreatedAt:       user.CreatedAt,
	}
}

func toAuthResponse(result *identityapp.AuthResult) AuthResponse {
	return AuthResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		User: toUserResponse(result.User),
	}
}
