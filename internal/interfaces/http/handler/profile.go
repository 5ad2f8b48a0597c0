package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/talenttrek/backend/internal/application/identity"
	"github.com/talenttrek/backend/internal/interfaces/http/middleware"
)

// UpdateProfileRequest represents a partial profile update.
// Absent fields are left unchanged.
type UpdateProfileRequest struct {
	FullName        *string `json:"full_name" binding:"omitempty,min=1,max=100"`
	Phone           *string `json:"phone" binding:"omitempty,max=30"`
	LinkedIn        *string `json:"linkedin" binding:"omitempty,max=255"`
	ProfilePhotoURL *string `json:"profile_photo_url" binding:"omitempty,max=512"`
	ResumeURL       *string `json:"resume_url" binding:"omitempty,max=512"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	BaseHandler
	profileService *identityapp.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *identityapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// UpdateProfile applies the provided fields to the user's profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.profileService.UpdateProfile(c.Request.Context(), identityapp.UpdateProfileInput{
		UserID:          userID,
		FullName:        req.FullName,
		Phone:           req.Phone,
		LinkedIn:        req.LinkedIn,
		ProfilePhotoURL: req.ProfilePhotoURL,
		ResumeURL:       req.ResumeURL,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toUserResponse(*info))
}

// ChangePassword verifies the old password and sets a new one
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	err = h.profileService.ChangePassword(c.Request.Context(), identityapp.ChangePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Password changed"})
}
