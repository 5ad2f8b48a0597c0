package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/talenttrek/backend/internal/domain/identity"
	"github.com/talenttrek/backend/internal/domain/shared"
)

// ProfileService handles profile reads and updates
type ProfileService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo identity.UserRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// UpdateProfile applies the non-nil fields of the input to the user's
// profile. Role and email are immutable after registration.
func (s *ProfileService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if input.FullName != nil {
		if err := user.SetFullName(*input.FullName); err != nil {
			return nil, err
		}
	}
	if input.Phone != nil {
		if err := user.SetPhone(*input.Phone); err != nil {
			return nil, err
		}
	}
	if input.LinkedIn != nil {
		if err := user.SetLinkedIn(*input.LinkedIn); err != nil {
			return nil, err
		}
	}
	if input.ProfilePhotoURL != nil {
		if err := user.SetProfilePhotoURL(*input.ProfilePhotoURL); err != nil {
			return nil, err
		}
	}
	if input.ResumeURL != nil {
		if err := user.SetResumeURL(*input.ResumeURL); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	s.logger.Info("Profile updated", zap.String("user_id", user.ID.String()))

	info := NewUserInfo(user)
	return &info, nil
}

// ChangePassword verifies the old password and sets a new one
func (s *ProfileService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return shared.NewDomainError("USER_NOT_FOUND", "User not found")
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))
	return nil
}
