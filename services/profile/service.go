package profile

import (
	"context"
	"strings"

	"go.uber.org/zap"

	profileRepo "studiobook/database/repository/profile"
	"studiobook/models"
	"studiobook/utils"
)

// DefaultProfileService writes the display name to the identity provider
// first and the profile document second. There is no rollback: when the
// document write fails the identity provider is ahead of the document
// store, and the call fails so the caller can retry. The order is
// deliberate; clients read the document store, so writing it first would
// let a failed identity write hide behind a fresh-looking document.
type DefaultProfileService struct {
	Auth AuthAdmin
	Repo profileRepo.Repository
}

func (s *DefaultProfileService) UpdateProfile(ctx context.Context, uid, displayName string) (*models.UserProfile, error) {
	logger := utils.GetLogger()

	trimmed := strings.TrimSpace(displayName)
	if trimmed == "" {
		return nil, NewProfileError(CodeInvalidArgument, "displayName must be a non-empty string")
	}

	if err := s.Auth.UpdateDisplayName(ctx, uid, trimmed); err != nil {
		logger.Error("Failed to update display name in identity provider",
			zap.String("uid", uid), zap.Error(err))
		return nil, err
	}

	if err := s.Repo.Set(ctx, uid, trimmed); err != nil {
		logger.Error("Identity provider updated but profile document write failed",
			zap.String("uid", uid), zap.Error(err))
		return nil, &ProfileError{Code: CodeInternal, Message: "failed to write profile document", Err: err}
	}

	logger.Debug("User profile updated",
		zap.String("uid", uid), zap.String("displayName", trimmed))
	return &models.UserProfile{UserID: uid, DisplayName: trimmed}, nil
}
