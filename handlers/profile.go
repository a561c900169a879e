package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studiobook/models"
	"studiobook/services/profile"
	"studiobook/utils"
)

// ProfileHandler exposes the profile-update RPC.
type ProfileHandler struct {
	Service profile.ProfileService
}

func NewProfileHandler(service profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: service}
}

// UpdateUserProfileHandler updates the authenticated caller's display name
// in Firebase Auth and the profile document.
func (h *ProfileHandler) UpdateUserProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID := c.GetString("userID")
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required. Please sign in.", "")
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload", err.Error())
		return
	}
	if req.DisplayName == nil {
		utils.JSONError(c, http.StatusBadRequest, "displayName must be a non-empty string", "")
		return
	}

	if _, err := h.Service.UpdateProfile(c.Request.Context(), userID, *req.DisplayName); err != nil {
		logger.Error("Profile update failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, httpStatusForError(err), "profile update failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User profile updated successfully!",
	})
}
