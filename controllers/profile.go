// controllers/profile.go
package controllers

import (
	"net/http"

	"spalounge-backend/config"
	"spalounge-backend/models"
	"spalounge-backend/utils"

	"github.com/gin-gonic/gin"
)

// UpdatePushTokenInput defines the expected JSON structure
type UpdatePushTokenInput struct {
	PushToken *string `json:"pushToken"`
}

// UpdatePreferencesInput defines the expected JSON structure
type UpdatePreferencesInput struct {
	Preferences map[string]interface{} `json:"preferences" binding:"required"`
}

// UpdatePushToken registers or clears the caller's device push token
func UpdatePushToken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdatePushTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("push_token", input.PushToken).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update push token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Push token updated"})
}

// UpdatePreferences replaces the caller's notification preferences
func UpdatePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input UpdatePreferencesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("preferences", models.JSONB(input.Preferences)).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update preferences")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated"})
}
