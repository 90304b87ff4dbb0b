// controllers/template.go
package controllers

import (
	"errors"
	"net/http"

	"spalounge-backend/config"
	"spalounge-backend/models"
	"spalounge-backend/services"
	"spalounge-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTemplateInput defines the expected JSON structure
type CreateTemplateInput struct {
	Type          string `json:"type" binding:"required,oneof=booking_reminder treatment_update promotional_offer"`
	TriggerOffset string `json:"triggerOffset"`
	Title         string `json:"title"`
	Body          string `json:"body" binding:"required"`
}

// UpdateTemplateInput defines the expected JSON structure
type UpdateTemplateInput struct {
	TriggerOffset *string `json:"triggerOffset"`
	Title         *string `json:"title"`
	Body          *string `json:"body"`
	IsActive      *bool   `json:"isActive"`
}

// CreateNotificationTemplate creates a new notification template. Trigger
// offsets are validated here, at edit time, so the sweep never sees an
// offset outside the supported set.
func CreateNotificationTemplate(c *gin.Context) {
	var input CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Type == services.TypeBookingReminder {
		if _, err := services.ParseTriggerOffset(input.TriggerOffset); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Unsupported trigger offset: "+input.TriggerOffset)
			return
		}
	}

	template := models.NotificationTemplate{
		Type:          input.Type,
		TriggerOffset: input.TriggerOffset,
		Title:         input.Title,
		Body:          input.Body,
		IsActive:      true,
	}

	if err := config.DB.Create(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetNotificationTemplates retrieves all notification templates
func GetNotificationTemplates(c *gin.Context) {
	var templates []models.NotificationTemplate
	query := config.DB
	if t := c.Query("type"); t != "" {
		query = query.Where("type = ?", t)
	}
	if err := query.Find(&templates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve templates")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// UpdateNotificationTemplate updates an existing template
func UpdateNotificationTemplate(c *gin.Context) {
	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	var input UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var template models.NotificationTemplate
	if err := config.DB.Where("id = ?", templateUUID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.TriggerOffset != nil {
		if template.Type == services.TypeBookingReminder {
			if _, err := services.ParseTriggerOffset(*input.TriggerOffset); err != nil {
				utils.RespondWithError(c, http.StatusBadRequest, "Unsupported trigger offset: "+*input.TriggerOffset)
				return
			}
		}
		template.TriggerOffset = *input.TriggerOffset
	}
	if input.Title != nil {
		template.Title = *input.Title
	}
	if input.Body != nil {
		template.Body = *input.Body
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update template")
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteNotificationTemplate deletes a template
func DeleteNotificationTemplate(c *gin.Context) {
	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	result := config.DB.Where("id = ?", templateUUID).Delete(&models.NotificationTemplate{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete template")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}
