// controllers/broadcast.go
package controllers

import (
	"context"
	"errors"
	"net/http"

	"spalounge-backend/services"
	"spalounge-backend/utils"

	"github.com/gin-gonic/gin"
)

// BroadcastDispatcher is the slice of the broadcast service the handler
// depends on.
type BroadcastDispatcher interface {
	Broadcast(ctx context.Context, in services.BroadcastInput) (services.BroadcastResult, error)
}

type BroadcastController struct {
	Service BroadcastDispatcher
}

// BroadcastRequest defines the expected JSON structure
type BroadcastRequest struct {
	Title            string `json:"title" binding:"required"`
	Message          string `json:"message" binding:"required"`
	TargetType       string `json:"targetType" binding:"required,oneof=all role user tier"`
	TargetValue      string `json:"targetValue"`
	NotificationType string `json:"notificationType"`
	Channel          string `json:"channel" binding:"omitempty,oneof=push sms"`
}

// SendBroadcast triggers an on-demand notification to a recipient segment
func (bc *BroadcastController) SendBroadcast(c *gin.Context) {
	var input BroadcastRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.TargetType != services.TargetAll && input.TargetValue == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "targetValue is required for this target type")
		return
	}

	result, err := bc.Service.Broadcast(c.Request.Context(), services.BroadcastInput{
		Title:            input.Title,
		Message:          input.Message,
		TargetType:       input.TargetType,
		TargetValue:      input.TargetValue,
		NotificationType: input.NotificationType,
		Channel:          input.Channel,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTarget) {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send broadcast")
		return
	}

	c.JSON(http.StatusOK, result)
}
