package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/stzheng716/sharebnb-backend/services"
	"github.com/stzheng716/sharebnb-backend/utils"

	"github.com/gin-gonic/gin"
)

type createMessagePayload struct {
	FromUsername string `json:"from_username" binding:"required"`
	PropertyID   uint   `json:"property_id" binding:"required"`
	Body         string `json:"body" binding:"required"`
}

type MessageController struct {
	Messages *services.MessageService
}

func NewMessageController(messages *services.MessageService) *MessageController {
	return &MessageController{Messages: messages}
}

func (ctrl *MessageController) CreateMessage(c *gin.Context) {
	var payload createMessagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	message, err := ctrl.Messages.Create(services.MessageInput{
		FromUsername: payload.FromUsername,
		PropertyID:   payload.PropertyID,
		Body:         payload.Body,
	})
	if err != nil {
		respondServiceError(c, err, "unknown user or listing")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": message})
}

func (ctrl *MessageController) GetMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "message id must be numeric")
		return
	}

	message, err := ctrl.Messages.Get(uint(id))
	if err != nil {
		respondServiceError(c, err, fmt.Sprintf("No message: %d", id))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}
