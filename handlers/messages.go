package handlers

import (
	"net/http"

	"github.com/iternative/CTO-Lunches/config"
	"github.com/iternative/CTO-Lunches/database"
	"github.com/iternative/CTO-Lunches/models"
	"github.com/iternative/CTO-Lunches/services"
	"github.com/iternative/CTO-Lunches/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/messages — append-only contact form; fires the contact webhook.
func CreateMessage(c *gin.Context) {
	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	message := models.Message{
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	services.PostWebhook(config.AppConfig.ContactWebhookURL, gin.H{
		"type":    "contact_message",
		"message": message,
	})

	c.JSON(http.StatusOK, message)
}

// GET /api/messages — newest first.
func GetMessages(c *gin.Context) {
	messages := []models.Message{}
	if err := database.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, messages)
}
