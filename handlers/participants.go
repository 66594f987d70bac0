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

// GET /api/participants
func GetParticipants(c *gin.Context) {
	participants, err := database.AllParticipants(database.DB)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, participants)
}

// POST /api/participants
//
// The invite webhook is awaited before responding but its outcome never
// fails the request; the participant is already stored.
func CreateParticipant(c *gin.Context) {
	var req models.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	participant := models.Participant{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		InvitedBy: req.InvitedBy,
	}
	if err := database.DB.Create(&participant).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	services.PostWebhook(config.AppConfig.InviteWebhookURL, gin.H{
		"type":        "new_participant",
		"participant": participant,
	})

	c.JSON(http.StatusOK, participant)
}

// DELETE /api/participants/:id — cascades to the participant's RSVPs.
func DeleteParticipant(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid participant ID")
		return
	}

	affected, err := database.DeleteParticipant(database.DB, id)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if affected == 0 {
		utils.NotFound(c, "Participant not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
