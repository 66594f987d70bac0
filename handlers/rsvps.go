package handlers

import (
	"net/http"

	"github.com/iternative/CTO-Lunches/database"
	"github.com/iternative/CTO-Lunches/models"
	"github.com/iternative/CTO-Lunches/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/rsvps/:date — every participant with their status for the date,
// "maybe" when they have not answered.
func GetRSVPsForDate(c *gin.Context) {
	date, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	rows, err := database.RSVPsForDate(database.DB, date)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/rsvps — insert-or-update on (participant_id, event_date).
func UpsertRSVP(c *gin.Context) {
	var req models.UpsertRSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	date, err := utils.ParseDate(req.EventDate)
	if err != nil {
		utils.BadRequest(c, "Invalid event_date, expected YYYY-MM-DD")
		return
	}

	rsvp, err := database.UpsertRSVP(database.DB, req.ParticipantID, date, req.Status)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			utils.BadRequest(c, "Unknown participant")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, rsvp)
}
