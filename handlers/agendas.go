package handlers

import (
	"net/http"

	"github.com/iternative/CTO-Lunches/database"
	"github.com/iternative/CTO-Lunches/models"
	"github.com/iternative/CTO-Lunches/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/agendas/:date
func GetAgendasForDate(c *gin.Context) {
	date, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	agendas, err := database.AgendasForDate(database.DB, date)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, agendas)
}

// POST /api/agendas
func CreateAgenda(c *gin.Context) {
	var req models.CreateAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	date, err := utils.ParseDate(req.EventDate)
	if err != nil {
		utils.BadRequest(c, "Invalid event_date, expected YYYY-MM-DD")
		return
	}

	agenda := models.Agenda{
		EventDate:  date,
		Item:       req.Item,
		ProposedBy: req.ProposedBy,
	}
	if err := database.DB.Create(&agenda).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, agenda)
}

// DELETE /api/agendas/:id
func DeleteAgenda(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid agenda ID")
		return
	}

	affected, err := database.DeleteAgenda(database.DB, id)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if affected == 0 {
		utils.NotFound(c, "Agenda item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
