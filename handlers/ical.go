package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/iternative/CTO-Lunches/database"
	"github.com/iternative/CTO-Lunches/models"
	"github.com/iternative/CTO-Lunches/services"
	"github.com/iternative/CTO-Lunches/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/ical/:date — downloadable calendar invite for one lunch date.
func GetICal(c *gin.Context) {
	dateParam := c.Param("date")
	date, err := utils.ParseDate(dateParam)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var settings models.Settings
	if err := database.DB.First(&settings).Error; err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	body := services.BuildICal(date, settings, time.Now())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=cto-lunch-%s.ics", dateParam))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}
