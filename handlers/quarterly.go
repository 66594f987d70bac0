package handlers

import (
	"net/http"
	"time"

	"github.com/iternative/CTO-Lunches/services"
	"github.com/iternative/CTO-Lunches/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/send-quarterly-rsvp — aggregate the rolling quarter and deliver
// it to the automation endpoint. Unlike the other webhook triggers, this
// endpoint exists only to deliver, so a failed delivery is reported.
func SendQuarterlyRSVP(c *gin.Context) {
	ok, err := services.SendQuarterlyReport(time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Webhook delivery failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
