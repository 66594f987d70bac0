package handlers

import (
	"net/http"

	"github.com/iternative/CTO-Lunches/config"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes wires the health check and the /api group. main.go adds
// middleware, static pages and the scheduler around this.
func RegisterAPIRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	api := r.Group("/api")
	{
		// Settings
		api.GET("/settings", GetSettings)
		api.PUT("/settings", UpdateSettings)

		// Participants
		api.GET("/participants", GetParticipants)
		api.POST("/participants", CreateParticipant)
		api.DELETE("/participants/:id", DeleteParticipant)

		// RSVPs
		api.GET("/rsvps/:date", GetRSVPsForDate)
		api.POST("/rsvps", UpsertRSVP)

		// Agendas
		api.GET("/agendas/:date", GetAgendasForDate)
		api.POST("/agendas", CreateAgenda)
		api.DELETE("/agendas/:id", DeleteAgenda)

		// Messages
		api.POST("/messages", CreateMessage)
		api.GET("/messages", GetMessages)

		// Calendar export + quarterly report
		api.GET("/ical/:date", GetICal)
		api.POST("/send-quarterly-rsvp", SendQuarterlyRSVP)
	}
}
