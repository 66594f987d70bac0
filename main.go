package main

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/iternative/CTO-Lunches/config"
	"github.com/iternative/CTO-Lunches/database"
	"github.com/iternative/CTO-Lunches/handlers"
	"github.com/iternative/CTO-Lunches/middleware"
	"github.com/iternative/CTO-Lunches/services"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load configuration
	config.Load()

	// Connect to database (waits for it to come up, fatal after the retry budget)
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	handlers.RegisterAPIRoutes(r)

	// Static pages: end-user page at /, admin page at the configured path,
	// everything else in STATIC_DIR served as-is.
	staticDir := config.AppConfig.StaticDir
	r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	r.GET(config.AppConfig.AdminPath, func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "admin.html"))
	})
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))

	// Optional scheduled quarterly report; the manual
	// POST /api/send-quarterly-rsvp trigger always works.
	if spec := config.AppConfig.QuarterlyCron; spec != "" {
		c := cron.New()
		if _, err := c.AddFunc(spec, func() {
			if _, err := services.SendQuarterlyReport(time.Now()); err != nil {
				log.Printf("❌ Scheduled quarterly report failed: %v", err)
			}
		}); err != nil {
			log.Fatal("Invalid QUARTERLY_CRON:", err)
		}
		c.Start()
		log.Printf("⏰ Quarterly report scheduled: %s", spec)
	}

	// Start server
	port := config.AppConfig.Port
	addr := "0.0.0.0:" + port
	log.Printf("🚀 %s server running on port %s", config.AppConfig.AppName, port)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
