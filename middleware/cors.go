package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows all origins, matching the open CORS policy of the
// public RSVP page.
func CORSMiddleware() gin.HandlerFunc {
	return cors.Default()
}
