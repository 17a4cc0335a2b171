package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS builds the CORS middleware from a comma-separated list of
// allowed domains. "*" allows all origins.
func ConfigCORS(allowedDomains string) gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if allowedDomains == "*" {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = strings.Split(allowedDomains, ",")
	}

	return cors.New(conf)
}
