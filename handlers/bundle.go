// File: kympulse/handlers/bundle.go
package handlers

import (
	"kympulse/metrics"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the settings routes need.
type HandlerBundle struct {
	// Migration endpoints
	MigrateProfessionalsHandler gin.HandlerFunc
	LinkServicesHandler         gin.HandlerFunc
	ResetLinksHandler           gin.HandlerFunc

	// Capture page
	PulsePageHandler gin.HandlerFunc
	SurveyHandler    gin.HandlerFunc

	// Operations
	HealthHandler gin.HandlerFunc
	Metrics       *metrics.Manager

	// Route settings
	AllowedOrigins    []string
	AdminTokenHash    string
	MaxRequestsPerMin int
}
