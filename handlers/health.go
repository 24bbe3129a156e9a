package handlers

import (
	"net/http"

	"kympulse/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the last store and Redis check; 503 when either is down.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Store || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": http.StatusText(code), "checks": status})
}
