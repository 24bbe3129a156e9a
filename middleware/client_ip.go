package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// clientIP keys the rate limiter and the request log. Behind the hosting proxy
// the caller is the first X-Forwarded-For hop; otherwise gin resolves it from
// X-Real-IP or the socket address.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first, _, _ := strings.Cut(xff, ","); strings.TrimSpace(first) != "" {
			return strings.TrimSpace(first)
		}
	}
	return c.ClientIP()
}
