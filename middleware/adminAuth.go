package middleware

import (
	"net/http"
	"strings"

	"kympulse/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminTokenMiddleware guards the migration endpoints with a bearer token checked
// against a bcrypt hash. An empty hash disables the check. Preflight requests pass
// through so CORS can answer them.
func AdminTokenMiddleware(tokenHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenHash == "" || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		if err := bcrypt.CompareHashAndPassword([]byte(tokenHash), []byte(tokenString)); err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized admin access")
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
