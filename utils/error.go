package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the failure body of every JSON endpoint.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ErrorHandler turns a panic in a later handler into a 500 with the standard
// error body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Status: "error", Error: fmt.Sprint(rec)})
			}
		}()
		c.Next()
	}
}

// JSONError aborts the request with status and the standard error body.
func JSONError(c *gin.Context, status int, message string) {
	GetLogger().Warn(message,
		zap.Int("status", status),
		zap.String("path", c.Request.URL.Path),
		zap.String("ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(status, ErrorResponse{Status: "error", Error: message})
}
