package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS sets permissive CORS headers and answers preflight requests with an empty 200.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		SetCORSHeaders(c)

		if c.Request.Method == http.MethodOptions {
			c.Header("Content-Type", "application/json")
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

// SetCORSHeaders writes the headers CORS adds, for handlers reached outside the middleware chain.
func SetCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
}
