package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AllowAllOriginsMiddleware lets browsers read the public json api from any origin
func AllowAllOriginsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
