package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// APIKey pulls the vision-model API key off the request and
// attaches it to the context. It never rejects: the extract
// service falls back to the session's remembered key or the
// env default, and decides whether a key is actually missing.
func APIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")

		if key == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				key = parts[1]
			}
		}

		if key != "" {
			c.Set("apiKey", key)
		}
		c.Next()
	}
}
