package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/firstbreaklabs/steam-intel/internal/logger"
)

// APIKeyHeader is the request header carrying the client's API key
const APIKeyHeader = "X-API-Key"

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string
}

// APIKeyAuth returns a gin middleware validating the X-API-Key header
// against the configured key set. A missing key is rejected with 401,
// a wrong one with 403.
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	apiKeyMap := make(map[string]bool, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	return func(c *gin.Context) {
		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Missing API key",
				},
			})
			return
		}

		if !apiKeyMap[apiKey] {
			logger.Warn("Rejected API key",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "forbidden",
					"message": "Invalid API key",
				},
			})
			return
		}

		c.Next()
	}
}
