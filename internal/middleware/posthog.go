package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zein-l/Currency-exchange-backend/internal/utils"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks API events with PostHog
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// Get user ID from context (set by auth middleware)
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// Create event name from route path (e.g., "/api/v1/orders" -> "api_v1_orders")
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent is a helper to manually send custom events from handlers when needed
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if posthogClient == nil || !posthogClient.IsInitialized() {
		return
	}

	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	posthogClient.Enqueue(userID, eventName, properties)
}
