package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// AnonymousDistinctID is used for events raised by visitors.
const AnonymousDistinctID = "anonymous"

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// PosthogMiddleware tracks successful admin API calls.
func PosthogMiddleware(posthogClient utils.AnalyticsEnqueuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if posthogClient == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		adminID, exists := GetAdminIDFromContext(c)
		if !exists {
			return
		}

		// "/api/v1/countries/:id/enable" -> "api_v1_countries_:id_enable"
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
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(adminID, eventName, props)
	}
}

// PosthogEvent sends a custom event. Visitors are reported as anonymous.
func PosthogEvent(c *gin.Context, posthogClient utils.AnalyticsEnqueuer, eventName string, properties map[string]any) {
	if posthogClient == nil {
		return
	}

	distinctID, exists := GetAdminIDFromContext(c)
	if !exists {
		distinctID = AnonymousDistinctID
	}

	if properties == nil {
		properties = make(map[string]any)
	}
	properties["method"] = c.Request.Method
	properties["path"] = c.Request.URL.Path

	posthogClient.Enqueue(distinctID, eventName, properties)
}
