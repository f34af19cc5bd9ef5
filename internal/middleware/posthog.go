package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const apiWorkplacePrefix = "/api/v1/workplaces/:workplace_id/"

// EventSink receives product analytics events. *utils.PosthogClientWrapper implements it.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

// untrackedPaths serve health checks, not product usage.
var untrackedPaths = map[string]bool{
	"/health":    true,
	"/health/db": true,
}

// PosthogMiddleware records one event per successful authenticated API call, named after the route.
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() || !tracked(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		eventName := routeEventName(c.FullPath())
		if eventName == "" {
			return
		}

		props := requestProperties(c)
		props["status_code"] = c.Writer.Status()
		props["latency_ms"] = time.Since(start).Milliseconds()
		sink.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a custom event from a handler, tagged with the same request properties.
func PosthogEvent(c *gin.Context, sink EventSink, eventName string, properties map[string]any) {
	if sink == nil || !sink.IsInitialized() {
		return
	}
	userID, ok := GetUserIDFromContext(c)
	if !ok {
		return
	}

	props := requestProperties(c)
	for k, v := range properties {
		props[k] = v
	}
	sink.Enqueue(userID, eventName, props)
}

func tracked(path string) bool {
	return !untrackedPaths[path] && !strings.HasPrefix(path, "/swagger")
}

// routeEventName turns "/api/v1/workplaces/:workplace_id/reports/financial.csv" into
// "reports_financial_csv". Path parameters are dropped.
func routeEventName(fullPath string) string {
	trimmed := strings.TrimPrefix(fullPath, apiWorkplacePrefix)
	trimmed = strings.TrimPrefix(trimmed, "/")

	parts := make([]string, 0, 4)
	for _, segment := range strings.Split(trimmed, "/") {
		if segment == "" || strings.HasPrefix(segment, ":") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(segment, ".", "_"))
	}
	return strings.Join(parts, "_")
}

func requestProperties(c *gin.Context) map[string]any {
	props := map[string]any{
		"method": c.Request.Method,
	}
	for _, key := range []string{"workplace_id", "invoice_id", "project_id"} {
		if v := c.Param(key); v != "" {
			props[key] = v
		}
	}
	if timeframe := c.Query("timeframe"); timeframe != "" {
		props["timeframe"] = timeframe
	}
	return props
}
