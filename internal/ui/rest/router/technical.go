// internal/ui/rest/router/technical.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/pkg/metrics"
	"github.com/khedhrije/kingdom-dashboard/pkg/monitoring"
)

// RegisterTechnicalRoutes wires health and diagnostics endpoints under
// the /api group, and the Prometheus scrape endpoint at /metrics.
func RegisterTechnicalRoutes(r *gin.Engine, api *gin.RouterGroup, checksHandler monitoring.Handler, m *metrics.Metrics) {
	// Basic health/info
	api.GET("/livez", checksHandler.Livez())
	api.GET("/readyz", checksHandler.Readyz())
	api.GET("/healthz", checksHandler.Healthz())
	api.GET("/version", checksHandler.Version())

	// Server information
	api.GET("/server", checksHandler.ServerInfo())

	checks := api.Group("/check")
	{
		checks.GET("/database", checksHandler.Check())
		checks.GET("/metrics", checksHandler.Metrics())
	}

	r.GET("/metrics", gin.WrapH(m.Handler()))
}
