// internal/ui/rest/router/functional.go
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/internal/domain"
	"github.com/khedhrije/kingdom-dashboard/internal/ui/rest/handlers"
)

// RegisterFunctionalRoutes wires the dashboard API under the /api group.
// Keep tech/ops endpoints in technical.go.
func RegisterFunctionalRoutes(api *gin.RouterGroup, kingdoms domain.KingdomReader, log *slog.Logger) {
	api.GET("/", handlers.Ping())
	api.GET("/dashboard", handlers.Dashboard(kingdoms, log))
}
