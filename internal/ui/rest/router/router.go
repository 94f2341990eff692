// internal/ui/rest/router/router.go
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/internal/domain"
	"github.com/khedhrije/kingdom-dashboard/internal/ui/rest/handlers"
	"github.com/khedhrije/kingdom-dashboard/internal/ui/rest/middleware"
	"github.com/khedhrije/kingdom-dashboard/pkg/metrics"
	"github.com/khedhrije/kingdom-dashboard/pkg/monitoring"
)

// Dependencies are the collaborators the route registrars hand to handlers.
type Dependencies struct {
	Checks   monitoring.Handler
	Kingdoms domain.KingdomReader
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	Page     handlers.PageOptions
}

type Options struct {
	TrustedProxies []string
}

// CreateRouter builds the Gin engine and delegates route registration
// to the technical, functional, and frontend registrars.
func CreateRouter(deps Dependencies, opts ...Options) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	r := gin.New()
	// Recovery sits innermost so a panic's 500 is still logged and counted
	r.Use(middleware.RequestID(), middleware.Logger(deps.Logger), middleware.Metrics(deps.Metrics), gin.Recovery())

	// nil trusts no proxy; ClientIP then reports the socket peer
	var proxies []string
	if len(opts) > 0 {
		proxies = opts[0].TrustedProxies
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		return nil, err
	}

	// Group all backend routes under /api
	api := r.Group("/api")

	RegisterTechnicalRoutes(r, api, deps.Checks, deps.Metrics)
	RegisterFunctionalRoutes(api, deps.Kingdoms, deps.Logger)
	if err := RegisterFrontendRoutes(r, deps.Page); err != nil {
		return nil, err
	}

	return r, nil
}
