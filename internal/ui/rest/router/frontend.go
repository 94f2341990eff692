// internal/ui/rest/router/frontend.go
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/internal/ui/rest/handlers"
	"github.com/khedhrije/kingdom-dashboard/internal/ui/web"
)

// RegisterFrontendRoutes mounts the dashboard page and its assets.
// These are NOT under /api.
func RegisterFrontendRoutes(r *gin.Engine, page handlers.PageOptions) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	static, err := web.Static()
	if err != nil {
		return err
	}
	r.StaticFS("/static", static)

	r.GET("/", handlers.Page(page))
	return nil
}
