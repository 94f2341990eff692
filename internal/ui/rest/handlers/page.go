package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/internal/ui/web"
)

// PageOptions is the data the landing page template renders.
type PageOptions struct {
	AppName string
	Version string
}

// Page renders the landing page. The engine must have web.Templates()
// installed with SetHTMLTemplate.
func Page(opts PageOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, web.MainTemplate, gin.H{
			"AppName": opts.AppName,
			"Version": opts.Version,
		})
	}
}
