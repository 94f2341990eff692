package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khedhrije/kingdom-dashboard/internal/domain"
	"github.com/khedhrije/kingdom-dashboard/internal/ui/rest/middleware"
)

// Dashboard serves GET /api/dashboard.
//
//	200 {"reino": "...", "monedas": N}
//	404 {"error": "Usuario no encontrado"}
//	500 empty body for connection or query failures
func Dashboard(reader domain.KingdomReader, log *slog.Logger) gin.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(c *gin.Context) {
		rec, err := reader.FindKingdom(c.Request.Context())
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": domain.UserNotFoundMessage})
			return
		}
		if err != nil {
			_ = c.Error(err)
			log.ErrorContext(c.Request.Context(), "dashboard lookup failed",
				slog.String("request_id", c.GetString(middleware.RequestIDKey)),
				slog.Any("error", err),
			)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
