package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ====== Public surface ======

type Handler interface {
	// Basic
	Livez() gin.HandlerFunc
	Readyz() gin.HandlerFunc
	Healthz() gin.HandlerFunc
	Version() gin.HandlerFunc
	ServerInfo() gin.HandlerFunc

	// Checks
	Check() gin.HandlerFunc   // database
	Metrics() gin.HandlerFunc // runtime metrics
}

// Options carries build info and how to reach the database.
type Options struct {
	AppName   string
	Env       string
	Version   string
	Revision  string
	BuiltAt   string
	StartTime time.Time

	// Database runs the lookup path's own query when credentials are known.
	// When nil, only TCP reachability of DatabaseAddr is checked.
	Database     Pinger
	DatabaseAddr string
}

// New constructs a Handler with the provided options.
func New(opts Options) Handler {
	if opts.StartTime.IsZero() {
		opts.StartTime = time.Now()
	}
	return &handler{opts: opts}
}

// ====== Implementation ======

type handler struct {
	opts Options
}

const (
	queryCheckTimeout = 2500 * time.Millisecond
	tcpCheckTimeout = 1500 * time.Millisecond
)

// run executes fn with a timeout and writes the shared JSON envelope.
func (h *handler) run(c *gin.Context, name string, timeout time.Duration, fn func(ctx context.Context) (Detail, error)) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	detail, err := fn(ctx)
	lat := time.Since(start).Milliseconds()

	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "error",
			"name":      name,
			"latencyMs": lat,
			"error":     err.Error(),
			"detail":    detail,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"name":      name,
		"latencyMs": lat,
		"detail":    detail,
	})
}

func (h *handler) checkTimeout() time.Duration {
	if h.opts.Database != nil {
		return queryCheckTimeout
	}
	return tcpCheckTimeout
}

func (h *handler) checkDatabase(ctx context.Context) (Detail, error) {
	if h.opts.Database != nil {
		return DatabaseByPinger(ctx, h.opts.Database)
	}
	return DatabaseByTCP(ctx, h.opts.DatabaseAddr)
}

// --- basic health/info ---

func (h *handler) Livez() gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(http.StatusOK) }
}

// Readyz is ready only when the database answers.
func (h *handler) Readyz() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.checkTimeout())
		defer cancel()

		if _, err := h.checkDatabase(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"checks": gin.H{"database": err.Error()},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"checks": gin.H{"database": "ok"},
		})
	}
}

func (h *handler) Healthz() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"version":  h.opts.Version,
			"revision": h.opts.Revision,
			"builtAt":  h.opts.BuiltAt,
		})
	}
}

func (h *handler) Version() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		_ = json.NewEncoder(c.Writer).Encode(gin.H{
			"version":  h.opts.Version,
			"revision": h.opts.Revision,
			"builtAt":  h.opts.BuiltAt,
		})
	}
}

func (h *handler) ServerInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "server-info", 800*time.Millisecond, func(ctx context.Context) (Detail, error) {
			return ServerInformation(ctx, ServerInfoOptions{
				AppName:   h.opts.AppName,
				Env:       h.opts.Env,
				Version:   h.opts.Version,
				Revision:  h.opts.Revision,
				BuiltAt:   h.opts.BuiltAt,
				StartTime: h.opts.StartTime,
			})
		})
	}
}

// --- /api/check/database ---

func (h *handler) Check() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "database", h.checkTimeout(), h.checkDatabase)
	}
}

// --- /api/check/metrics ---

func (h *handler) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.run(c, "metrics", 800*time.Millisecond, Metrics)
	}
}
