package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/profiler/internal/config"
	"github.com/jonesrussell/profiler/internal/httpserver"
	"github.com/jonesrussell/profiler/internal/logging"
)

// Default timeout values.
const (
	defaultReadTimeout  = 30 * time.Second
	defaultWriteTimeout = 60 * time.Second
	defaultIdleTimeout  = 120 * time.Second
)

// NewServer builds the profiler HTTP server around the handler.
func NewServer(handler *Handler, cfg *config.Config, metrics http.Handler, logger logging.Logger) *httpserver.Server {
	return httpserver.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(logger).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithTimeouts(defaultReadTimeout, defaultWriteTimeout, defaultIdleTimeout).
		WithRoutes(func(router *gin.Engine) {
			SetupServiceRoutes(router, handler, cfg.Auth.JWTSecret, metrics)
		}).
		Build()
}
