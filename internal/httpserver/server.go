// Package httpserver provides the gin server builder and middleware shared
// by the service entrypoints: request ids, request logging, CORS, JWT
// protection, and graceful shutdown.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/profiler/internal/logging"
)

// Default timeout values.
const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 60 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Server wraps an http.Server around a configured gin engine.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
	name       string
}

// ServerBuilder assembles a Server step by step.
type ServerBuilder struct {
	name         string
	version      string
	port         int
	debug        bool
	readTimeout  time.Duration
	writeTimeout time.Duration
	idleTimeout  time.Duration
	logger       logging.Logger
	routes       func(*gin.Engine)
}

// NewServerBuilder starts a builder for the named service on the port.
func NewServerBuilder(name string, port int) *ServerBuilder {
	return &ServerBuilder{
		name:         name,
		port:         port,
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
		idleTimeout:  defaultIdleTimeout,
		logger:       logging.Nop(),
	}
}

// WithLogger sets the request logger.
func (b *ServerBuilder) WithLogger(logger logging.Logger) *ServerBuilder {
	b.logger = logger
	return b
}

// WithDebug toggles gin debug mode.
func (b *ServerBuilder) WithDebug(debug bool) *ServerBuilder {
	b.debug = debug
	return b
}

// WithVersion sets the version reported by the built-in health route.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.version = version
	return b
}

// WithTimeouts overrides the default read/write/idle timeouts.
func (b *ServerBuilder) WithTimeouts(read, write, idle time.Duration) *ServerBuilder {
	b.readTimeout = read
	b.writeTimeout = write
	b.idleTimeout = idle
	return b
}

// WithRoutes registers service routes on the engine after the shared
// middleware and health route are installed.
func (b *ServerBuilder) WithRoutes(routes func(*gin.Engine)) *ServerBuilder {
	b.routes = routes
	return b
}

// Build assembles the server.
func (b *ServerBuilder) Build() *Server {
	if b.debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(Recovery(b.logger))
	router.Use(RequestID())
	router.Use(RequestLogger(b.logger))
	router.Use(CORS())

	name, version := b.name, b.version
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": name,
			"version": version,
		})
	})

	if b.routes != nil {
		b.routes(router)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", b.port),
			Handler:      router,
			ReadTimeout:  b.readTimeout,
			WriteTimeout: b.writeTimeout,
			IdleTimeout:  b.idleTimeout,
		},
		logger: b.logger,
		name:   b.name,
	}
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening",
			logging.String("service", s.name),
			logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	s.logger.Info("http server shutting down", logging.String("service", s.name))
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
