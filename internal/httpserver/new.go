package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resource-api/internal/middleware"
	"resource-api/internal/model"
	"resource-api/pkg/log"
)

// RouteRegistrar mounts one resource's routes under the versioned API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup, mw middleware.Middleware)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	srv         *http.Server
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	mw         middleware.Middleware
	metrics    *middleware.Metrics
	registrars []RouteRegistrar
	readiness  func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	Middleware middleware.Middleware
	Metrics    *middleware.Metrics
	Registrars []RouteRegistrar

	// ReadinessCheck reports whether backing stores are reachable. Nil means always ready.
	ReadinessCheck func(ctx context.Context) error
}

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
)

// New creates a new HTTPServer instance with every route mounted.
func New(cfg Config) (*HTTPServer, error) {
	srv := &HTTPServer{
		l:           cfg.Logger,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		metrics:     cfg.Metrics,
		registrars:  cfg.Registrars,
		readiness:   cfg.ReadinessCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(cfg.Mode)
	srv.gin = gin.New()
	srv.mapHandlers()

	srv.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port <= 0 || srv.port > 65535 {
		return errors.New("port is required")
	}
	for i, r := range srv.registrars {
		if r == nil {
			return fmt.Errorf("registrar %d is nil", i)
		}
	}
	return nil
}

// Handler exposes the router, mainly for httptest.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Start serves until Shutdown is called.
func (srv *HTTPServer) Start() error {
	srv.l.Infof(context.Background(), "HTTP server listening on %s", srv.srv.Addr)
	if err := srv.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpserver.Start: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, bounded by ctx.
func (srv *HTTPServer) Shutdown(ctx context.Context) error {
	srv.l.Infof(ctx, "HTTP server shutting down")
	if err := srv.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("httpserver.Shutdown: %w", err)
	}
	return nil
}
