package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"item-api/pkg/log"
	"item-api/pkg/metrics"
	"item-api/pkg/tracing"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	// Middleware
	allowedOrigins  []string
	rateLimitPerMin int

	// Observability
	metrics *metrics.Manager
	tracing *tracing.Provider
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	AllowedOrigins []string
	// RateLimitPerMin <= 0 disables rate limiting.
	RateLimitPerMin int

	// Metrics and Tracing are optional.
	Metrics *metrics.Manager
	Tracing *tracing.Provider
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		readTimeout:     cfg.ReadTimeout,
		writeTimeout:    cfg.WriteTimeout,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,
		rateLimitPerMin: cfg.RateLimitPerMin,
		metrics:         cfg.Metrics,
		tracing:         cfg.Tracing,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
