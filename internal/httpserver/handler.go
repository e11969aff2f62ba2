package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"item-api/internal/middleware"
	"item-api/internal/model"
	pkgErrors "item-api/pkg/errors"
	"item-api/pkg/log"
	"item-api/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, middleware.Config{
		RateLimitPerMin: srv.rateLimitPerMin,
		Metrics:         srv.metrics,
	})

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	zl := log.Zap(srv.l)

	// Recovery first so every later middleware is covered.
	srv.gin.Use(ginzap.CustomRecoveryWithZap(zl, true, func(c *gin.Context, _ any) {
		response.AbortWithError(c, errPanic)
	}))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(ginzap.GinzapWithConfig(zl, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/health", "/ready", "/live", "/metrics"},
		Context: func(c *gin.Context) []zapcore.Field {
			return []zapcore.Field{zap.String(middleware.RequestIDKey, middleware.GetRequestID(c))}
		},
	}))

	if srv.tracing != nil && srv.tracing.Enabled() {
		srv.gin.Use(otelgin.Middleware(ServiceName, otelgin.WithTracerProvider(srv.tracing.TracerProvider())))
	}

	srv.gin.Use(mw.Metrics())
	srv.gin.Use(srv.corsMiddleware())
	srv.gin.Use(mw.RateLimit())

	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoRoute(func(c *gin.Context) { response.Error(c, pkgErrors.ErrNotFound) })
	srv.gin.NoMethod(func(c *gin.Context) { response.Error(c, pkgErrors.ErrMethodNotAllowed) })
}

func (srv *HTTPServer) corsMiddleware() gin.HandlerFunc {
	ctx := context.Background()

	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	origins := srv.allowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		if srv.environment == string(model.EnvironmentProduction) {
			srv.l.Warnf(ctx, "CORS mode: production with all origins allowed")
		}
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	srv.l.Infof(ctx, "CORS mode: %s, origins: %v", srv.environment, origins)
	return cors.New(cfg)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.root)

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
	srv.gin.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if err := srv.setupItemDomain(ctx, &srv.gin.RouterGroup); err != nil {
		return err
	}

	return nil
}
