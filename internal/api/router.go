package api

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/accounthub/account-system/internal/api/handler"
	"github.com/accounthub/account-system/internal/api/metrics"
	"github.com/accounthub/account-system/internal/api/middleware"
	"github.com/accounthub/account-system/internal/auth"
	"github.com/accounthub/account-system/internal/rpc"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Protected routes run the auth gate before validated extraction before the
// handler's backend call; nothing reorders across those stages.
func NewRouter(backend *rpc.Factory, tokens *auth.TokenManager, log zerolog.Logger, allowedOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if len(allowedOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: allowedOrigins,
		}))
	}
	e.Use(observeDuration)

	// --- Dependencies ---
	userHandler := handler.NewUserHandler(backend, log)
	authGate := middleware.Auth(tokens)

	// --- User routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/user/register", userHandler.Register)
	v1.POST("/user/login", userHandler.Login)
	v1.GET("/user/profile", userHandler.Profile, authGate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(backend)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// observeDuration feeds the request latency histogram per route.
func observeDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		metrics.RequestDuration.
			WithLabelValues(c.Request().Method, c.Path()).
			Observe(time.Since(start).Seconds())
		return err
	}
}
