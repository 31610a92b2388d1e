package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/api/handler"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/api/middleware"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/domain"
	"github.com/InnocentBoy-007/Restaurant-fullstack/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Products  ports.ProductControl
	Passwords ports.PasswordService
	Auth      ports.AuthService
	JWTSecret string
	Logger    zerolog.Logger

	// Readiness maps a dependency name to its ping, e.g. "mongodb", "redis".
	Readiness map[string]handler.PingFunc

	// Registry receives the HTTP request metrics and backs /metrics.
	// Defaults to the global Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 "coffee_http",
		Registerer:                registerer,
		DoNotUseRequestPathFor404: true,
	}))

	// --- Handlers ---
	productHandler := handler.NewProductHandler(deps.Products)
	passwordHandler := handler.NewPasswordHandler(deps.Passwords)
	authHandler := handler.NewAuthHandler(deps.Auth)
	healthHandler := handler.NewHealthHandler(deps.Readiness)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/admin/login", authHandler.AdminLogin)
	auth.POST("/client/login", authHandler.ClientLogin)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.POST("/products", productHandler.Add)
	admin.PATCH("/products/:id", productHandler.Update)
	admin.GET("/products/:id", productHandler.Get)
	admin.PUT("/password", passwordHandler.Change)

	// --- Client routes ---
	client := e.Group("/api/client", authMiddleware, middleware.RBAC(domain.RoleClient))
	client.PUT("/password", passwordHandler.Change)

	// --- Health probes, metrics and docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
