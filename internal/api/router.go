package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/globalcargo/cargo-console/internal/api/handler"
	"github.com/globalcargo/cargo-console/internal/api/middleware"
	"github.com/globalcargo/cargo-console/internal/api/templates"
	"github.com/globalcargo/cargo-console/internal/core/domain"
	"github.com/globalcargo/cargo-console/internal/core/nav"
	"github.com/globalcargo/cargo-console/internal/core/ports"
	"github.com/globalcargo/cargo-console/internal/core/resources"
	"github.com/globalcargo/cargo-console/internal/core/service"
	"github.com/globalcargo/cargo-console/internal/infrastructure/gateway"
	"github.com/globalcargo/cargo-console/internal/pkg/validation"
)

// Deps are the collaborators the router wires into its handlers.
type Deps struct {
	Client    *gateway.Client
	Auth      *service.AuthService
	Sessions  *middleware.Sessions
	Validator *validation.Validator
	Log       zerolog.Logger
	// CSRF enables echo's CSRF middleware on every unsafe request.
	CSRF bool
	// Readiness lists the dependencies checked by /health/ready.
	Readiness map[string]handler.Pinger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	shell := nav.NewShell(nav.DefaultItems)
	// Request metrics use a registry per router; /metrics merges it with the
	// default registry.
	httpMetrics := prometheus.NewRegistry()
	e.Renderer = templates.MustNew()
	e.Validator = deps.Validator
	e.HTTPErrorHandler = NewHTTPErrorHandler(shell, deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Secure())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "cargo_console",
		Subsystem:  "http",
		Registerer: httpMetrics,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(deps.Sessions.Middleware())
	if deps.CSRF {
		e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			TokenLookup:    "form:_csrf",
			ContextKey:     "csrf",
			CookiePath:     "/",
			CookieHTTPOnly: true,
			CookieSameSite: http.SameSiteLaxMode,
		}))
	}

	// --- Operational endpoints ---
	health := handler.NewHealthHandler(deps.Readiness)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		prometheus.Gatherers{prometheus.DefaultGatherer, httpMetrics},
		promhttp.HandlerOpts{},
	)))

	// --- Account pages ---
	auth := handler.NewAuthHandler(deps.Auth, deps.Sessions, shell, deps.Log)
	e.GET(nav.LoginPath, auth.LoginForm)
	e.POST(nav.LoginPath, auth.Login)
	e.GET("/register", auth.RegisterForm)
	e.POST("/register", auth.Register)
	e.POST("/logout", auth.Logout)

	// --- Console pages ---
	conn := handler.NewConnector(deps.Client, deps.Auth, deps.Log)
	g := e.Group("", middleware.RequireLogin(shell))
	admin := middleware.AdminOnly()

	g.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	})
	g.GET("/dashboard", handler.NewDashboardHandler(conn, shell, deps.Log).Show)

	handler.NewResourceHandler(resources.Ships, conn,
		func(s *gateway.Set) ports.ResourceGateway[domain.Ship] { return s.Ships },
		shell, deps.Validator, deps.Log).Register(g, admin)
	handler.NewResourceHandler(resources.Crew, conn,
		func(s *gateway.Set) ports.ResourceGateway[domain.CrewMember] { return s.Crew },
		shell, deps.Validator, deps.Log).Register(g, admin)
	handler.NewResourceHandler(resources.Ports, conn,
		func(s *gateway.Set) ports.ResourceGateway[domain.Port] { return s.Ports },
		shell, deps.Validator, deps.Log).Register(g, admin)
	handler.NewResourceHandler(resources.Clients, conn,
		func(s *gateway.Set) ports.ResourceGateway[domain.Client] { return s.Clients },
		shell, deps.Validator, deps.Log).Register(g, admin)
	handler.NewResourceHandler(resources.Cargo, conn,
		func(s *gateway.Set) ports.ResourceGateway[domain.Cargo] { return s.Cargo },
		shell, deps.Validator, deps.Log).Register(g, admin)
	handler.NewResourceHandler(resources.Shipments, conn,
		func(s *gateway.Set) ports.ResourceGateway[domain.Shipment] { return s.Shipments },
		shell, deps.Validator, deps.Log).Register(g, admin)

	return e
}
