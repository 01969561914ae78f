package api

import (
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/carelink/health-gateway/docs" // registers the OpenAPI document
	"github.com/carelink/health-gateway/internal/api/handler"
	"github.com/carelink/health-gateway/internal/api/metrics"
	"github.com/carelink/health-gateway/internal/api/middleware"
	"github.com/carelink/health-gateway/internal/core/domain"
	"github.com/carelink/health-gateway/internal/core/ports"
	"github.com/carelink/health-gateway/internal/infrastructure/http/handlers"
)

// multipartOverhead is allowed on top of the file size for form fields and
// part headers.
const multipartOverhead = 1 << 20

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	Log    zerolog.Logger
	Tokens ports.TokenVerifier

	Auth          ports.AuthService
	Directory     ports.DirectoryService
	Appointments  ports.AppointmentService
	Inventory     ports.InventoryService
	Prescriptions ports.PrescriptionService

	// Idempotency is optional; nil disables response replay.
	Idempotency    ports.IdempotencyStore
	IdempotencyTTL time.Duration

	UploadMaxBytes int64
	HealthChecks   []handlers.Check
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// HTTP metrics live in a registry owned by this router; domain metrics
	// stay in the default one.
	httpMetrics := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metrics.Namespace,
		Registerer: httpMetrics,
	}))
	e.Use(middleware.RequestLogger(deps.Log))
	e.Use(echomiddleware.Recover())

	// --- Route interceptors ---
	authn := middleware.Authenticate(deps.Tokens)
	authenticated := middleware.Chain(authn)
	only := func(role domain.Role) echo.MiddlewareFunc {
		return middleware.Chain(authn, middleware.RequireRole(role))
	}
	idempotent := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if deps.Idempotency != nil {
		idempotent = middleware.Idempotency(deps.Idempotency, deps.IdempotencyTTL, deps.Log)
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	appointmentHandler := handler.NewAppointmentHandler(deps.Appointments)
	inventoryHandler := handler.NewInventoryHandler(deps.Inventory)
	prescriptionHandler := handler.NewPrescriptionHandler(deps.Prescriptions, deps.UploadMaxBytes)

	// --- Auth routes ---
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, authenticated)

	// --- Directory routes ---
	e.GET("/api/patients", directoryHandler.List(domain.RolePatient), authenticated)
	e.GET("/api/doctors", directoryHandler.List(domain.RoleDoctor), authenticated)
	e.GET("/api/asha", directoryHandler.List(domain.RoleASHA), authenticated)
	e.GET("/api/pharmacies", directoryHandler.List(domain.RolePharmacy), authenticated)

	// --- Record routes ---
	e.GET("/api/appointments", appointmentHandler.List, authenticated)
	e.POST("/api/appointments", appointmentHandler.Create, only(domain.RolePatient), idempotent)

	e.GET("/api/inventory", inventoryHandler.List, authenticated)
	e.POST("/api/inventory", inventoryHandler.Create, only(domain.RolePharmacy), idempotent)

	e.GET("/api/prescriptions", prescriptionHandler.List, authenticated)
	e.POST("/api/prescriptions", prescriptionHandler.Create,
		only(domain.RoleDoctor),
		echomiddleware.BodyLimit(fmt.Sprintf("%dB", deps.UploadMaxBytes+multipartOverhead)),
		idempotent,
	)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.HealthChecks...)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, httpMetrics},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
