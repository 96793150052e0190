package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clinicops/notes-dashboard/internal/api/http/handlers"
	"github.com/clinicops/notes-dashboard/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Catalog   *handlers.CatalogHandler
	Dashboard *handlers.DashboardHandler
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api/v1")

	catalogGroup := api.Group("/catalog")
	catalogGroup.Get("/departments", cfg.Catalog.ListDepartments)
	catalogGroup.Get("/doctors", cfg.Catalog.ListDoctors)

	api.Get("/dashboard", cfg.Dashboard.Preview)

	sessions := api.Group("/sessions")
	sessions.Post("", cfg.Dashboard.OpenSession)
	sessions.Get("/:id", cfg.Dashboard.GetSession)
	sessions.Delete("/:id", cfg.Dashboard.CloseSession)
	sessions.Post("/:id/departments/:departmentId/toggle", cfg.Dashboard.ToggleDepartment)
	sessions.Delete("/:id/departments", cfg.Dashboard.ClearDepartments)
	sessions.Post("/:id/doctors/:doctorId/toggle", cfg.Dashboard.ToggleDoctor)
	sessions.Delete("/:id/doctors", cfg.Dashboard.ClearDoctors)
}
