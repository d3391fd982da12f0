package setup

import (
	"esantiye/app"
	"esantiye/handlers"
	"esantiye/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthPath is exempt from rate limiting
const HealthPath = "/api/health"

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App, gatherer prometheus.Gatherer) {
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	fiberApp.Get(HealthPath, handlers.Health)

	api := fiberApp.Group("/api")
	api.Get("/stats", handlers.GetStats(application))

	for _, spec := range services.Resources {
		if application.Resource(spec.Name) == nil {
			continue
		}
		api.Get("/"+spec.Name, handlers.ListResource(application, spec.Name))
		if spec.Creatable {
			api.Post("/"+spec.Name, handlers.CreateResource(application, spec.Name))
		}
	}
}
