package app

import (
	"esantiye/database"
	"esantiye/metrics"
	"esantiye/services"
	"esantiye/validator"
	"log/slog"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Resources map[string]*services.ResourceService
	Stats     *services.StatsService
	Users     *services.UserService
	Validator *validator.Validator
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, m *metrics.Metrics, logger *slog.Logger) *App {
	v := validator.New()

	resources := make(map[string]*services.ResourceService, len(services.Resources))
	for _, spec := range services.Resources {
		resources[spec.Name] = services.NewResourceService(repo, v, spec)
	}

	return &App{
		Repo:      repo,
		Resources: resources,
		Stats:     services.NewStatsService(repo),
		Users:     services.NewUserService(repo, v),
		Validator: v,
		Metrics:   m,
		Logger:    logger,
	}
}

// Resource returns the service registered under name, or nil
func (a *App) Resource(name string) *services.ResourceService {
	return a.Resources[name]
}
