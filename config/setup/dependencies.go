package setup

import (
	"esantiye/app"
	"esantiye/config"
	"esantiye/database"
	"esantiye/metrics"
	"esantiye/services"
	"log/slog"
)

// InitDatabase connects to SQLite and creates the schema. Either failure is
// fatal for the caller.
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected", "path", dbPath)

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database schema ready", "tables", len(database.Schema))
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, m *metrics.Metrics, logger *slog.Logger) *app.App {
	db.SetObserver(m)

	repo := database.NewRepository(db)
	application := app.New(repo, m, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// BootstrapAdmin creates the configured admin account if it is missing
func BootstrapAdmin(application *app.App, cfg *config.Config, logger *slog.Logger) error {
	if !cfg.HasAdmin() {
		return nil
	}

	created, err := application.Users.EnsureAdmin(services.AdminRequest{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		return err
	}

	if created {
		logger.Info("admin user created", "username", cfg.AdminUsername)
	}
	return nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
