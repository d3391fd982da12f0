package setup_test

import (
	"encoding/json"
	"errors"
	"esantiye/config"
	"esantiye/config/setup"
	"esantiye/database"
	"esantiye/metrics"
	"esantiye/middleware"
	"esantiye/services"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := setup.InitDatabase(filepath.Join(t.TempDir(), "test.db"), discardLogger())
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(func() { db.Close() })

	return db
}

// setupServer wires the app exactly as main does
func setupServer(t *testing.T, cfg *config.Config) (*fiber.App, *metrics.Metrics) {
	t.Helper()

	logger := discardLogger()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	application := setup.InitApp(setupTestDB(t), m, logger)

	fiberApp := setup.NewFiberApp(cfg, logger)
	setup.ApplyMiddleware(fiberApp, cfg, m, logger)
	setup.RegisterRoutes(fiberApp, application, registry)

	return fiberApp, m
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func TestApplyMiddleware_RateLimitSkipsHealth(t *testing.T) {
	cfg := &config.Config{Env: "development", CORSOrigins: "*", RateLimitMax: 2}
	fiberApp, _ := setupServer(t, cfg)

	for i := 0; i < cfg.RateLimitMax+3; i++ {
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, setup.HealthPath, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "health request %d", i+1)
	}

	for i := 0; i < cfg.RateLimitMax; i++ {
		resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/projects", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "request %d within quota", i+1)
	}

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/projects", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "Rate limit exceeded", decodeBody(t, resp)["error"])

	// The quota is spent, health still answers
	resp, err = fiberApp.Test(httptest.NewRequest(http.MethodGet, setup.HealthPath, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApplyMiddleware_Stack(t *testing.T) {
	cfg := &config.Config{Env: "development", CORSOrigins: "*", RateLimitMax: 100}
	fiberApp, m := setupServer(t, cfg)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "Request id", header: fiber.HeaderXRequestID, want: "req-stack"},
		{name: "Content type sniffing", header: fiber.HeaderXContentTypeOptions, want: "nosniff"},
		{name: "Framing", header: fiber.HeaderXFrameOptions, want: "DENY"},
		{name: "Caching", header: fiber.HeaderCacheControl, want: "no-store"},
		{name: "CORS", header: fiber.HeaderAccessControlAllowOrigin, want: "*"},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-stack")
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resp.Header.Get(tt.header))
		})
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/api/projects", "200")))
}

func TestCustomErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		handler    fiber.Handler
		wantStatus int
		wantError  string
	}{
		{
			name:       "Fiber error keeps its code and message",
			env:        "production",
			handler:    func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "Kayıt bulunamadı") },
			wantStatus: http.StatusNotFound,
			wantError:  "Kayıt bulunamadı",
		},
		{
			name:       "Plain error hidden in production",
			env:        "production",
			handler:    func(c *fiber.Ctx) error { return errors.New("disk I/O error") },
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:       "Plain error shown in development",
			env:        "development",
			handler:    func(c *fiber.Ctx) error { return errors.New("disk I/O error") },
			wantStatus: http.StatusInternalServerError,
			wantError:  "disk I/O error",
		},
		{
			name:       "Wrapped fiber error",
			env:        "production",
			handler:    func(c *fiber.Ctx) error { return fmt.Errorf("decode material: %w", fiber.ErrBadRequest) },
			wantStatus: http.StatusBadRequest,
			wantError:  "Bad Request",
		},
		{
			name:       "Recovered panic in development",
			env:        "development",
			handler:    func(c *fiber.Ctx) error { panic("nil material") },
			wantStatus: http.StatusInternalServerError,
			wantError:  "nil material",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Env: tt.env, CORSOrigins: "*", RateLimitMax: 100}
			logger := discardLogger()

			fiberApp := setup.NewFiberApp(cfg, logger)
			setup.ApplyMiddleware(fiberApp, cfg, metrics.New(prometheus.NewRegistry()), logger)
			fiberApp.Get("/fail", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			req.Header.Set(fiber.HeaderXRequestID, "req-42")

			resp, err := fiberApp.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeBody(t, resp)
			assert.Equal(t, tt.wantError, body["error"])
			assert.Equal(t, "req-42", body["request_id"])
		})
	}
}

func TestCustomErrorHandler_WithoutRequestID(t *testing.T) {
	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler(discardLogger(), false)})
	fiberApp.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)

	body := decodeBody(t, resp)
	assert.Equal(t, "Internal server error", body["error"])
	assert.Equal(t, "", body["request_id"])
}

func TestCustomErrorHandler_GeneratedRequestID(t *testing.T) {
	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler(discardLogger(), true)})
	fiberApp.Use(middleware.StructuredLogger(discardLogger()))
	fiberApp.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/fail", nil), -1)
	require.NoError(t, err)

	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["request_id"])
	assert.Equal(t, resp.Header.Get(fiber.HeaderXRequestID), body["request_id"])
}

func TestBootstrapAdmin(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		runs      int
		wantUsers int64
		wantError bool
	}{
		{
			name:      "No admin configured",
			cfg:       config.Config{AdminEmail: "admin@esantiye.local"},
			runs:      1,
			wantUsers: 0,
		},
		{
			name:      "Password without username",
			cfg:       config.Config{AdminPassword: "sifre12345"},
			runs:      1,
			wantUsers: 0,
		},
		{
			name:      "Creates admin",
			cfg:       config.Config{AdminUsername: "admin", AdminEmail: "admin@esantiye.local", AdminPassword: "sifre12345"},
			runs:      1,
			wantUsers: 1,
		},
		{
			name:      "Rerun is idempotent",
			cfg:       config.Config{AdminUsername: "admin", AdminEmail: "admin@esantiye.local", AdminPassword: "sifre12345"},
			runs:      3,
			wantUsers: 1,
		},
		{
			name:      "Short password rejected",
			cfg:       config.Config{AdminUsername: "admin", AdminEmail: "admin@esantiye.local", AdminPassword: "kisa"},
			runs:      1,
			wantUsers: 0,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			logger := discardLogger()
			application := setup.InitApp(db, metrics.New(prometheus.NewRegistry()), logger)

			for i := 0; i < tt.runs; i++ {
				err := setup.BootstrapAdmin(application, &tt.cfg, logger)
				if tt.wantError {
					require.Error(t, err)
				} else {
					require.NoError(t, err, "run %d", i+1)
				}
			}

			repo := database.NewRepository(db)
			count, err := repo.Count(database.TableUsers)
			require.NoError(t, err)
			assert.Equal(t, tt.wantUsers, count)

			if tt.wantUsers == 0 {
				return
			}

			user, err := repo.GetUserByUsername(tt.cfg.AdminUsername)
			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, services.RoleAdmin, user.Role)
			assert.Equal(t, tt.cfg.AdminEmail, user.Email)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}
