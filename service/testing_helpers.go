package service

import (
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jaurre/social-savvy-ai/storage"
)

// setupTestService creates a service instance with an in-memory database for testing
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8080",
	}
	config.Placeholder.Dir = t.TempDir()
	config.Placeholder.URLPrefix = "/public/placeholders"
	config.Export.Dir = t.TempDir()
	// Zero pauses and failure rate keep generation fast and deterministic
	config.Image.FailureRate = 0
	config.Image.ProviderPause = 0
	config.Image.VariantPause = 0

	svc := New(store, config)
	t.Cleanup(svc.Stop)

	return svc
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	e.HideBanner = true

	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}
