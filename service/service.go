package service

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jaurre/social-savvy-ai/internal/content"
	"github.com/jaurre/social-savvy-ai/internal/export"
	"github.com/jaurre/social-savvy-ai/internal/handlers"
	"github.com/jaurre/social-savvy-ai/internal/imagegen"
	"github.com/jaurre/social-savvy-ai/internal/jobs"
	"github.com/jaurre/social-savvy-ai/internal/pipeline"
	"github.com/jaurre/social-savvy-ai/storage"
)

type Service struct {
	storage   *storage.Storage
	config    *Config
	generator *pipeline.Generator
	exporter  *export.Exporter
	publisher *jobs.ScheduledPostPublisher
}

func New(store *storage.Storage, config *Config) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	backend := content.NewSimulatedBackend(rng)
	renderer := imagegen.NewFileRenderer(config.Placeholder.Dir, config.Placeholder.URLPrefix)
	chain := imagegen.NewChain(imagegen.DefaultProviders(config.Image.FailureRate, rng), renderer)
	chain.Pause = config.Image.ProviderPause

	generator := pipeline.NewGenerator(backend, chain, imagegen.NewOverlayPolicy(rng), rng)
	generator.ImagePause = config.Image.VariantPause

	// Start the scheduled post publisher
	publisher := jobs.NewScheduledPostPublisher(store)
	publisher.Start(context.Background())

	return &Service{
		storage:   store,
		config:    config,
		generator: generator,
		exporter:  export.NewExporter(config.Export.Dir),
		publisher: publisher,
	}
}

// Stop shuts down background jobs.
func (s *Service) Stop() {
	s.publisher.Stop()
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Rendered placeholder images are served statically
	e.Static(s.config.Placeholder.URLPrefix, s.config.Placeholder.Dir)

	profilesHandler := handlers.NewProfilesHandler(s.storage)
	generateHandler := handlers.NewGenerateHandler(s.storage, s.generator)
	postsHandler := handlers.NewPostsHandler(s.storage, s.exporter)
	networksHandler := handlers.NewNetworksHandler()

	api := e.Group("/api")

	// Business profiles
	api.POST("/profiles", profilesHandler.CreateProfile)
	api.GET("/profiles/:id", profilesHandler.GetProfile)
	api.GET("/profiles/:id/posts", postsHandler.ListPosts)

	// Generation (server-sent events)
	api.POST("/generate", generateHandler.HandleGenerate)
	api.POST("/generate/quick", generateHandler.HandleQuickGenerate)

	// Posts
	api.GET("/posts/:id", postsHandler.GetPost)
	api.POST("/posts/:id/schedule", postsHandler.SchedulePost)
	api.GET("/posts/:id/export", postsHandler.ExportPost)

	// Network formats
	api.GET("/networks", networksHandler.ListNetworks)
	api.GET("/networks/:network/aspect-ratio", networksHandler.GetAspectRatio)

	// Health check
	e.GET("/health", s.handleHealth)
}

func (s *Service) handleHealth(c echo.Context) error {
	if err := s.storage.Ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": s.config.Environment,
		"database":    "connected",
	})
}
