package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaurre/social-savvy-ai/internal/pipeline"
	"github.com/jaurre/social-savvy-ai/internal/profile"
	"github.com/jaurre/social-savvy-ai/storage"
)

type GenerateHandler struct {
	store     *storage.Storage
	generator *pipeline.Generator
}

func NewGenerateHandler(store *storage.Storage, generator *pipeline.Generator) *GenerateHandler {
	return &GenerateHandler{store: store, generator: generator}
}

type GenerateRequest struct {
	ProfileID    string `json:"profile_id"`
	Idea         string `json:"idea"`
	Objective    string `json:"objective"`
	Network      string `json:"network"`
	VariantCount int    `json:"variant_count"`
}

type QuickGenerateRequest struct {
	ProfileID string `json:"profile_id"`
	Network   string `json:"network"`
}

type PostResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	ImageURL        string   `json:"image_url"`
	FullText        string   `json:"full_text"`
	Network         string   `json:"network"`
	Objective       string   `json:"objective"`
	Hashtags        []string `json:"hashtags"`
	Idea            string   `json:"idea"`
	CreatedAt       string   `json:"created_at"`
	Approach        string   `json:"approach"`
	ImagePrompt     string   `json:"image_prompt"`
	ImageProvider   string   `json:"image_provider"`
	TextProvider    string   `json:"text_provider"`
	OverlayText     string   `json:"overlay_text,omitempty"`
	EditorDeepLink  string   `json:"editor_deep_link"`
	UsedFallback    bool     `json:"used_fallback"`
	FallbackLevel   int      `json:"fallback_level"`
	RequiresEditing bool     `json:"requires_editing"`
}

func postToResponse(p pipeline.GeneratedPost) PostResponse {
	return PostResponse{
		ID:              p.ID,
		Title:           p.Title,
		ImageURL:        p.ImageURL,
		FullText:        p.FullText,
		Network:         string(p.Network),
		Objective:       string(p.Objective),
		Hashtags:        p.Hashtags,
		Idea:            p.Idea,
		CreatedAt:       p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Approach:        string(p.Approach),
		ImagePrompt:     p.ImagePrompt,
		ImageProvider:   p.ImageProvider,
		TextProvider:    p.TextProvider,
		OverlayText:     p.OverlayText,
		EditorDeepLink:  p.EditorDeepLink,
		UsedFallback:    p.UsedFallback,
		FallbackLevel:   p.FallbackLevel,
		RequiresEditing: p.RequiresEditing,
	}
}

// HandleGenerate runs a full generation and streams progress to the client as
// server-sent events: "progress" events while the pipeline runs, then a single
// "result" event with the generated posts, or an "error" event.
func (h *GenerateHandler) HandleGenerate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ProfileID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "profile_id is required")
	}
	if req.Idea == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "idea is required")
	}

	ctx := c.Request().Context()
	rec, err := h.store.GetProfile(ctx, req.ProfileID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		slog.Error("failed to load profile for generation", "error", err, "profile_id", req.ProfileID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load profile")
	}

	if rec.PostsRemaining <= 0 {
		return echo.NewHTTPError(http.StatusPaymentRequired, "Free generation quota exhausted")
	}

	genReq := pipeline.Request{
		Profile:      rec.Profile,
		Idea:         req.Idea,
		Objective:    profile.Objective(req.Objective),
		Network:      profile.Network(req.Network),
		VariantCount: req.VariantCount,
	}

	return h.stream(c, rec.ID, func(onProgress func(pipeline.Progress)) ([]pipeline.GeneratedPost, error) {
		return h.generator.Generate(ctx, genReq, onProgress)
	})
}

// HandleQuickGenerate produces one post from a random idea and objective,
// streaming progress the same way as the full endpoint.
func (h *GenerateHandler) HandleQuickGenerate(c echo.Context) error {
	var req QuickGenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ProfileID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "profile_id is required")
	}

	ctx := c.Request().Context()
	rec, err := h.store.GetProfile(ctx, req.ProfileID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		slog.Error("failed to load profile for quick generation", "error", err, "profile_id", req.ProfileID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load profile")
	}

	if rec.PostsRemaining <= 0 {
		return echo.NewHTTPError(http.StatusPaymentRequired, "Free generation quota exhausted")
	}

	return h.stream(c, rec.ID, func(onProgress func(pipeline.Progress)) ([]pipeline.GeneratedPost, error) {
		return h.generator.QuickGenerate(ctx, rec.Profile, profile.Network(req.Network), onProgress)
	})
}

type generateFunc func(onProgress func(pipeline.Progress)) ([]pipeline.GeneratedPost, error)

func (h *GenerateHandler) stream(c echo.Context, profileID string, generate generateFunc) error {
	// Set SSE headers
	c.Response().Header().Set("Content-Type", "text/event-stream")
	c.Response().Header().Set("Cache-Control", "no-cache")
	c.Response().Header().Set("Connection", "keep-alive")
	c.Response().Header().Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	writeEvent := func(event string, payload any) {
		data, err := json.Marshal(payload)
		if err != nil {
			slog.Error("failed to marshal SSE payload", "error", err, "event", event)
			return
		}
		fmt.Fprintf(c.Response().Writer, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}

	posts, err := generate(func(p pipeline.Progress) {
		writeEvent("progress", map[string]any{
			"percent": p.Percent,
			"status":  p.Status,
			"warning": p.Warning,
		})
	})
	if err != nil {
		slog.Error("generation failed", "error", err, "profile_id", profileID)
		writeEvent("error", map[string]string{"error": err.Error()})
		return nil
	}

	ctx := c.Request().Context()
	for _, post := range posts {
		if err := h.store.InsertPost(ctx, profileID, post); err != nil {
			slog.Error("failed to persist generated post", "error", err, "post_id", post.ID)
		}
	}

	remaining, err := h.store.ConsumeQuota(ctx, profileID)
	if err != nil && !errors.Is(err, storage.ErrQuotaExhausted) {
		slog.Error("failed to consume generation quota", "error", err, "profile_id", profileID)
	}

	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = postToResponse(post)
	}
	writeEvent("result", map[string]any{
		"posts":           responses,
		"posts_remaining": remaining,
	})

	slog.Info("generation complete", "profile_id", profileID, "posts", len(posts), "posts_remaining", remaining)
	return nil
}
