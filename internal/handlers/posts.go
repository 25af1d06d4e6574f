package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jaurre/social-savvy-ai/internal/export"
	"github.com/jaurre/social-savvy-ai/storage"
)

type PostsHandler struct {
	store    *storage.Storage
	exporter *export.Exporter
}

func NewPostsHandler(store *storage.Storage, exporter *export.Exporter) *PostsHandler {
	return &PostsHandler{store: store, exporter: exporter}
}

func (h *PostsHandler) ListPosts(c echo.Context) error {
	profileID := c.Param("id")

	if _, err := h.store.GetProfile(c.Request().Context(), profileID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		slog.Error("failed to load profile", "error", err, "profile_id", profileID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load profile")
	}

	posts, err := h.store.ListPostsByProfile(c.Request().Context(), profileID)
	if err != nil {
		slog.Error("failed to list posts", "error", err, "profile_id", profileID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list posts")
	}

	responses := make([]PostResponse, len(posts))
	for i, post := range posts {
		responses[i] = postToResponse(post)
	}
	return c.JSON(http.StatusOK, responses)
}

func (h *PostsHandler) GetPost(c echo.Context) error {
	id := c.Param("id")

	post, err := h.store.GetPost(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		slog.Error("failed to get post", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get post")
	}

	return c.JSON(http.StatusOK, postToResponse(post))
}

type SchedulePostRequest struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

func (h *PostsHandler) SchedulePost(c echo.Context) error {
	id := c.Param("id")

	var req SchedulePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ScheduledFor.IsZero() {
		return echo.NewHTTPError(http.StatusBadRequest, "scheduled_for is required")
	}
	if req.ScheduledFor.Before(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest, "scheduled_for must be in the future")
	}

	sched, err := h.store.SchedulePost(c.Request().Context(), id, req.ScheduledFor)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		slog.Error("failed to schedule post", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to schedule post")
	}

	slog.Info("post scheduled", "post_id", id, "schedule_id", sched.ID, "scheduled_for", sched.ScheduledFor)
	return c.JSON(http.StatusCreated, map[string]any{
		"id":            sched.ID,
		"post_id":       sched.PostID,
		"scheduled_for": sched.ScheduledFor,
	})
}

// ExportPost renders the post as a printable PDF brief and serves the file.
func (h *PostsHandler) ExportPost(c echo.Context) error {
	id := c.Param("id")

	post, err := h.store.GetPost(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		slog.Error("failed to get post for export", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get post")
	}

	pdfPath, err := h.exporter.ExportPost(post)
	if err != nil {
		slog.Error("failed to export post", "error", err, "post_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export post")
	}

	slog.Info("post exported", "post_id", id, "path", pdfPath)
	return c.Attachment(pdfPath, id+".pdf")
}
