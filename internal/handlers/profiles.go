package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jaurre/social-savvy-ai/internal/profile"
	"github.com/jaurre/social-savvy-ai/storage"
)

type ProfilesHandler struct {
	store *storage.Storage
}

func NewProfilesHandler(store *storage.Storage) *ProfilesHandler {
	return &ProfilesHandler{store: store}
}

type CreateProfileRequest struct {
	Name         string   `json:"name"`
	Industry     string   `json:"industry"`
	Description  string   `json:"description"`
	ColorPalette []string `json:"color_palette"`
	VisualStyle  string   `json:"visual_style"`
	Tone         string   `json:"tone"`
	LogoURL      string   `json:"logo_url"`
	Slogan       string   `json:"slogan"`
}

type ProfileResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Industry       string    `json:"industry"`
	Description    string    `json:"description"`
	ColorPalette   []string  `json:"color_palette"`
	VisualStyle    string    `json:"visual_style"`
	Tone           string    `json:"tone"`
	LogoURL        string    `json:"logo_url,omitempty"`
	Slogan         string    `json:"slogan,omitempty"`
	PostsRemaining int       `json:"posts_remaining"`
	CreatedAt      time.Time `json:"created_at"`
}

func (r CreateProfileRequest) toProfile() profile.BusinessProfile {
	return profile.BusinessProfile{
		Name:         r.Name,
		Industry:     r.Industry,
		Description:  r.Description,
		ColorPalette: r.ColorPalette,
		VisualStyle:  r.VisualStyle,
		Tone:         r.Tone,
		Logo:         r.LogoURL,
		Slogan:       r.Slogan,
	}
}

func profileToResponse(rec *storage.ProfileRecord) ProfileResponse {
	return ProfileResponse{
		ID:             rec.ID,
		Name:           rec.Profile.Name,
		Industry:       rec.Profile.Industry,
		Description:    rec.Profile.Description,
		ColorPalette:   rec.Profile.ColorPalette,
		VisualStyle:    rec.Profile.VisualStyle,
		Tone:           rec.Profile.Tone,
		LogoURL:        rec.Profile.Logo,
		Slogan:         rec.Profile.Slogan,
		PostsRemaining: rec.PostsRemaining,
		CreatedAt:      rec.CreatedAt,
	}
}

func (h *ProfilesHandler) CreateProfile(c echo.Context) error {
	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	biz := req.toProfile()
	if err := biz.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	rec, err := h.store.CreateProfile(c.Request().Context(), biz)
	if err != nil {
		slog.Error("failed to create business profile", "error", err, "name", req.Name)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create profile")
	}

	slog.Info("business profile created", "profile_id", rec.ID, "name", rec.Profile.Name)
	return c.JSON(http.StatusCreated, profileToResponse(rec))
}

func (h *ProfilesHandler) GetProfile(c echo.Context) error {
	id := c.Param("id")

	rec, err := h.store.GetProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		slog.Error("failed to get profile", "error", err, "profile_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get profile")
	}

	return c.JSON(http.StatusOK, profileToResponse(rec))
}
