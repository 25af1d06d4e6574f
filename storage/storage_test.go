package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaurre/social-savvy-ai/internal/pipeline"
	"github.com/jaurre/social-savvy-ai/internal/profile"
)

func testBusinessProfile() profile.BusinessProfile {
	return profile.BusinessProfile{
		Name:         "Café Aromático",
		Industry:     "gastronomía",
		Description:  "Café de especialidad en el centro",
		Tone:         "cercano",
		VisualStyle:  "modern",
		ColorPalette: []string{"#6F4E37", "#D2B48C"},
		Slogan:       "El aroma que te despierta",
	}
}

func testPost(id string) pipeline.GeneratedPost {
	return pipeline.GeneratedPost{
		ID:              id,
		Title:           "Gran promoción",
		ImageURL:        "https://img.example/1.png",
		FullText:        "Gran promoción\n\nCuerpo.\n\n¡Contáctanos!\n\n#café",
		Network:         profile.NetworkInstagram,
		Objective:       profile.ObjectiveSell,
		Hashtags:        []string{"café", "promo"},
		Idea:            "promoción de café",
		CreatedAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Approach:        profile.ApproachUrgency,
		ImagePrompt:     "un café humeante",
		ImageProvider:   "dall-e",
		TextProvider:    "ChatGPT",
		OverlayText:     "OFERTA ESPECIAL",
		EditorDeepLink:  "https://www.canva.com/design/new?imageUrl=x",
		UsedFallback:    true,
		FallbackLevel:   1,
		RequiresEditing: false,
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	created, err := store.CreateProfile(ctx, testBusinessProfile())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, defaultPostQuota, created.PostsRemaining)

	got, err := store.GetProfile(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Profile, got.Profile)
	assert.Equal(t, defaultPostQuota, got.PostsRemaining)
}

func TestGetProfileNotFound(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	_, err = store.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConsumeQuota(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	rec, err := store.CreateProfile(ctx, testBusinessProfile())
	require.NoError(t, err)

	for want := defaultPostQuota - 1; want >= 0; want-- {
		remaining, err := store.ConsumeQuota(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, want, remaining)
	}

	_, err = store.ConsumeQuota(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestPostRoundTrip(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	rec, err := store.CreateProfile(ctx, testBusinessProfile())
	require.NoError(t, err)

	post := testPost("post-1")
	require.NoError(t, store.InsertPost(ctx, rec.ID, post))

	got, err := store.GetPost(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, post.Title, got.Title)
	assert.Equal(t, post.FullText, got.FullText)
	assert.Equal(t, post.Network, got.Network)
	assert.Equal(t, post.Objective, got.Objective)
	assert.Equal(t, post.Hashtags, got.Hashtags)
	assert.Equal(t, post.Approach, got.Approach)
	assert.Equal(t, post.OverlayText, got.OverlayText)
	assert.Equal(t, post.EditorDeepLink, got.EditorDeepLink)
	assert.Equal(t, post.UsedFallback, got.UsedFallback)
	assert.Equal(t, post.FallbackLevel, got.FallbackLevel)
	assert.Equal(t, post.RequiresEditing, got.RequiresEditing)
	assert.True(t, post.CreatedAt.Equal(got.CreatedAt))
}

func TestListPostsByProfile(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	first, err := store.CreateProfile(ctx, testBusinessProfile())
	require.NoError(t, err)
	second, err := store.CreateProfile(ctx, testBusinessProfile())
	require.NoError(t, err)

	require.NoError(t, store.InsertPost(ctx, first.ID, testPost("post-1")))
	require.NoError(t, store.InsertPost(ctx, first.ID, testPost("post-2")))
	require.NoError(t, store.InsertPost(ctx, second.ID, testPost("post-3")))

	posts, err := store.ListPostsByProfile(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = store.ListPostsByProfile(ctx, second.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestSchedulePostLifecycle(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	rec, err := store.CreateProfile(ctx, testBusinessProfile())
	require.NoError(t, err)
	require.NoError(t, store.InsertPost(ctx, rec.ID, testPost("post-1")))

	scheduledFor := time.Now().Add(-time.Minute).UTC()
	sched, err := store.SchedulePost(ctx, "post-1", scheduledFor)
	require.NoError(t, err)
	require.NotEmpty(t, sched.ID)

	due, err := store.DueScheduledPosts(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "post-1", due[0].PostID)

	require.NoError(t, store.MarkPublished(ctx, sched.ID, time.Now()))

	// Published schedules drop out of the due list and cannot be
	// published twice.
	due, err = store.DueScheduledPosts(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)
	assert.ErrorIs(t, store.MarkPublished(ctx, sched.ID, time.Now()), ErrNotFound)
}

func TestSchedulePostUnknownPost(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	_, err = store.SchedulePost(context.Background(), "missing", time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFutureScheduleNotDue(t *testing.T) {
	store, cleanup, err := NewTestDB()
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	rec, err := store.CreateProfile(ctx, testBusinessProfile())
	require.NoError(t, err)
	require.NoError(t, store.InsertPost(ctx, rec.ID, testPost("post-1")))

	_, err = store.SchedulePost(ctx, "post-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	due, err := store.DueScheduledPosts(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)
}
