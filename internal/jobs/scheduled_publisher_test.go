package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaurre/social-savvy-ai/internal/pipeline"
	"github.com/jaurre/social-savvy-ai/internal/profile"
	"github.com/jaurre/social-savvy-ai/storage"
)

func setupScheduled(t *testing.T, scheduledFor time.Time) (*storage.Storage, string) {
	t.Helper()

	store, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	ctx := context.Background()
	rec, err := store.CreateProfile(ctx, profile.BusinessProfile{
		Name:         "Café Aromático",
		Industry:     "gastronomía",
		Description:  "Café de especialidad en el centro",
		Tone:         "cercano",
		VisualStyle:  "modern",
		ColorPalette: []string{"#6F4E37"},
	})
	require.NoError(t, err)

	post := pipeline.GeneratedPost{
		ID:        "post-job-1",
		Title:     "Promo",
		FullText:  "Promo\n\nTexto.",
		ImageURL:  "https://images.example.com/post-job-1.png",
		Network:   profile.NetworkInstagram,
		Objective: profile.ObjectiveSell,
		Hashtags:  []string{"promo"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.InsertPost(ctx, rec.ID, post))

	sched, err := store.SchedulePost(ctx, post.ID, scheduledFor)
	require.NoError(t, err)
	return store, sched.ID
}

func TestPublishDueMarksPastSchedules(t *testing.T) {
	store, schedID := setupScheduled(t, time.Now().Add(-time.Minute))

	publisher := NewScheduledPostPublisher(store)
	publisher.publishDue(context.Background())

	due, err := store.DueScheduledPosts(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)

	// A published schedule cannot be published again
	err = store.MarkPublished(context.Background(), schedID, time.Now())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPublishDueLeavesFutureSchedules(t *testing.T) {
	store, _ := setupScheduled(t, time.Now().Add(time.Hour))

	publisher := NewScheduledPostPublisher(store)
	publisher.publishDue(context.Background())

	due, err := store.DueScheduledPosts(context.Background(), time.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func TestStartStop(t *testing.T) {
	store, _ := setupScheduled(t, time.Now().Add(-time.Minute))

	publisher := NewScheduledPostPublisher(store)
	publisher.Start(context.Background())
	publisher.Stop()

	// Start runs a pass immediately, so the past schedule is already published.
	due, err := store.DueScheduledPosts(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, due)
}
