package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/jaurre/social-savvy-ai/storage"
)

// PublishInterval is how often we check for scheduled posts that are due (1 minute)
const PublishInterval = 1 * time.Minute

// ScheduledPostPublisher marks scheduled posts as published once their time
// arrives. Actual network publishing happens outside this system; the job
// keeps the schedule state honest.
type ScheduledPostPublisher struct {
	storage *storage.Storage
	ticker  *time.Ticker
	done    chan bool
}

func NewScheduledPostPublisher(storage *storage.Storage) *ScheduledPostPublisher {
	return &ScheduledPostPublisher{
		storage: storage,
		done:    make(chan bool),
	}
}

// Start begins the scheduled post publishing background job
func (p *ScheduledPostPublisher) Start(ctx context.Context) {
	slog.Info("starting scheduled post publisher", "interval", PublishInterval)

	// Run immediately on start
	p.publishDue(ctx)

	// Then run on interval
	p.ticker = time.NewTicker(PublishInterval)

	go func() {
		for {
			select {
			case <-p.ticker.C:
				p.publishDue(ctx)
			case <-p.done:
				slog.Info("scheduled post publisher stopped")
				return
			}
		}
	}()
}

// Stop stops the background job
func (p *ScheduledPostPublisher) Stop() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
	close(p.done)
}

func (p *ScheduledPostPublisher) publishDue(ctx context.Context) {
	now := time.Now()
	due, err := p.storage.DueScheduledPosts(ctx, now)
	if err != nil {
		slog.Error("failed to query due scheduled posts", "error", err)
		return
	}

	for _, rec := range due {
		if err := p.storage.MarkPublished(ctx, rec.ID, now); err != nil {
			slog.Error("failed to mark scheduled post published", "error", err, "schedule_id", rec.ID)
			continue
		}
		slog.Info("scheduled post published", "schedule_id", rec.ID, "post_id", rec.PostID, "scheduled_for", rec.ScheduledFor)
	}

	if len(due) > 0 {
		slog.Debug("scheduled post publishing pass complete", "published", len(due))
	}
}
