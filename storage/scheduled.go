package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ScheduledPost links a generated post to a future publication time.
type ScheduledPost struct {
	ID           string
	PostID       string
	ScheduledFor time.Time
	PublishedAt  *time.Time
	CreatedAt    time.Time
}

func (s *Storage) SchedulePost(ctx context.Context, postID string, at time.Time) (*ScheduledPost, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	rec := &ScheduledPost{
		ID:           ulid.Make().String(),
		PostID:       postID,
		ScheduledFor: at.UTC(),
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scheduled_posts (id, post_id, scheduled_for, created_at)
		VALUES (?, ?, ?, ?)`,
		rec.ID, rec.PostID, rec.ScheduledFor, rec.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("schedule post: %w", err)
	}
	return rec, nil
}

// DueScheduledPosts returns unpublished schedules whose time has passed.
func (s *Storage) DueScheduledPosts(ctx context.Context, now time.Time) ([]ScheduledPost, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, post_id, scheduled_for, published_at, created_at
		FROM scheduled_posts
		WHERE published_at IS NULL AND scheduled_for <= ?
		ORDER BY scheduled_for`, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("due scheduled posts: %w", err)
	}
	defer rows.Close()

	var due []ScheduledPost
	for rows.Next() {
		var rec ScheduledPost
		if err := rows.Scan(&rec.ID, &rec.PostID, &rec.ScheduledFor, &rec.PublishedAt, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("due scheduled posts: %w", err)
		}
		due = append(due, rec)
	}
	return due, rows.Err()
}

func (s *Storage) MarkPublished(ctx context.Context, scheduleID string, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE scheduled_posts SET published_at = ? WHERE id = ? AND published_at IS NULL`,
		at.UTC(), scheduleID,
	)
	if err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
