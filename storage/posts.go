package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jaurre/social-savvy-ai/internal/pipeline"
	"github.com/jaurre/social-savvy-ai/internal/profile"
)

func (s *Storage) InsertPost(ctx context.Context, profileID string, post pipeline.GeneratedPost) error {
	hashtags, err := json.Marshal(post.Hashtags)
	if err != nil {
		return fmt.Errorf("marshal hashtags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO generated_posts
			(id, profile_id, title, full_text, image_url, network, objective, hashtags, idea, approach,
			 image_prompt, image_provider, text_provider, overlay_text, editor_deep_link,
			 used_fallback, fallback_level, requires_editing, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, profileID, post.Title, post.FullText, post.ImageURL, string(post.Network), string(post.Objective),
		string(hashtags), post.Idea, string(post.Approach), post.ImagePrompt, post.ImageProvider, post.TextProvider,
		post.OverlayText, post.EditorDeepLink, boolToInt(post.UsedFallback), post.FallbackLevel,
		boolToInt(post.RequiresEditing), post.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (s *Storage) GetPost(ctx context.Context, id string) (pipeline.GeneratedPost, error) {
	row := s.db.QueryRowContext(ctx, selectPostColumns+` WHERE id = ?`, id)
	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pipeline.GeneratedPost{}, ErrNotFound
	}
	if err != nil {
		return pipeline.GeneratedPost{}, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}

func (s *Storage) ListPostsByProfile(ctx context.Context, profileID string) ([]pipeline.GeneratedPost, error) {
	rows, err := s.db.QueryContext(ctx, selectPostColumns+` WHERE profile_id = ? ORDER BY created_at DESC`, profileID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []pipeline.GeneratedPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

const selectPostColumns = `
	SELECT id, title, full_text, image_url, network, objective, hashtags, idea, approach,
	       image_prompt, image_provider, text_provider, overlay_text, editor_deep_link,
	       used_fallback, fallback_level, requires_editing, created_at
	FROM generated_posts`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (pipeline.GeneratedPost, error) {
	var post pipeline.GeneratedPost
	var network, objective, approach, hashtags string
	var usedFallback, requiresEditing int
	err := row.Scan(&post.ID, &post.Title, &post.FullText, &post.ImageURL, &network, &objective,
		&hashtags, &post.Idea, &approach, &post.ImagePrompt, &post.ImageProvider, &post.TextProvider,
		&post.OverlayText, &post.EditorDeepLink, &usedFallback, &post.FallbackLevel, &requiresEditing, &post.CreatedAt)
	if err != nil {
		return pipeline.GeneratedPost{}, err
	}
	post.Network = profile.Network(network)
	post.Objective = profile.Objective(objective)
	post.Approach = profile.Approach(approach)
	post.UsedFallback = usedFallback != 0
	post.RequiresEditing = requiresEditing != 0
	if err := json.Unmarshal([]byte(hashtags), &post.Hashtags); err != nil {
		return pipeline.GeneratedPost{}, fmt.Errorf("unmarshal hashtags: %w", err)
	}
	return post, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
