package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrQuotaExhausted is returned when a profile has no free generations left.
var ErrQuotaExhausted = errors.New("post quota exhausted")

const defaultPostQuota = 10

// ProfileRecord is a persisted business profile together with its remaining
// free-generation quota.
type ProfileRecord struct {
	ID             string
	Profile        profile.BusinessProfile
	PostsRemaining int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s *Storage) CreateProfile(ctx context.Context, p profile.BusinessProfile) (*ProfileRecord, error) {
	palette, err := json.Marshal(p.ColorPalette)
	if err != nil {
		return nil, fmt.Errorf("marshal color palette: %w", err)
	}

	id := ulid.Make().String()
	now := time.Now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO business_profiles
			(id, name, industry, description, tone, visual_style, color_palette, slogan, logo_url, posts_remaining, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.Name, p.Industry, p.Description, p.Tone, p.VisualStyle, string(palette), p.Slogan, p.Logo, defaultPostQuota, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	return &ProfileRecord{ID: id, Profile: p, PostsRemaining: defaultPostQuota, CreatedAt: now, UpdatedAt: now}, nil
}

func (s *Storage) GetProfile(ctx context.Context, id string) (*ProfileRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, industry, description, tone, visual_style, color_palette, slogan, logo_url, posts_remaining, created_at, updated_at
		FROM business_profiles WHERE id = ?`, id)

	var rec ProfileRecord
	var palette string
	err := row.Scan(&rec.ID, &rec.Profile.Name, &rec.Profile.Industry, &rec.Profile.Description,
		&rec.Profile.Tone, &rec.Profile.VisualStyle, &palette, &rec.Profile.Slogan, &rec.Profile.Logo,
		&rec.PostsRemaining, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err := json.Unmarshal([]byte(palette), &rec.Profile.ColorPalette); err != nil {
		return nil, fmt.Errorf("unmarshal color palette: %w", err)
	}
	return &rec, nil
}

// ConsumeQuota decrements the profile's remaining free generations. Callers
// invoke it after a successful run; the generation core never touches quota.
func (s *Storage) ConsumeQuota(ctx context.Context, profileID string) (remaining int, err error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE business_profiles
		SET posts_remaining = posts_remaining - 1, updated_at = ?
		WHERE id = ? AND posts_remaining > 0`,
		time.Now().UTC(), profileID,
	)
	if err != nil {
		return 0, fmt.Errorf("consume quota: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("consume quota: %w", err)
	}
	if affected == 0 {
		rec, err := s.GetProfile(ctx, profileID)
		if err != nil {
			return 0, err
		}
		if rec.PostsRemaining <= 0 {
			return 0, ErrQuotaExhausted
		}
		return rec.PostsRemaining, nil
	}

	row := s.db.QueryRowContext(ctx, `SELECT posts_remaining FROM business_profiles WHERE id = ?`, profileID)
	if err := row.Scan(&remaining); err != nil {
		return 0, fmt.Errorf("consume quota: %w", err)
	}
	return remaining, nil
}
