package pipeline

import (
	"time"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

// Request is the immutable input for one generation run.
type Request struct {
	Profile      profile.BusinessProfile
	Idea         string
	Objective    profile.Objective
	Network      profile.Network
	VariantCount int
}

// Progress is one checkpoint of a long-running generation. Percent is
// monotonically increasing 0-100. Warning carries a user-facing notice when a
// variant had to fall back to a degraded image.
type Progress struct {
	Percent int
	Status  string
	Warning string
}

// GeneratedPost is one ready-to-publish post variant. Immutable once returned;
// the caller owns its lifecycle.
type GeneratedPost struct {
	ID              string
	Title           string
	ImageURL        string
	FullText        string
	Network         profile.Network
	Objective       profile.Objective
	Hashtags        []string
	Idea            string
	CreatedAt       time.Time
	Approach        profile.Approach
	ImagePrompt     string
	ImageProvider   string
	TextProvider    string
	OverlayText     string
	EditorDeepLink  string
	UsedFallback    bool
	FallbackLevel   int
	RequiresEditing bool
}
