package content

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

// Params carries everything a text backend needs to produce one variant.
type Params struct {
	Profile     profile.BusinessProfile
	Idea        string
	Objective   profile.Objective
	Network     profile.Network
	Approach    profile.Approach
	ForceUnique bool
}

// Variant is one complete text rendering of an idea. Never mutated after
// creation.
type Variant struct {
	Title        string
	Body         string
	CallToAction string
	Hashtags     []string
	Provider     string
	Approach     profile.Approach
}

// TextBackend produces a complete text bundle for a post. Implementations may
// block and may fail; callers decide how failures propagate.
type TextBackend interface {
	Complete(ctx context.Context, params Params) (Variant, error)
}

var textProviders = []string{"ChatGPT", "Gemini", "DeepSeek", "Microsoft Copilot"}

// SimulatedBackend renders variants from the built-in copy tables instead of
// calling a hosted model. It stands in for real providers in development and
// tests.
type SimulatedBackend struct {
	// Latency is an artificial delay per call, honoring ctx cancellation.
	Latency time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedBackend returns a backend seeded from the given source. Pass a
// fixed seed for deterministic output in tests.
func NewSimulatedBackend(rng *rand.Rand) *SimulatedBackend {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedBackend{rng: rng}
}

func (b *SimulatedBackend) Complete(ctx context.Context, params Params) (Variant, error) {
	if b.Latency > 0 {
		select {
		case <-time.After(b.Latency):
		case <-ctx.Done():
			return Variant{}, ctx.Err()
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	hashtags := GenerateHashtags(b.rng, params.Profile, params.Objective, params.Idea, params.Approach)
	title := generateTitle(b.rng, params)
	body, cta := generateBody(b.rng, params)
	provider := textProviders[b.rng.Intn(len(textProviders))]

	slog.Debug("simulated text variant generated",
		"business", params.Profile.Name,
		"objective", params.Objective,
		"approach", params.Approach,
		"provider", provider,
		"hashtags", len(hashtags),
	)

	return Variant{
		Title:        title,
		Body:         body,
		CallToAction: cta,
		Hashtags:     hashtags,
		Provider:     provider,
		Approach:     params.Approach,
	}, nil
}

// ApproachForIndex assigns a rhetorical approach to the variant at position i,
// cycling through the default approaches when more variants are requested.
func ApproachForIndex(i int) profile.Approach {
	return profile.DefaultApproaches[i%len(profile.DefaultApproaches)]
}

