package imagegen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"sync"
	"time"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

// Params carries everything an image provider needs for one render.
type Params struct {
	Prompt       string
	Style        string
	ColorPalette []string
	AspectRatio  string
	OverlayText  string
	Network      profile.Network
	BusinessName string
}

// Result is the outcome of an image request. FallbackLevel records how deep
// the chain had to go: 0 is a primary success, 1-2 alternate providers, 3 the
// locally rendered placeholder, 4 the terminal fallback that cannot fail.
type Result struct {
	URL             string
	Prompt          string
	Provider        string
	UsedFallback    bool
	FallbackLevel   int
	RequiresEditing bool
}

// Provider generates one image for the given params. Calls may block and may
// fail; the chain decides what happens next.
type Provider interface {
	Name() string
	Generate(ctx context.Context, params Params) (string, error)
}

// LocalRenderer produces a branded placeholder image without any external
// service. Implementations should be effectively infallible.
type LocalRenderer interface {
	RenderPlaceholder(palette []string, caption string, network profile.Network, businessName string) (string, error)
}

// ErrProviderFailed marks a single provider attempt failure. The chain always
// recovers from it by advancing.
var ErrProviderFailed = errors.New("image provider failed")

// promptSuffixes enrich the base prompt with provider-specific quality
// modifiers so each provider receives a visibly different prompt.
var promptSuffixes = map[string]string{
	"dall-e":           "high quality, detailed, photorealistic",
	"stable-diffusion": "highly detailed, sharp focus, professional photography",
	"midjourney":       "vibrant colors, high resolution, trending on artstation",
}

func promptForProvider(prompt, provider string) string {
	if suffix, ok := promptSuffixes[provider]; ok {
		return prompt + ", " + suffix
	}
	return prompt
}

// SimulatedProvider stands in for a hosted image model. It fails at the
// configured rate so the fallback chain gets exercised in development, and
// returns a stock-photo search URL matching the prompt otherwise.
type SimulatedProvider struct {
	name        string
	failureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulatedProvider(name string, failureRate float64, rng *rand.Rand) *SimulatedProvider {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedProvider{name: name, failureRate: failureRate, rng: rng}
}

func (p *SimulatedProvider) Name() string { return p.name }

func (p *SimulatedProvider) Generate(ctx context.Context, params Params) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	fail := p.rng.Float64() < p.failureRate
	sig := p.rng.Intn(1000)
	p.mu.Unlock()

	if fail {
		return "", fmt.Errorf("%w: %s rejected request", ErrProviderFailed, p.name)
	}

	width, height := DimensionsForNetwork(params.Network)
	query := url.QueryEscape(params.Prompt + " " + params.Style + " " + params.OverlayText)
	return fmt.Sprintf("https://source.unsplash.com/random/%dx%d/?%s&sig=%d", width, height, query, sig), nil
}

// DefaultProviders is the production attempt order. Failure rates are only
// meaningful for the simulated providers; real integrations replace these.
func DefaultProviders(failureRate float64, rng *rand.Rand) []Provider {
	return []Provider{
		NewSimulatedProvider("dall-e", failureRate, rng),
		NewSimulatedProvider("stable-diffusion", failureRate, rng),
		NewSimulatedProvider("midjourney", failureRate, rng),
	}
}
