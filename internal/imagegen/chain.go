package imagegen

import (
	"context"
	"log/slog"
	"time"
)

const (
	defaultPause = 300 * time.Millisecond

	// Fallback levels for the non-provider tiers. Provider successes use
	// their attempt index directly.
	placeholderLevel = 3
	terminalLevel    = 4
)

// Chain attempts an ordered list of image providers, then the local
// placeholder renderer, then a terminal fallback that cannot fail. Tiers are
// tried strictly in sequence: a tier only runs when every tier before it
// failed. Generate always returns a usable result.
type Chain struct {
	Providers []Provider
	Renderer  LocalRenderer

	// Pause between provider attempts. Upstream providers throttle
	// requests; the pause keeps retries inside their rate limits.
	Pause time.Duration
}

func NewChain(providers []Provider, renderer LocalRenderer) *Chain {
	return &Chain{
		Providers: providers,
		Renderer:  renderer,
		Pause:     defaultPause,
	}
}

// Generate runs the fallback chain for one image request. maxAttempts bounds
// how many provider attempts are made before falling through to the
// placeholder tier; pass 0 for the full chain. The returned result's
// FallbackLevel records the first tier that produced an image.
func (c *Chain) Generate(ctx context.Context, params Params, maxAttempts int) Result {
	if maxAttempts <= 0 {
		maxAttempts = len(c.Providers) + 1
	}

	attempts := maxAttempts
	if attempts > len(c.Providers) {
		attempts = len(c.Providers)
	}

	cancelled := false
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		provider := c.Providers[i]
		enriched := params
		enriched.Prompt = promptForProvider(params.Prompt, provider.Name())

		imageURL, err := provider.Generate(ctx, enriched)
		if err == nil {
			slog.Debug("image generated", "provider", provider.Name(), "attempt", i)
			return Result{
				URL:           imageURL,
				Prompt:        params.Prompt,
				Provider:      provider.Name(),
				UsedFallback:  i > 0,
				FallbackLevel: i,
			}
		}
		slog.Warn("image provider attempt failed", "provider", provider.Name(), "attempt", i, "error", err)

		if i < attempts-1 {
			select {
			case <-time.After(c.Pause):
			case <-ctx.Done():
				cancelled = true
			}
			if cancelled {
				break
			}
		}
	}

	// Placeholder tier: render a branded image locally with the business
	// colors and the overlay text (or a prompt excerpt) embedded.
	if !cancelled && maxAttempts > len(c.Providers) && c.Renderer != nil {
		caption := params.OverlayText
		if caption == "" {
			caption = params.Prompt
		}
		imageURL, err := c.Renderer.RenderPlaceholder(params.ColorPalette, caption, params.Network, params.BusinessName)
		if err == nil {
			slog.Info("branded placeholder image rendered", "business", params.BusinessName)
			return Result{
				URL:             imageURL,
				Prompt:          params.Prompt,
				Provider:        "placeholder",
				UsedFallback:    true,
				FallbackLevel:   placeholderLevel,
				RequiresEditing: true,
			}
		}
		slog.Error("placeholder rendering failed", "error", err)
	}

	// Terminal tier: pure string assembly, the last line of defense.
	slog.Warn("image generation exhausted all tiers, using terminal fallback", "business", params.BusinessName)
	return Result{
		URL:             TerminalFallbackURL(params.ColorPalette, params.Network, params.BusinessName),
		Prompt:          params.Prompt,
		Provider:        "fallback-terminal",
		UsedFallback:    true,
		FallbackLevel:   terminalLevel,
		RequiresEditing: true,
	}
}
