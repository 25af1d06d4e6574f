package imagegen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

type stubProvider struct {
	name  string
	url   string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Generate(ctx context.Context, params Params) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.url, nil
}

type stubRenderer struct {
	url   string
	err   error
	calls int
}

func (r *stubRenderer) RenderPlaceholder(palette []string, caption string, network profile.Network, businessName string) (string, error) {
	r.calls++
	if r.err != nil {
		return "", r.err
	}
	return r.url, nil
}

func testParams() Params {
	return Params{
		Prompt:       "un café humeante",
		ColorPalette: []string{"#6F4E37", "#D2B48C"},
		Network:      profile.NetworkInstagram,
		BusinessName: "Café Aromático",
	}
}

func TestChainFirstProviderSucceeds(t *testing.T) {
	first := &stubProvider{name: "dall-e", url: "https://img.example/1.png"}
	second := &stubProvider{name: "stable-diffusion", url: "https://img.example/2.png"}
	chain := NewChain([]Provider{first, second}, &stubRenderer{url: "/p.png"})
	chain.Pause = 0

	result := chain.Generate(context.Background(), testParams(), 0)

	assert.Equal(t, "https://img.example/1.png", result.URL)
	assert.Equal(t, "dall-e", result.Provider)
	assert.Equal(t, 0, result.FallbackLevel)
	assert.False(t, result.UsedFallback)
	assert.False(t, result.RequiresEditing)
	assert.Equal(t, 0, second.calls, "later tiers must not run after a success")
}

func TestChainAdvancesThroughProviders(t *testing.T) {
	first := &stubProvider{name: "dall-e", err: ErrProviderFailed}
	second := &stubProvider{name: "stable-diffusion", err: ErrProviderFailed}
	third := &stubProvider{name: "midjourney", url: "https://img.example/3.png"}
	chain := NewChain([]Provider{first, second, third}, &stubRenderer{url: "/p.png"})
	chain.Pause = 0

	result := chain.Generate(context.Background(), testParams(), 0)

	assert.Equal(t, "midjourney", result.Provider)
	assert.Equal(t, 2, result.FallbackLevel)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestChainFallsBackToPlaceholder(t *testing.T) {
	failing := &stubProvider{name: "dall-e", err: ErrProviderFailed}
	renderer := &stubRenderer{url: "/public/placeholders/x.png"}
	chain := NewChain([]Provider{failing, failing, failing}, renderer)
	chain.Pause = 0

	result := chain.Generate(context.Background(), testParams(), 0)

	assert.Equal(t, "placeholder", result.Provider)
	assert.Equal(t, 3, result.FallbackLevel)
	assert.True(t, result.UsedFallback)
	assert.True(t, result.RequiresEditing)
	assert.Equal(t, 1, renderer.calls)
}

func TestChainTerminalFallbackNeverFails(t *testing.T) {
	failing := &stubProvider{name: "dall-e", err: errors.New("boom")}
	renderer := &stubRenderer{err: errors.New("render failed")}
	chain := NewChain([]Provider{failing}, renderer)
	chain.Pause = 0

	result := chain.Generate(context.Background(), testParams(), 0)

	assert.Equal(t, "fallback-terminal", result.Provider)
	assert.Equal(t, 4, result.FallbackLevel)
	assert.True(t, result.UsedFallback)
	assert.True(t, result.RequiresEditing)
	assert.NotEmpty(t, result.URL)
}

func TestChainNilRendererStillReturnsTerminal(t *testing.T) {
	failing := &stubProvider{name: "dall-e", err: ErrProviderFailed}
	chain := NewChain([]Provider{failing}, nil)
	chain.Pause = 0

	result := chain.Generate(context.Background(), testParams(), 0)

	assert.Equal(t, "fallback-terminal", result.Provider)
	assert.Equal(t, 4, result.FallbackLevel)
}

func TestChainMaxAttemptsLimitsProviders(t *testing.T) {
	first := &stubProvider{name: "dall-e", err: ErrProviderFailed}
	second := &stubProvider{name: "stable-diffusion", url: "https://img.example/2.png"}
	renderer := &stubRenderer{url: "/p.png"}
	chain := NewChain([]Provider{first, second}, renderer)
	chain.Pause = 0

	// One attempt only: the second provider never runs and the placeholder
	// tier is skipped too, leaving the terminal fallback.
	result := chain.Generate(context.Background(), testParams(), 1)

	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
	assert.Equal(t, 0, renderer.calls)
	assert.Equal(t, "fallback-terminal", result.Provider)
	assert.Equal(t, 4, result.FallbackLevel)
}

func TestChainCancelledContextGoesTerminal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &stubProvider{name: "dall-e", url: "https://img.example/1.png"}
	chain := NewChain([]Provider{provider}, &stubRenderer{url: "/p.png"})
	chain.Pause = 0

	result := chain.Generate(ctx, testParams(), 0)

	assert.Equal(t, 0, provider.calls)
	assert.Equal(t, "fallback-terminal", result.Provider)
	assert.Equal(t, 4, result.FallbackLevel)
}
