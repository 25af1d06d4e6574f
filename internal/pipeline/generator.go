package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jaurre/social-savvy-ai/internal/content"
	"github.com/jaurre/social-savvy-ai/internal/imagegen"
	"github.com/jaurre/social-savvy-ai/internal/profile"
)

// ErrTextGeneration is returned when the text backend fails and the run cannot
// produce a complete post list. Once images start, failures no longer abort.
var ErrTextGeneration = errors.New("text generation failed")

// Generator sequences text generation, the variability repair pass, the image
// fallback chain and post assembly. One call, one complete post list.
type Generator struct {
	Text      content.TextBackend
	Images    *imagegen.Chain
	Overlay   *imagegen.OverlayPolicy
	Assembler Assembler

	// ImagePause separates image dispatches between variants. Image
	// generation runs strictly sequentially; upstream providers throttle.
	ImagePause time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGenerator(text content.TextBackend, images *imagegen.Chain, overlay *imagegen.OverlayPolicy, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		Text:       text,
		Images:     images,
		Overlay:    overlay,
		Assembler:  NewAssembler(),
		ImagePause: 500 * time.Millisecond,
		rng:        rng,
	}
}

// Generate produces req.VariantCount ready-to-publish posts, reporting progress
// at named checkpoints via onProgress (nil is allowed). Only profile validation
// failures and text backend failures abort the run; every image failure is
// degraded into a usable fallback result.
func (g *Generator) Generate(ctx context.Context, req Request, onProgress func(Progress)) ([]GeneratedPost, error) {
	report := func(p Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	// Validation happens before any backend call is issued.
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}
	n := req.VariantCount
	if n <= 0 {
		n = 3
	}

	report(Progress{Percent: 0, Status: "Iniciando generación..."})
	report(Progress{Percent: 10, Status: "Generando textos variados..."})

	variants, err := g.generateVariants(ctx, req, n)
	if err != nil {
		return nil, err
	}

	if !content.EnsureVariability(variants) {
		report(Progress{Percent: 20, Status: "Mejorando variabilidad entre versiones..."})
		idx := g.randIntn(n)
		repaired, err := g.Text.Complete(ctx, content.Params{
			Profile:     req.Profile,
			Idea:        req.Idea,
			Objective:   req.Objective,
			Network:     req.Network,
			Approach:    profile.ApproachUnique,
			ForceUnique: true,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: repair pass: %v", ErrTextGeneration, err)
		}
		// One repair attempt only; the result is accepted as-is.
		variants[idx] = repaired
	}

	report(Progress{Percent: 30, Status: "Generando imágenes personalizadas..."})

	posts := make([]GeneratedPost, 0, n)
	for i, variant := range variants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report(Progress{
			Percent: 30 + (i*60)/n,
			Status:  fmt.Sprintf("Generando versión %d...", i+1),
		})

		overlayText := ""
		if g.Overlay.ShouldIncludeText(req.Objective) {
			overlayText = g.Overlay.BuildOverlayText(req.Objective, req.Idea)
		}

		prompt := imagegen.BuildPrompt(req.Profile, req.Idea, req.Objective, overlayText, variant.Approach)
		params := imagegen.Params{
			Prompt:       prompt,
			Style:        req.Profile.VisualStyle,
			ColorPalette: req.Profile.ColorPalette,
			AspectRatio:  imagegen.AspectRatioForNetwork(req.Network),
			OverlayText:  overlayText,
			Network:      req.Network,
			BusinessName: req.Profile.Name,
		}

		image := g.safeGenerateImage(ctx, params)
		if image.FallbackLevel >= 3 {
			report(Progress{
				Percent: 30 + (i*60)/n,
				Status:  fmt.Sprintf("Generando versión %d...", i+1),
				Warning: fallbackWarning(image.FallbackLevel),
			})
		}

		posts = append(posts, g.Assembler.Assemble(variant, image, req, overlayText))

		if i < n-1 && g.ImagePause > 0 {
			select {
			case <-time.After(g.ImagePause):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	report(Progress{Percent: 95, Status: "Finalizando..."})
	report(Progress{Percent: 100, Status: "¡Generación completada!"})

	slog.Info("generation run complete",
		"business", req.Profile.Name,
		"network", req.Network,
		"objective", req.Objective,
		"posts", len(posts),
	)
	return posts, nil
}

var quickIdeas = []string{
	"promoción del mes",
	"novedades importantes",
	"consejo profesional",
	"agradecimiento especial",
}

var quickObjectives = []profile.Objective{
	profile.ObjectiveSell,
	profile.ObjectiveInform,
	profile.ObjectiveEducate,
}

// QuickGenerate is the one-click path for callers with nothing specific to
// post: it synthesizes a request with a random idea and objective, produces a
// single post, and otherwise runs the identical pipeline.
func (g *Generator) QuickGenerate(ctx context.Context, business profile.BusinessProfile, network profile.Network, onProgress func(Progress)) ([]GeneratedPost, error) {
	req := Request{
		Profile:      business,
		Idea:         quickIdeas[g.randIntn(len(quickIdeas))],
		Objective:    quickObjectives[g.randIntn(len(quickObjectives))],
		Network:      network,
		VariantCount: 1,
	}
	return g.Generate(ctx, req, onProgress)
}

// generateVariants issues n independent text calls, each with a distinct
// approach. Variants are independent, so the calls run concurrently.
func (g *Generator) generateVariants(ctx context.Context, req Request, n int) ([]content.Variant, error) {
	variants := make([]content.Variant, n)
	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		group.Go(func() error {
			variant, err := g.Text.Complete(groupCtx, content.Params{
				Profile:   req.Profile,
				Idea:      req.Idea,
				Objective: req.Objective,
				Network:   req.Network,
				Approach:  content.ApproachForIndex(i),
			})
			if err != nil {
				return fmt.Errorf("%w: variant %d: %v", ErrTextGeneration, i, err)
			}
			variants[i] = variant
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return variants, nil
}

// safeGenerateImage shields the run from the chain itself misbehaving. The
// chain is designed never to fail, but a panic here must not lose the whole
// batch; it degrades into a terminal fallback result instead.
func (g *Generator) safeGenerateImage(ctx context.Context, params imagegen.Params) (result imagegen.Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("image chain panicked, synthesizing terminal fallback", "panic", r)
			result = imagegen.Result{
				URL:             imagegen.TerminalFallbackURL(params.ColorPalette, params.Network, params.BusinessName),
				Prompt:          params.Prompt,
				Provider:        "error-fallback",
				UsedFallback:    true,
				FallbackLevel:   4,
				RequiresEditing: true,
			}
		}
	}()
	return g.Images.Generate(ctx, params, 0)
}

func (g *Generator) randIntn(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func fallbackWarning(level int) string {
	switch {
	case level >= 4:
		return "Error al generar imagen. Se usó plantilla básica; edítala en Canva."
	case level == 3:
		return "Se creó una imagen de respaldo con tu marca que puedes editar."
	default:
		return ""
	}
}
