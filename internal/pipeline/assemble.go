package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jaurre/social-savvy-ai/internal/content"
	"github.com/jaurre/social-savvy-ai/internal/imagegen"
)

// Assembler combines a text variant and an image result into a final post
// record. Pure except for the injectable ID and clock sources, which tests
// pin for deterministic output.
type Assembler struct {
	NewID func() string
	Now   func() time.Time
}

func NewAssembler() Assembler {
	return Assembler{
		NewID: uuid.NewString,
		Now:   time.Now,
	}
}

// Assemble pairs one variant with its image. overlayText is the phrase chosen
// for the image, empty when the overlay policy declined.
func (a Assembler) Assemble(variant content.Variant, image imagegen.Result, req Request, overlayText string) GeneratedPost {
	// A terminal fallback image is not worth touching up; the editor link
	// starts a fresh branded design instead.
	editorLink := imagegen.CanvaEditURL(image.URL, req.Profile.Name)
	if image.FallbackLevel >= 4 {
		editorLink = imagegen.CanvaTemplateURL(imagegen.Params{
			Style:        req.Profile.VisualStyle,
			ColorPalette: req.Profile.ColorPalette,
			OverlayText:  overlayText,
			Network:      req.Network,
			BusinessName: req.Profile.Name,
		})
	}

	return GeneratedPost{
		ID:              a.NewID(),
		Title:           variant.Title,
		ImageURL:        image.URL,
		FullText:        fullText(variant),
		Network:         req.Network,
		Objective:       req.Objective,
		Hashtags:        variant.Hashtags,
		Idea:            req.Idea,
		CreatedAt:       a.Now(),
		Approach:        variant.Approach,
		ImagePrompt:     image.Prompt,
		ImageProvider:   image.Provider,
		TextProvider:    variant.Provider,
		OverlayText:     overlayText,
		EditorDeepLink:  editorLink,
		UsedFallback:    image.UsedFallback,
		FallbackLevel:   image.FallbackLevel,
		RequiresEditing: image.RequiresEditing || image.FallbackLevel >= 3,
	}
}

func fullText(variant content.Variant) string {
	tags := make([]string, len(variant.Hashtags))
	for i, tag := range variant.Hashtags {
		tags[i] = "#" + tag
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s",
		variant.Title, variant.Body, variant.CallToAction, strings.Join(tags, " "))
}
