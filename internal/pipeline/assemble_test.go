package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jaurre/social-savvy-ai/internal/content"
	"github.com/jaurre/social-savvy-ai/internal/imagegen"
	"github.com/jaurre/social-savvy-ai/internal/profile"
)

func pinnedAssembler() Assembler {
	return Assembler{
		NewID: func() string { return "post-1" },
		Now:   func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestAssemble(t *testing.T) {
	variant := content.Variant{
		Title:        "Gran promoción",
		Body:         "Cuerpo del mensaje.",
		CallToAction: "¡Contáctanos!",
		Hashtags:     []string{"café", "promo"},
		Provider:     "ChatGPT",
		Approach:     profile.ApproachUrgency,
	}
	image := imagegen.Result{
		URL:           "https://img.example/1.png",
		Prompt:        "un café humeante",
		Provider:      "dall-e",
		FallbackLevel: 0,
	}
	req := Request{
		Profile:   testProfile(),
		Idea:      "promoción de café",
		Objective: profile.ObjectiveSell,
		Network:   profile.NetworkInstagram,
	}

	post := pinnedAssembler().Assemble(variant, image, req, "OFERTA ESPECIAL")

	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "Gran promoción", post.Title)
	assert.Equal(t, "https://img.example/1.png", post.ImageURL)
	assert.Equal(t, "Gran promoción\n\nCuerpo del mensaje.\n\n¡Contáctanos!\n\n#café #promo", post.FullText)
	assert.Equal(t, profile.NetworkInstagram, post.Network)
	assert.Equal(t, profile.ObjectiveSell, post.Objective)
	assert.Equal(t, "promoción de café", post.Idea)
	assert.Equal(t, time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), post.CreatedAt)
	assert.Equal(t, "OFERTA ESPECIAL", post.OverlayText)
	assert.Equal(t, "dall-e", post.ImageProvider)
	assert.Equal(t, "ChatGPT", post.TextProvider)
	assert.False(t, post.UsedFallback)
	assert.False(t, post.RequiresEditing)

	// The deep link round-trips back to the image and business name.
	gotImage, gotBusiness, err := imagegen.ParseCanvaEditURL(post.EditorDeepLink)
	assert.NoError(t, err)
	assert.Equal(t, post.ImageURL, gotImage)
	assert.Equal(t, req.Profile.Name, gotBusiness)
}

func TestAssembleRequiresEditingOnDeepFallback(t *testing.T) {
	variant := content.Variant{Title: "t", Body: "b", CallToAction: "c"}
	req := Request{Profile: testProfile(), Network: profile.NetworkInstagram}

	tests := []struct {
		name  string
		image imagegen.Result
		want  bool
	}{
		{"provider success", imagegen.Result{FallbackLevel: 0}, false},
		{"alternate provider", imagegen.Result{FallbackLevel: 2, UsedFallback: true}, false},
		{"placeholder", imagegen.Result{FallbackLevel: 3, UsedFallback: true, RequiresEditing: true}, true},
		{"terminal", imagegen.Result{FallbackLevel: 4, UsedFallback: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post := pinnedAssembler().Assemble(variant, tt.image, req, "")
			assert.Equal(t, tt.want, post.RequiresEditing)
		})
	}
}

func TestAssembleTerminalFallbackLinksTemplate(t *testing.T) {
	variant := content.Variant{Title: "t", Body: "b", CallToAction: "c"}
	req := Request{Profile: testProfile(), Network: profile.NetworkInstagram}
	image := imagegen.Result{FallbackLevel: 4, UsedFallback: true}

	post := pinnedAssembler().Assemble(variant, image, req, "OFERTA")

	assert.Contains(t, post.EditorDeepLink, "https://www.canva.com/design/create?")
	assert.Contains(t, post.EditorDeepLink, "format=instagram")
	assert.NotContains(t, post.EditorDeepLink, "imageUrl")
}

func TestAssembleDeterministic(t *testing.T) {
	variant := content.Variant{Title: "t", Body: "b", CallToAction: "c", Hashtags: []string{"x"}}
	image := imagegen.Result{URL: "https://img.example/1.png"}
	req := Request{Profile: testProfile(), Network: profile.NetworkFacebook}

	a := pinnedAssembler()
	first := a.Assemble(variant, image, req, "")
	second := a.Assemble(variant, image, req, "")
	assert.Equal(t, first, second)
}
