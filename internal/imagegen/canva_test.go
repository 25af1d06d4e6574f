package imagegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

func TestCanvaEditURLRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		imageURL string
		business string
	}{
		{"plain", "https://img.example/photo.png", "Café Aromático"},
		{"query in image url", "https://img.example/p.png?w=1080&h=1350", "Tienda & Co"},
		{"spaces and accents", "https://img.example/café con leche.png", "Peluquería Ñandú"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := CanvaEditURL(tt.imageURL, tt.business)
			assert.True(t, strings.HasPrefix(link, "https://www.canva.com/design/new?"))

			gotImage, gotBusiness, err := ParseCanvaEditURL(link)
			require.NoError(t, err)
			assert.Equal(t, tt.imageURL, gotImage)
			assert.Equal(t, tt.business, gotBusiness)
		})
	}
}

func TestCanvaTemplateURL(t *testing.T) {
	link := CanvaTemplateURL(Params{
		Network:      profile.NetworkInstagram,
		Style:        "modern",
		OverlayText:  "OFERTA ESPECIAL",
		ColorPalette: []string{"#6F4E37", "#D2B48C"},
		BusinessName: "Café Aromático",
	})

	assert.True(t, strings.HasPrefix(link, "https://www.canva.com/design/create?"))
	assert.Contains(t, link, "format=instagram")
	// Palette is flattened without # so the values survive as a query param.
	assert.Contains(t, link, "6F4E37%2CD2B48C")
}

func TestTerminalFallbackURL(t *testing.T) {
	url := TerminalFallbackURL([]string{"#6F4E37", "#D2B48C"}, profile.NetworkInstagram, "Café Aromático")

	assert.True(t, strings.HasPrefix(url, "https://via.placeholder.com/1080x1350/6F4E37/D2B48C"))
	assert.Contains(t, url, "text=")

	t.Run("empty palette uses defaults", func(t *testing.T) {
		url := TerminalFallbackURL(nil, profile.NetworkEmail, "")
		assert.Contains(t, url, "1080x1080")
		assert.Contains(t, url, "8E9196")
		assert.Contains(t, url, "9B87F5")
	})
}
