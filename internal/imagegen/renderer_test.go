package imagegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

func TestFileRendererRenderPlaceholder(t *testing.T) {
	dir := t.TempDir()
	renderer := NewFileRenderer(dir, "/public/placeholders")

	url, err := renderer.RenderPlaceholder(
		[]string{"#6F4E37", "#D2B48C"},
		"OFERTA ESPECIAL: promoción del mes",
		profile.NetworkInstagram,
		"Café Aromático",
	)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/public/placeholders/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The PNG must exist on disk under the output directory.
	name := filepath.Base(url)
	info, err := os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestFileRendererEmptyPaletteUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	renderer := NewFileRenderer(dir, "/public/placeholders")

	url, err := renderer.RenderPlaceholder(nil, "texto", profile.NetworkEmail, "Negocio")
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestTruncateCaption(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"corto", "corto"},
		{strings.Repeat("a", 30), strings.Repeat("a", 30)},
		{strings.Repeat("a", 40), strings.Repeat("a", 30) + "..."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, truncateCaption(tt.in))
	}
}
