package imagegen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

const captionMaxLen = 30

// FileRenderer draws branded placeholder images to disk and returns the URL
// path they are served under.
type FileRenderer struct {
	OutputDir string
	URLPrefix string
}

func NewFileRenderer(outputDir, urlPrefix string) *FileRenderer {
	return &FileRenderer{OutputDir: outputDir, URLPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// RenderPlaceholder paints a two-tone image in the brand colors with the
// business name and a truncated caption embedded, sized for the target
// network.
func (r *FileRenderer) RenderPlaceholder(palette []string, caption string, network profile.Network, businessName string) (string, error) {
	width, height := DimensionsForNetwork(network)
	dc := gg.NewContext(width, height)

	primary, secondary := brandColors(palette)
	dc.SetHexColor(primary)
	dc.Clear()

	// Accent band across the lower third carries the text.
	bandTop := float64(height) * 2 / 3
	dc.SetHexColor(secondary)
	dc.DrawRectangle(0, bandTop, float64(width), float64(height)-bandTop)
	dc.Fill()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return "", fmt.Errorf("parse font: %w", err)
	}

	dc.SetRGB(1, 1, 1)
	if businessName != "" {
		dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: float64(width) / 14}))
		dc.DrawStringAnchored(businessName, float64(width)/2, bandTop+float64(height-int(bandTop))/3, 0.5, 0.5)
	}

	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: float64(width) / 24}))
	dc.DrawStringAnchored(truncateCaption(caption), float64(width)/2, bandTop+float64(height-int(bandTop))*2/3, 0.5, 0.5)

	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	name := fmt.Sprintf("placeholder-%s.png", uuid.NewString())
	outputPath := filepath.Join(r.OutputDir, name)
	if err := dc.SavePNG(outputPath); err != nil {
		return "", fmt.Errorf("save placeholder: %w", err)
	}

	slog.Debug("rendered placeholder image", "path", outputPath, "network", network)
	return r.URLPrefix + "/" + name, nil
}

func brandColors(palette []string) (primary, secondary string) {
	primary, secondary = "#8E9196", "#9B87F5"
	if len(palette) > 0 && palette[0] != "" {
		primary = palette[0]
	}
	if len(palette) > 1 && palette[1] != "" {
		secondary = palette[1]
	}
	return primary, secondary
}

func truncateCaption(caption string) string {
	runes := []rune(strings.TrimSpace(caption))
	if len(runes) <= captionMaxLen {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:captionMaxLen])) + "..."
}
