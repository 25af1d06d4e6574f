package imagegen

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

const terminalCaption = "Editar esta imagen"

// TerminalFallbackURL constructs the guaranteed last-resort image reference.
// Pure string assembly from the brand colors and a fixed caption: no network
// calls, no dependencies, nothing here can fail.
func TerminalFallbackURL(palette []string, network profile.Network, businessName string) string {
	primary := "8E9196"
	secondary := "9B87F5"
	if len(palette) > 0 && palette[0] != "" {
		primary = strings.TrimPrefix(palette[0], "#")
	}
	if len(palette) > 1 && palette[1] != "" {
		secondary = strings.TrimPrefix(palette[1], "#")
	}

	caption := terminalCaption
	if businessName != "" {
		caption = businessName + ": " + terminalCaption
	}

	width, height := DimensionsForNetwork(network)
	return fmt.Sprintf("https://via.placeholder.com/%dx%d/%s/%s?text=%s",
		width, height, primary, secondary, url.QueryEscape(caption))
}
