package imagegen

import "github.com/jaurre/social-savvy-ai/internal/profile"

// AspectRatioForNetwork maps a social network to its optimal post ratio. The
// mapping is total: unknown networks get the square default.
func AspectRatioForNetwork(network profile.Network) string {
	switch network {
	case profile.NetworkInstagram:
		return "4:5"
	case profile.NetworkFacebook:
		return "1.91:1"
	case profile.NetworkTikTok, profile.NetworkWhatsApp:
		return "9:16"
	default:
		return "1:1"
	}
}

// DimensionsForNetwork returns pixel dimensions matching the network's aspect
// ratio, used by providers and the placeholder renderer.
func DimensionsForNetwork(network profile.Network) (width, height int) {
	switch network {
	case profile.NetworkInstagram:
		return 1080, 1350
	case profile.NetworkFacebook:
		return 1200, 630
	case profile.NetworkTikTok, profile.NetworkWhatsApp:
		return 1080, 1920
	default:
		return 1080, 1080
	}
}
