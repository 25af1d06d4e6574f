package imagegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

func TestAspectRatioForNetwork(t *testing.T) {
	tests := []struct {
		network profile.Network
		want    string
	}{
		{profile.NetworkInstagram, "4:5"},
		{profile.NetworkFacebook, "1.91:1"},
		{profile.NetworkTikTok, "9:16"},
		{profile.NetworkWhatsApp, "9:16"},
		{profile.NetworkEmail, "1:1"},
		{profile.Network("unknown"), "1:1"},
		{profile.Network(""), "1:1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AspectRatioForNetwork(tt.network), "network %q", tt.network)
	}
}

func TestDimensionsForNetwork(t *testing.T) {
	tests := []struct {
		network profile.Network
		width   int
		height  int
	}{
		{profile.NetworkInstagram, 1080, 1350},
		{profile.NetworkFacebook, 1200, 630},
		{profile.NetworkTikTok, 1080, 1920},
		{profile.NetworkWhatsApp, 1080, 1920},
		{profile.NetworkEmail, 1080, 1080},
		{profile.Network("unknown"), 1080, 1080},
	}

	for _, tt := range tests {
		w, h := DimensionsForNetwork(tt.network)
		assert.Equal(t, tt.width, w, "network %q width", tt.network)
		assert.Equal(t, tt.height, h, "network %q height", tt.network)
	}
}
