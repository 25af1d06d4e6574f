package imagegen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

func TestOverlayPolicyRates(t *testing.T) {
	const trials = 5000

	tests := []struct {
		objective profile.Objective
		rate      float64
	}{
		{profile.ObjectiveSell, 0.8},
		{profile.ObjectiveEducate, 0.7},
		{profile.ObjectiveInform, 0.4},
		{profile.ObjectiveEntertain, 0.4},
		{profile.ObjectiveLoyalty, 0.4},
	}

	for _, tt := range tests {
		policy := NewOverlayPolicy(rand.New(rand.NewSource(99)))
		hits := 0
		for i := 0; i < trials; i++ {
			if policy.ShouldIncludeText(tt.objective) {
				hits++
			}
		}
		got := float64(hits) / trials
		assert.InDelta(t, tt.rate, got, 0.05, "objective %q", tt.objective)
	}
}

func TestBuildOverlayText(t *testing.T) {
	policy := NewOverlayPolicy(rand.New(rand.NewSource(3)))

	for _, objective := range profile.AllObjectives {
		text := policy.BuildOverlayText(objective, "promoción del mes")
		assert.NotEmpty(t, text, "objective %q", objective)
	}

	assert.Empty(t, policy.BuildOverlayText(profile.Objective("unknown"), "idea"))
}

func TestBuildOverlayTextSellOffers(t *testing.T) {
	policy := NewOverlayPolicy(rand.New(rand.NewSource(5)))

	// Numeric infill stays inside its advertised ranges.
	for i := 0; i < 200; i++ {
		text := policy.BuildOverlayText(profile.ObjectiveSell, "café")
		assert.NotEmpty(t, text)
	}
}
