package imagegen

import (
	"fmt"
	"strings"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

var visualStyleFragments = map[string]string{
	"modern":     "modern sleek design, clean lines",
	"minimalist": "minimalist design, lots of white space, simple elements",
	"colorful":   "vibrant colors, playful elements, dynamic composition",
	"vintage":    "vintage aesthetic, retro elements, aged texture",
	"bold":       "bold graphics, strong contrast, impactful design",
}

var objectiveFragments = map[profile.Objective]string{
	profile.ObjectiveSell:      "promotional content, showcasing product or service",
	profile.ObjectiveInform:    "informative graphic, clear communication",
	profile.ObjectiveEntertain: "fun engaging content, entertaining visual",
	profile.ObjectiveLoyalty:   "customer appreciation, relationship building",
	profile.ObjectiveEducate:   "educational content, step by step visual",
}

var approachFragments = map[profile.Approach]string{
	profile.ApproachUrgency: "creating sense of urgency, limited time offer, exclusive deal",
	profile.ApproachValue:   "highlighting value proposition, benefits focused, quality emphasis",
	profile.ApproachEmotion: "emotionally engaging, creating curiosity, inspirational mood",
	profile.ApproachUnique:  "distinctive style, unique perspective, standout design",
}

// BuildPrompt composes the image prompt from the brand profile, the content
// idea and the rhetorical approach of the paired text variant.
func BuildPrompt(business profile.BusinessProfile, idea string, objective profile.Objective, overlayText string, approach profile.Approach) string {
	parts := []string{fmt.Sprintf("%s related to %s", business.Industry, idea)}

	if fragment, ok := visualStyleFragments[business.VisualStyle]; ok {
		parts = append(parts, fragment)
	}
	if fragment, ok := objectiveFragments[objective]; ok {
		parts = append(parts, fragment)
	}
	if fragment, ok := approachFragments[approach]; ok {
		parts = append(parts, fragment)
	}
	if overlayText != "" {
		parts = append(parts, fmt.Sprintf("with text overlay saying %q", overlayText))
	}

	parts = append(parts, fmt.Sprintf("for %s brand with %s tone", business.Name, business.Tone))
	prompt := strings.Join(parts, ", ")
	if business.Slogan != "" {
		prompt += fmt.Sprintf(", brand slogan: %q", business.Slogan)
	}
	return prompt
}
