package profile

import (
	"errors"
	"fmt"
	"strings"
)

type Network string

const (
	NetworkInstagram Network = "instagram"
	NetworkFacebook  Network = "facebook"
	NetworkWhatsApp  Network = "whatsapp"
	NetworkTikTok    Network = "tiktok"
	NetworkEmail     Network = "email"
)

var AllNetworks = []Network{
	NetworkInstagram,
	NetworkFacebook,
	NetworkWhatsApp,
	NetworkTikTok,
	NetworkEmail,
}

type Objective string

const (
	ObjectiveSell      Objective = "sell"
	ObjectiveInform    Objective = "inform"
	ObjectiveEntertain Objective = "entertain"
	ObjectiveLoyalty   Objective = "loyalty"
	ObjectiveEducate   Objective = "educate"
)

var AllObjectives = []Objective{
	ObjectiveSell,
	ObjectiveInform,
	ObjectiveEntertain,
	ObjectiveLoyalty,
	ObjectiveEducate,
}

// Approach is the rhetorical angle used to diversify generated variants.
type Approach string

const (
	ApproachUrgency Approach = "urgency"
	ApproachValue   Approach = "value"
	ApproachEmotion Approach = "emotion"
	ApproachUnique  Approach = "unique"
)

// DefaultApproaches are assigned to variants in order, cycling when more
// variants than approaches are requested.
var DefaultApproaches = []Approach{
	ApproachUrgency,
	ApproachValue,
	ApproachEmotion,
}

// BusinessProfile describes the brand a post is generated for. It is owned by
// the caller and only read by the generation pipeline.
type BusinessProfile struct {
	Name         string
	Industry     string
	Description  string
	Tone         string
	VisualStyle  string
	ColorPalette []string
	Slogan       string
	Logo         string
}

// ErrProfileIncomplete is returned before any generation work starts when the
// profile is missing a required field.
var ErrProfileIncomplete = errors.New("business profile incomplete")

// Validate checks that every field required for generation is present.
// ColorPalette must be non-empty so fallback images can carry brand colors.
func (p BusinessProfile) Validate() error {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Industry == "" {
		missing = append(missing, "industry")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Tone == "" {
		missing = append(missing, "tone")
	}
	if p.VisualStyle == "" {
		missing = append(missing, "visual_style")
	}
	if len(p.ColorPalette) == 0 {
		missing = append(missing, "color_palette")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrProfileIncomplete, strings.Join(missing, ", "))
	}
	return nil
}

// PrimaryColor returns the first palette entry, or a neutral default when the
// palette is too short for branded rendering.
func (p BusinessProfile) PrimaryColor() string {
	if len(p.ColorPalette) > 0 && p.ColorPalette[0] != "" {
		return p.ColorPalette[0]
	}
	return "#8E9196"
}

// SecondaryColor returns the second palette entry, or a default accent.
func (p BusinessProfile) SecondaryColor() string {
	if len(p.ColorPalette) > 1 && p.ColorPalette[1] != "" {
		return p.ColorPalette[1]
	}
	return "#9B87F5"
}
