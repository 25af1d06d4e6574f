package imagegen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

// OverlayPolicy decides whether a generated image should carry marketing text
// and drafts that text. The decision is deliberately randomized so a batch of
// variants does not come out visually uniform; the probabilities are tunable
// defaults, not business rules.
type OverlayPolicy struct {
	SellChance    float64
	EducateChance float64
	DefaultChance float64

	mu  sync.Mutex
	rng *rand.Rand
}

func NewOverlayPolicy(rng *rand.Rand) *OverlayPolicy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &OverlayPolicy{
		SellChance:    0.8,
		EducateChance: 0.7,
		DefaultChance: 0.4,
		rng:           rng,
	}
}

// ShouldIncludeText reports whether the image for this objective gets a text
// overlay. Selling and educating posts carry text most of the time.
func (p *OverlayPolicy) ShouldIncludeText(objective profile.Objective) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	chance := p.DefaultChance
	switch objective {
	case profile.ObjectiveSell:
		chance = p.SellChance
	case profile.ObjectiveEducate:
		chance = p.EducateChance
	}
	return p.rng.Float64() < chance
}

// BuildOverlayText drafts a short phrase for the image, conditioned on the
// objective, with randomized numeric infill for offers.
func (p *OverlayPolicy) BuildOverlayText(objective profile.Objective, idea string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var options []string
	switch objective {
	case profile.ObjectiveSell:
		options = []string{
			fmt.Sprintf("¡%s!", strings.ToUpper(idea)),
			fmt.Sprintf("OFERTA ESPECIAL: %s", idea),
			fmt.Sprintf("NUEVO: %s", idea),
			fmt.Sprintf("DESCUENTO %d%%", p.rng.Intn(40)+10),
			fmt.Sprintf("DESDE $%d", p.rng.Intn(900)+100),
		}
	case profile.ObjectiveEducate:
		options = []string{
			fmt.Sprintf("Aprende sobre %s", idea),
			fmt.Sprintf("Guía de %s", idea),
			fmt.Sprintf("%s: Lo que debes saber", idea),
			fmt.Sprintf("Tips de %s", idea),
			fmt.Sprintf("%s explicado", idea),
		}
	case profile.ObjectiveInform:
		options = []string{
			"¿Sabías que...?",
			fmt.Sprintf("Novedades: %s", idea),
			"Información importante",
			fmt.Sprintf("Actualización: %s", idea),
			fmt.Sprintf("Datos sobre %s", idea),
		}
	case profile.ObjectiveLoyalty:
		options = []string{
			"¡Gracias por tu apoyo!",
			"Valoramos tu fidelidad",
			"Exclusivo para clientes",
			fmt.Sprintf("%s para ti", idea),
			"Apreciamos tu confianza",
		}
	case profile.ObjectiveEntertain:
		options = []string{
			fmt.Sprintf("¡Diviértete con %s!", idea),
			fmt.Sprintf("¿Te imaginas %s?", idea),
			fmt.Sprintf("%s de forma diferente", idea),
			"Momento divertido",
			fmt.Sprintf("%s + diversión", idea),
		}
	default:
		return ""
	}
	return options[p.rng.Intn(len(options))]
}
