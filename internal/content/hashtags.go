package content

import (
	"math/rand"
	"strings"
	"unicode"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

const maxHashtags = 8

var objectiveHashtags = map[profile.Objective][]string{
	profile.ObjectiveSell:      {"oferta", "promoción", "descuento", "compraahora", "limitado"},
	profile.ObjectiveInform:    {"sabíasque", "información", "datos", "actualidad", "novedades"},
	profile.ObjectiveEntertain: {"diversión", "humor", "sonríe", "momentos", "felicidad"},
	profile.ObjectiveLoyalty:   {"gracias", "clientes", "fidelidad", "comunidad", "valoramos"},
	profile.ObjectiveEducate:   {"aprende", "conocimiento", "consejos", "tips", "educación"},
}

var approachHashtags = map[profile.Approach][]string{
	profile.ApproachUrgency: {"ultimosdías", "nopierdasesto", "apúrate", "tiempolimitado", "oportunidad"},
	profile.ApproachValue:   {"valor", "calidad", "beneficios", "inversión", "ventajas"},
	profile.ApproachEmotion: {"increíble", "asombroso", "emocionante", "inspirador", "imperdible"},
	profile.ApproachUnique:  {"único", "especial", "exclusivo", "diferentes", "personalizado"},
}

var industryHashtags = map[string][]string{
	"retail":    {"tienda", "shopping", "productos", "calidad"},
	"food":      {"comida", "foodie", "delicioso", "gastronomía"},
	"tech":      {"tecnología", "innovación", "digital", "futuro"},
	"health":    {"salud", "bienestar", "healthy", "vida"},
	"education": {"educación", "aprendizaje", "cursos", "conocimiento"},
	"services":  {"servicios", "profesional", "expertos", "soluciones"},
	"beauty":    {"belleza", "cosmética", "skin", "beauty"},
	"fashion":   {"moda", "estilo", "fashion", "tendencias"},
}

var defaultIndustryHashtags = []string{"negocio", "empresa", "servicio", "calidad"}

// GenerateHashtags combines brand, objective, approach and industry tag pools,
// deduplicates, shuffles with the provided source and caps the result at 8.
func GenerateHashtags(rng *rand.Rand, business profile.BusinessProfile, objective profile.Objective, idea string, approach profile.Approach) []string {
	tags := []string{
		slugify(business.Name),
		strings.ToLower(business.Industry),
		slugify(idea),
	}
	tags = append(tags, objectiveHashtags[objective]...)
	tags = append(tags, approachHashtags[approach]...)
	if pool, ok := industryHashtags[strings.ToLower(business.Industry)]; ok {
		tags = append(tags, pool...)
	} else {
		tags = append(tags, defaultIndustryHashtags...)
	}

	seen := make(map[string]struct{}, len(tags))
	unique := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		unique = append(unique, tag)
	}

	rng.Shuffle(len(unique), func(i, j int) {
		unique[i], unique[j] = unique[j], unique[i]
	})

	if len(unique) > maxHashtags {
		unique = unique[:maxHashtags]
	}
	return unique
}

// slugify lowercases and strips everything but letters and digits so ideas and
// business names read as single hashtags. Accented characters stay, matching
// the Spanish tag pools.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
