package content

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jaurre/social-savvy-ai/internal/profile"
)

// Copy tables for the simulated backend. The content is data, not logic: each
// objective carries a pool of titles per approach, and bodies are rendered from
// objective, approach and brand tone. All copy targets Spanish-speaking small
// businesses, matching the product audience.

func titlePool(objective profile.Objective, approach profile.Approach, business profile.BusinessProfile, idea string) []string {
	name := business.Name
	switch objective {
	case profile.ObjectiveSell:
		switch approach {
		case profile.ApproachUrgency:
			return []string{
				fmt.Sprintf("¡ÚLTIMA OPORTUNIDAD para %s!", idea),
				fmt.Sprintf("¡Solo HOY: %s con DESCUENTO!", idea),
				fmt.Sprintf("¡Se acaba el tiempo para %s!", idea),
				fmt.Sprintf("¡ÚLTIMAS 24 HORAS para %s!", idea),
				fmt.Sprintf("¡No te pierdas %s - TERMINA PRONTO!", idea),
			}
		case profile.ApproachValue:
			return []string{
				fmt.Sprintf("%s: La mejor inversión para tu negocio", idea),
				fmt.Sprintf("Descubre el valor real de %s", idea),
				fmt.Sprintf("%s: Calidad garantizada por %s", idea, name),
				fmt.Sprintf("Beneficios exclusivos con %s", idea),
				fmt.Sprintf("%s: Más por menos en %s", idea, name),
			}
		case profile.ApproachEmotion:
			return []string{
				fmt.Sprintf("¿Te imaginas disfrutar de %s?", idea),
				fmt.Sprintf("Sorpréndete con lo que %s puede hacer por ti", idea),
				fmt.Sprintf("%s: La experiencia que estabas esperando", idea),
				fmt.Sprintf("Transforma tu día con %s", idea),
				fmt.Sprintf("%s - Sensaciones únicas garantizadas", idea),
			}
		default:
			return []string{
				fmt.Sprintf("%s como NUNCA antes lo viste", idea),
				fmt.Sprintf("La propuesta más innovadora: %s", idea),
				fmt.Sprintf("%s reinventa %s", name, idea),
				fmt.Sprintf("%s exclusivo de %s", idea, name),
				fmt.Sprintf("Una perspectiva diferente sobre %s", idea),
			}
		}
	case profile.ObjectiveInform:
		switch approach {
		case profile.ApproachUrgency:
			return []string{
				fmt.Sprintf("¡IMPORTANTE! Lo que debes saber YA sobre %s", idea),
				fmt.Sprintf("Actualización URGENTE sobre %s", idea),
				fmt.Sprintf("Información de última hora: %s", idea),
				fmt.Sprintf("¡Atención! Novedades sobre %s", idea),
				fmt.Sprintf("Comunicado especial sobre %s", idea),
			}
		case profile.ApproachValue:
			return []string{
				fmt.Sprintf("Información valiosa: Todo sobre %s", idea),
				fmt.Sprintf("Datos clave que debes conocer sobre %s", idea),
				fmt.Sprintf("%s: Información que marca la diferencia", idea),
				fmt.Sprintf("Contenido premium sobre %s", idea),
				fmt.Sprintf("La guía definitiva sobre %s", idea),
			}
		case profile.ApproachEmotion:
			return []string{
				fmt.Sprintf("Lo que nadie te cuenta sobre %s", idea),
				fmt.Sprintf("Descubre los secretos detrás de %s", idea),
				fmt.Sprintf("%s: La historia completa que te sorprenderá", idea),
				fmt.Sprintf("La fascinante verdad sobre %s", idea),
				fmt.Sprintf("%s: Más allá de lo que conoces", idea),
			}
		default:
			return []string{
				fmt.Sprintf("Perspectiva única: %s según %s", idea, name),
				fmt.Sprintf("Un enfoque diferente sobre %s", idea),
				fmt.Sprintf("%s explicado como nunca antes", idea),
				fmt.Sprintf("La visión exclusiva de %s sobre %s", name, idea),
				fmt.Sprintf("%s: Análisis innovador por %s", idea, name),
			}
		}
	case profile.ObjectiveEntertain:
		switch approach {
		case profile.ApproachUrgency:
			return []string{
				fmt.Sprintf("¡No te pierdas la diversión con %s!", idea),
				fmt.Sprintf("¡Último momento para disfrutar %s!", idea),
				fmt.Sprintf("¡Rápido! %s está esperándote", idea),
				fmt.Sprintf("¡La diversión con %s termina pronto!", idea),
				fmt.Sprintf("¡Corre! %s está causando sensación", idea),
			}
		case profile.ApproachValue:
			return []string{
				fmt.Sprintf("%s: Diversión garantizada por %s", idea, name),
				fmt.Sprintf("El mejor entretenimiento: %s", idea),
				fmt.Sprintf("%s: La experiencia de entretenimiento más completa", idea),
				fmt.Sprintf("Máximo valor de entretenimiento con %s", idea),
				fmt.Sprintf("%s: Calidad de diversión asegurada", idea),
			}
		case profile.ApproachEmotion:
			return []string{
				fmt.Sprintf("¡Sonríe con %s!", idea),
				fmt.Sprintf("%s te hará el día más feliz", idea),
				fmt.Sprintf("Momentos inolvidables con %s", idea),
				fmt.Sprintf("¡Prepárate para reír con %s!", idea),
				fmt.Sprintf("%s: Emociones positivas garantizadas", idea),
			}
		default:
			return []string{
				fmt.Sprintf("%s como nunca lo habías vivido", idea),
				fmt.Sprintf("Una forma única de disfrutar %s", idea),
				fmt.Sprintf("%s: Entretenimiento reinventado por %s", idea, name),
				fmt.Sprintf("La manera diferente de experimentar %s", idea),
				fmt.Sprintf("%s: Diversión con un toque especial", idea),
			}
		}
	case profile.ObjectiveLoyalty:
		switch approach {
		case profile.ApproachUrgency:
			return []string{
				fmt.Sprintf("¡Últimos días para aprovechar %s como cliente fiel!", idea),
				fmt.Sprintf("¡Recompensa especial por tiempo limitado: %s!", idea),
				fmt.Sprintf("¡No esperes más para disfrutar %s!", idea),
				fmt.Sprintf("¡Rápido! Beneficio exclusivo para clientes: %s", idea),
				fmt.Sprintf("¡Apresúrate! %s solo para miembros leales", idea),
			}
		case profile.ApproachValue:
			return []string{
				fmt.Sprintf("%s: Nuestro agradecimiento por tu lealtad", idea),
				fmt.Sprintf("Valoramos tu fidelidad con %s", idea),
				fmt.Sprintf("%s: El beneficio que mereces por confiar en nosotros", idea),
				fmt.Sprintf("Tu lealtad vale mucho: Disfruta de %s", idea),
				fmt.Sprintf("%s premia tu confianza con %s", name, idea),
			}
		case profile.ApproachEmotion:
			return []string{
				fmt.Sprintf("Gracias por compartir el camino con %s", idea),
				fmt.Sprintf("Celebramos juntos %s", idea),
				fmt.Sprintf("%s: Construyendo lazos más fuertes", idea),
				fmt.Sprintf("%s es mejor cuando lo compartimos contigo", idea),
				fmt.Sprintf("Momentos especiales con %s y %s", idea, name),
			}
		default:
			return []string{
				fmt.Sprintf("%s: Exclusivo para nuestra comunidad", idea),
				fmt.Sprintf("Un reconocimiento único por tu fidelidad: %s", idea),
				fmt.Sprintf("%s - Creado especialmente para ti", idea),
				fmt.Sprintf("La experiencia personalizada de %s", idea),
				fmt.Sprintf("%s: Tan especial como tu relación con %s", idea, name),
			}
		}
	default: // educate
		switch approach {
		case profile.ApproachUrgency:
			return []string{
				fmt.Sprintf("¡No pierdas la oportunidad de aprender sobre %s!", idea),
				fmt.Sprintf("¡Última chance para dominar %s!", idea),
				fmt.Sprintf("¡Capacítate YA en %s!", idea),
				fmt.Sprintf("¡Tiempo limitado: Aprende todo sobre %s!", idea),
				fmt.Sprintf("¡Apresúrate a conocer los secretos de %s!", idea),
			}
		case profile.ApproachValue:
			return []string{
				fmt.Sprintf("%s: Conocimiento que transforma tu negocio", idea),
				fmt.Sprintf("Aprende %s y potencia tus resultados", idea),
				fmt.Sprintf("El valor de dominar %s", idea),
				fmt.Sprintf("Inversión inteligente: Aprende sobre %s", idea),
				fmt.Sprintf("%s: Educación de calidad por %s", idea, name),
			}
		case profile.ApproachEmotion:
			return []string{
				fmt.Sprintf("Descubre la fascinante materia de %s", idea),
				fmt.Sprintf("%s: Un viaje de aprendizaje inspirador", idea),
				fmt.Sprintf("La aventura de dominar %s", idea),
				fmt.Sprintf("%s: Conocimiento que te apasionará", idea),
				fmt.Sprintf("Enamórate del mundo de %s", idea),
			}
		default:
			return []string{
				fmt.Sprintf("%s: Método exclusivo de %s", idea, name),
				fmt.Sprintf("Aprende %s como nadie te lo había enseñado", idea),
				fmt.Sprintf("%s: Enfoque revolucionario de aprendizaje", idea),
				fmt.Sprintf("La manera diferente de entender %s", idea),
				fmt.Sprintf("%s explicado por %s: Perspectiva única", idea, name),
			}
		}
	}
}

func generateTitle(rng *rand.Rand, params Params) string {
	// Forced uniqueness swaps the whole pool for titles carrying a numeric
	// disambiguating token, so a repair pass cannot collide with the pool it
	// is repairing.
	if params.ForceUnique {
		token := rng.Intn(1000)
		options := []string{
			fmt.Sprintf("%s %d: Propuesta exclusiva", params.Idea, token),
			fmt.Sprintf("%s presenta: %s reimaginado", params.Profile.Name, params.Idea),
			fmt.Sprintf("%s - Edición especial %d", params.Idea, token),
			fmt.Sprintf("%s transforma tu visión de %s", params.Profile.Name, params.Idea),
			fmt.Sprintf("Descubre %s como nunca antes en %s", params.Idea, params.Profile.Name),
		}
		return options[rng.Intn(len(options))]
	}

	options := titlePool(params.Objective, params.Approach, params.Profile, params.Idea)
	return options[rng.Intn(len(options))]
}

func generateBody(rng *rand.Rand, params Params) (body, callToAction string) {
	business := params.Profile
	idea := params.Idea

	uniquePrefix := ""
	if params.ForceUnique {
		uniquePrefix = fmt.Sprintf("En %s tenemos una propuesta completamente distinta para %s. ", business.Name, idea)
	}

	switch params.Objective {
	case profile.ObjectiveSell:
		switch params.Approach {
		case profile.ApproachUrgency:
			switch business.Tone {
			case "professional":
				body = fmt.Sprintf("%sNo pierda esta oportunidad limitada para %s. En %s ofrecemos esta solución exclusiva solo por tiempo limitado. %s", uniquePrefix, idea, business.Name, business.Description)
			case "funny":
				body = fmt.Sprintf("%s¡Corre, vuela, teletranspórtate! %s está disponible SOLO HOY en %s. ¡Más rápido que tu ex bloqueándote! %s", uniquePrefix, idea, business.Name, business.Description)
			case "elegant":
				body = fmt.Sprintf("%sLe invitamos a aprovechar esta exclusiva oportunidad para %s. %s presenta esta distinguida propuesta por tiempo limitado. %s", uniquePrefix, idea, business.Name, business.Description)
			default:
				body = fmt.Sprintf("%s¡Date prisa! Esta oferta especial para %s termina pronto. En %s te esperamos para brindarte una experiencia única antes que sea tarde. %s", uniquePrefix, idea, business.Name, business.Description)
			}
			callToAction = "¡No esperes más! Contáctanos AHORA mismo antes que termine esta oportunidad 🔥"
		case profile.ApproachValue:
			switch business.Tone {
			case "professional":
				body = fmt.Sprintf("%sMaximice el retorno de su inversión con %s. En %s nos enfocamos en brindar el mejor valor y calidad en cada solución. %s", uniquePrefix, idea, business.Name, business.Description)
			case "funny":
				body = fmt.Sprintf("%s¿Sabes qué es mejor que %s? ¡%s con el mejor precio-calidad! En %s te damos más por tu dinero y encima te hacemos sonreír. %s", uniquePrefix, idea, idea, business.Name, business.Description)
			case "elegant":
				body = fmt.Sprintf("%sDescubra el excepcional valor que %s aportará a su experiencia. %s se distingue por ofrecer beneficios superiores en cada propuesta. %s", uniquePrefix, idea, business.Name, business.Description)
			default:
				body = fmt.Sprintf("%sObtén el máximo beneficio con %s. En %s nos aseguramos que cada peso invertido valga realmente la pena. %s", uniquePrefix, idea, business.Name, business.Description)
			}
			callToAction = "Invierte inteligentemente. Contáctanos para conocer todos los beneficios 💎"
		case profile.ApproachEmotion, profile.ApproachUnique:
			switch business.Tone {
			case "professional":
				body = fmt.Sprintf("%sExperimente una perspectiva completamente nueva con %s. %s transforma la manera en que usted percibe este servicio, creando una experiencia memorable. %s", uniquePrefix, idea, business.Name, business.Description)
			case "funny":
				body = fmt.Sprintf("%s¿Te imaginas despertar y tener %s esperándote? En %s hacemos realidad esos sueños locos (bueno, este en particular). ¡Prepárate para sorprenderte! %s", uniquePrefix, idea, business.Name, business.Description)
			case "elegant":
				body = fmt.Sprintf("%sPermítase sentir la extraordinaria emoción que %s puede despertar. %s crea experiencias que trascienden lo ordinario y elevan sus sentidos. %s", uniquePrefix, idea, business.Name, business.Description)
			default:
				body = fmt.Sprintf("%sDescubre la emoción única que %s puede traer a tu vida. En %s nos enfocamos en crear experiencias que te hagan sentir especial. %s", uniquePrefix, idea, business.Name, business.Description)
			}
			callToAction = "¿Estás listo para vivir esta experiencia? Contacta con nosotros y descúbrelo 💫"
		default:
			switch business.Tone {
			case "professional":
				body = fmt.Sprintf("%sEn %s ofrecemos soluciones profesionales para %s. Nuestro enfoque en calidad y excelencia nos distingue en el mercado. %s", uniquePrefix, business.Name, idea, business.Description)
			case "funny":
				body = fmt.Sprintf("%s¡Hey! ¿%s te está volviendo loco? En %s tenemos justo lo que necesitas, ¡y sin que te desplumes! %s", uniquePrefix, idea, business.Name, business.Description)
			case "elegant":
				body = fmt.Sprintf("%sDescubra la experiencia exclusiva de %s con %s. Nuestra distinguida trayectoria garantiza resultados excepcionales. %s", uniquePrefix, idea, business.Name, business.Description)
			default:
				body = fmt.Sprintf("%sTe presentamos nuestra propuesta para %s. En %s nos enfocamos en brindarte la mejor experiencia. %s", uniquePrefix, idea, business.Name, business.Description)
			}
			callToAction = "¡No te lo pierdas! 🛍️ Contáctanos ahora mismo."
		}
	case profile.ObjectiveInform:
		switch params.Approach {
		case profile.ApproachUrgency:
			body = fmt.Sprintf("%sInformación importante que debes conocer AHORA sobre %s. En %s consideramos fundamental mantenerte actualizado sin demora sobre las últimas novedades en este tema.", uniquePrefix, idea, business.Name)
			callToAction = "¡Comparte esta información urgente con quien la necesite! ⚠️"
		case profile.ApproachValue:
			body = fmt.Sprintf("%sDatos valiosos sobre %s que transformarán tu perspectiva. En %s seleccionamos cuidadosamente la información más relevante y útil para nuestros seguidores.", uniquePrefix, idea, business.Name)
			callToAction = "¿Te resultó valiosa esta información? Guárdala y compártela 💎"
		default:
			body = fmt.Sprintf("%sCompartimos información relevante sobre %s. En %s consideramos fundamental mantener a nuestra comunidad actualizada sobre las últimas tendencias y desarrollos del sector.", uniquePrefix, idea, business.Name)
			callToAction = "¿Qué opinas sobre esto? Déjanos tu comentario 👇"
		}
	case profile.ObjectiveEntertain:
		if params.Approach == profile.ApproachEmotion {
			body = fmt.Sprintf("%sPrepárate para sonreír con esta historia sobre %s. En %s creemos que los momentos de alegría son esenciales en nuestro día a día.", uniquePrefix, idea, business.Name)
			callToAction = "¡Comparte esta sonrisa con alguien especial! 😊"
		} else {
			body = fmt.Sprintf("%sPresentamos un enfoque refrescante sobre %s. En %s, además de nuestra profesionalidad, sabemos apreciar los momentos ligeros que %s puede ofrecer.", uniquePrefix, idea, business.Name, idea)
			callToAction = "¡Etiqueta a alguien con quien disfrutarías esto! 👯"
		}
	case profile.ObjectiveLoyalty:
		if params.Approach == profile.ApproachValue {
			body = fmt.Sprintf("%sTu lealtad tiene un valor incalculable para nosotros. Por eso, en %s queremos agradecerte con %s, una muestra de nuestro compromiso contigo.", uniquePrefix, business.Name, idea)
			callToAction = "Eres parte importante de nuestra historia. ¡Gracias por elegirnos! ❤️"
		} else {
			body = fmt.Sprintf("%sAgradecemos su continua confianza en relación a %s. En %s valoramos profundamente cada oportunidad de servirle y construir una relación duradera.", uniquePrefix, idea, business.Name)
			callToAction = "¿Cuál ha sido tu experiencia favorita con nosotros? Cuéntanos 💬"
		}
	case profile.ObjectiveEducate:
		if params.Approach == profile.ApproachUnique {
			body = fmt.Sprintf("%sTe presentamos una perspectiva única sobre %s. En %s hemos desarrollado un método exclusivo para entender y aplicar este conocimiento de manera efectiva.", uniquePrefix, idea, business.Name)
			callToAction = fmt.Sprintf("¿Qué otros aspectos de %s te gustaría aprender? Dinos en comentarios 🧠", idea)
		} else {
			body = fmt.Sprintf("%sCompartimos conocimientos fundamentales sobre %s. %s está comprometido con la excelencia educativa y el desarrollo de competencias en nuestra área de especialización.", uniquePrefix, idea, business.Name)
			callToAction = "¿Te resultó útil esta información? Guárdala para consultarla después 📌"
		}
	default:
		body = fmt.Sprintf("%s%s es importante para nosotros en %s. %s", uniquePrefix, idea, business.Name, business.Description)
		callToAction = "¡Contáctanos para más información!"
	}

	return adaptBodyToNetwork(body, params.Network, business), callToAction
}

// adaptBodyToNetwork trims or extends the body for the target platform: short
// copy for visual feeds, slogan appended for messaging, formal greeting for
// email.
func adaptBodyToNetwork(body string, network profile.Network, business profile.BusinessProfile) string {
	switch network {
	case profile.NetworkInstagram, profile.NetworkTikTok:
		sentences := strings.SplitAfterN(body, ".", 3)
		if len(sentences) == 3 {
			return strings.TrimSpace(sentences[0] + sentences[1])
		}
		return body
	case profile.NetworkWhatsApp:
		if business.Slogan != "" {
			return body + " " + business.Slogan
		}
		return body
	case profile.NetworkEmail:
		out := "Estimado/a cliente,\n\n" + body
		if business.Slogan != "" {
			out += "\n\n" + business.Slogan
		}
		return out
	default:
		return body
	}
}
