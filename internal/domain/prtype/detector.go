// Package prtype classifies a press release into six non-exclusive types
// and derives the type-specific scoring modifiers and audience thresholds.
package prtype

import (
	"strings"

	"github.com/prwerk/seoscore/internal/domain/markup"
	"github.com/prwerk/seoscore/internal/domain/model"
)

// Verb importance per resolved type branch.
const (
	verbImportanceFinancial = 5
	verbImportancePersonal  = 8
	verbImportanceCrisis    = 3
	verbImportanceProduct   = 25
	verbImportanceDefault   = 15
)

// Headline modifiers per resolved type branch.
const (
	headlineModifierFinancial = 10
	headlineModifierPersonal  = 8
	headlineModifierCrisis    = 12
)

// Detector classifies releases. Stateless and safe for concurrent use.
type Detector struct{}

// New creates a new Detector.
func New() *Detector {
	return &Detector{}
}

// DetectType runs the six keyword-group membership tests against the
// lowercased, tag-stripped content and title. The flags are independent;
// a release may match several groups.
func (d *Detector) DetectType(content, title string) model.PRTypeInfo {
	haystack := strings.ToLower(markup.Strip(content) + "\n" + title)

	return model.PRTypeInfo{
		Product:   matchesAny(haystack, productKeywords),
		Financial: matchesAny(haystack, financialKeywords),
		Personal:  matchesAny(haystack, personalKeywords),
		Research:  matchesAny(haystack, researchKeywords),
		Crisis:    matchesAny(haystack, crisisKeywords),
		Event:     matchesAny(haystack, eventKeywords),
	}
}

// Modifiers resolves the scoring modifiers for a release. Although the
// type flags are non-exclusive, exactly one branch applies, in this
// fixed priority order: financial/research, personal, crisis,
// product/event, default.
func (d *Detector) Modifiers(content, title string) model.TypeModifiers {
	info := d.DetectType(content, title)
	lowerTitle := strings.ToLower(title)

	switch {
	case info.Financial || info.Research:
		modifier := 0
		if strings.ContainsAny(title, "0123456789") {
			modifier = headlineModifierFinancial
		}
		return model.TypeModifiers{
			HeadlineModifier:     modifier,
			VerbImportance:       verbImportanceFinancial,
			RecommendationSuffix: " (bei Finanz- und Forschungsmeldungen zählen Zahlen und Fakten mehr als werbliche Verben)",
			Type:                 info,
		}

	case info.Personal:
		modifier := 0
		if matchesAny(lowerTitle, executiveTitleTokens) {
			modifier = headlineModifierPersonal
		}
		return model.TypeModifiers{
			HeadlineModifier:     modifier,
			VerbImportance:       verbImportancePersonal,
			RecommendationSuffix: " (bei Personalmeldungen gehören Name und Titel in die Überschrift)",
			Type:                 info,
		}

	case info.Crisis:
		modifier := 0
		if matchesAny(lowerTitle, clarifyingVerbs) {
			modifier = headlineModifierCrisis
		}
		return model.TypeModifiers{
			HeadlineModifier:     modifier,
			VerbImportance:       verbImportanceCrisis,
			RecommendationSuffix: " (Krisenkommunikation braucht klarstellende Formulierungen statt Werbesprache)",
			Type:                 info,
		}

	case info.Product || info.Event:
		return model.TypeModifiers{
			HeadlineModifier:     0,
			VerbImportance:       verbImportanceProduct,
			RecommendationSuffix: " (Produkt- und Eventmeldungen leben von aktiven Verben)",
			Type:                 info,
		}

	default:
		return model.TypeModifiers{
			HeadlineModifier:     0,
			VerbImportance:       verbImportanceDefault,
			RecommendationSuffix: "",
			Type:                 info,
		}
	}
}

// Thresholds returns the structural bounds for a target audience.
// Unknown audiences (including the empty string) get the defaults.
func (d *Detector) Thresholds(audience string) model.AudienceThresholds {
	switch audience {
	case model.AudienceB2B:
		return model.AudienceThresholds{
			MinParagraphLength:    150,
			MaxParagraphLength:    500,
			MaxSentenceComplexity: 25,
			TechnicalTermModifier: 10,
		}
	case model.AudienceB2C:
		return model.AudienceThresholds{
			MinParagraphLength:    80,
			MaxParagraphLength:    250,
			MaxSentenceComplexity: 15,
			TechnicalTermModifier: -5,
		}
	case model.AudienceConsumer:
		return model.AudienceThresholds{
			MinParagraphLength:    60,
			MaxParagraphLength:    200,
			MaxSentenceComplexity: 12,
			TechnicalTermModifier: -10,
		}
	default:
		return model.AudienceThresholds{
			MinParagraphLength:    100,
			MaxParagraphLength:    300,
			MaxSentenceComplexity: 20,
			TechnicalTermModifier: 0,
		}
	}
}

func matchesAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
