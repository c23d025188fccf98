package seoscore

import (
	"strings"

	"github.com/prwerk/seoscore/internal/domain/model"
)

// Headline scoring constants. The floor keeps an existing headline from
// tanking the composite; a missing headline is a content problem, not a
// zero-score problem.
const (
	headlineBase        = 60
	headlineFloor       = 40
	headlineCeil        = 100
	stuffingPenalty     = 15
	stuffingOccurrences = 2
)

// scoreHeadline rates the headline against length bands, keyword use,
// verb choice and the type-specific modifier, clamped to [40, 100].
func (c *Calculator) scoreHeadline(in Input, mods model.TypeModifiers, recs *[]string) int {
	pr := in.PRMetrics
	score := headlineBase

	switch n := pr.HeadlineLength; {
	case n >= 30 && n <= 80:
		score += 20
	case n >= 25 && n <= 90:
		score += 15
	case n >= 20 && n <= 100:
		score += 10
	default:
		score -= 10
		if n < 20 {
			*recs = append(*recs, "Die Überschrift ist zu kurz – 30 bis 80 Zeichen sind ideal.")
		} else {
			*recs = append(*recs, "Die Überschrift ist zu lang – 30 bis 80 Zeichen sind ideal.")
		}
	}

	if pr.HeadlineHasKeywords {
		score += 15
	} else {
		*recs = append(*recs, "Verwenden Sie Ihr wichtigstes Keyword in der Überschrift.")
	}

	if pr.HeadlineHasActiveVerb {
		score += mods.VerbImportance
	} else {
		switch {
		case mods.VerbImportance >= 15:
			*recs = append(*recs, "Beginnen Sie die Überschrift mit einem aktiven Verb."+mods.RecommendationSuffix)
		case mods.VerbImportance >= 5:
			*recs = append(*recs, "Ein aktives Verb kann die Überschrift beleben."+mods.RecommendationSuffix)
		}
	}

	score += mods.HeadlineModifier

	if headlineStuffed(in.Title, in.Keywords) {
		score -= stuffingPenalty
		*recs = append(*recs, "Vermeiden Sie Keyword-Wiederholungen in der Überschrift.")
	}

	return clamp(score, headlineFloor, headlineCeil)
}

// headlineStuffed reports whether any keyword repeats beyond the
// stuffing threshold inside the title.
func headlineStuffed(title string, keywords []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range keywords {
		k := strings.ToLower(strings.TrimSpace(kw))
		if k == "" {
			continue
		}
		if strings.Count(lower, k) > stuffingOccurrences {
			return true
		}
	}
	return false
}
