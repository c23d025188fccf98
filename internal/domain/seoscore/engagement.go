package seoscore

import (
	"regexp"
	"strings"

	"github.com/prwerk/seoscore/internal/domain/markup"
)

// Engagement contributions on top of the base score.
const (
	engagementBase  = 40
	quoteBonus      = 30
	ctaBonus        = 30
	activeVerbBonus = 20
	comboBonus      = 10
)

var (
	attributionRe = regexp.MustCompile(`(?i)\b(sagt|sagte|erklärt|erklärte|betont|betonte|kommentiert|kommentierte|ergänzt|ergänzte)\b`)
	contactRe     = regexp.MustCompile(`(?i)[\p{L}\p{N}._%+-]+@[\p{L}\p{N}.-]+\.\p{L}{2,}|\+?\d[\d\s/()-]{6,}\d`)
	urlRe         = regexp.MustCompile(`(?i)\bhttps?://\S+|\bwww\.\S+`)
)

const quoteMarks = "\"„“”»«"

// scoreEngagement rates quote use, call-to-action signals and verb
// choice. Quotes and CTAs are detected both from markup and from plain
// text patterns, since releases arrive in either form.
func (c *Calculator) scoreEngagement(in Input, recs *[]string) int {
	score := engagementBase
	doc := markup.Parse(in.Text)
	plain := doc.Text()

	hasQuote := in.PRMetrics.QuoteCount > 0 || textualQuote(plain)
	if hasQuote {
		score += quoteBonus
	} else {
		*recs = append(*recs, "Fügen Sie ein Zitat hinzu – Zitate schaffen Vertrauen und Zitierfähigkeit.")
	}

	hasCTA := doc.HasCTAElement() || in.PRMetrics.HasLearnMore ||
		contactRe.MatchString(plain) || urlRe.MatchString(plain)
	if hasCTA {
		score += ctaBonus
	} else {
		*recs = append(*recs, "Ergänzen Sie eine Handlungsaufforderung, etwa einen Link oder Kontaktdaten.")
	}

	if in.PRMetrics.HasActionVerbs || in.PRMetrics.HeadlineHasActiveVerb {
		score += activeVerbBonus
	}
	if hasQuote && hasCTA {
		score += comboBonus
	}

	return clamp(score, 0, 100)
}

// textualQuote looks for quotation marks paired with an attribution verb.
func textualQuote(text string) bool {
	return strings.ContainsAny(text, quoteMarks) && attributionRe.MatchString(text)
}
