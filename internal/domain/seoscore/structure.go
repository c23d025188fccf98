package seoscore

import (
	"fmt"

	"github.com/prwerk/seoscore/internal/domain/model"
)

// Paragraph tolerance around the audience thresholds.
const (
	paragraphToleranceLow  = 0.7
	paragraphToleranceHigh = 1.3
)

// Lead length bands in characters.
const (
	leadIdealMin = 80
	leadIdealMax = 250
	leadLooseMin = 40
	leadLooseMax = 400
)

// scoreStructure rates paragraph length against the audience thresholds
// plus bullet points, subheadings and the lead length.
func (c *Calculator) scoreStructure(pr model.PRMetrics, th model.AudienceThresholds, recs *[]string) int {
	score := 0

	minLen := float64(th.MinParagraphLength)
	maxLen := float64(th.MaxParagraphLength)
	switch avg := pr.AvgParagraphLength; {
	case avg >= minLen && avg <= maxLen:
		score += 30
	case avg >= minLen*paragraphToleranceLow && avg <= maxLen*paragraphToleranceHigh:
		score += 20
	default:
		*recs = append(*recs, fmt.Sprintf("Passen Sie die Absatzlänge an: %d bis %d Zeichen pro Absatz sind für Ihre Zielgruppe ideal.",
			th.MinParagraphLength, th.MaxParagraphLength))
	}

	if pr.HasBulletPoints {
		score += 20
	} else {
		*recs = append(*recs, "Nutzen Sie Aufzählungen, um Kernaussagen hervorzuheben.")
	}

	if pr.HasSubheadings {
		score += 25
	} else {
		*recs = append(*recs, "Gliedern Sie den Text mit Zwischenüberschriften.")
	}

	switch n := pr.LeadLength; {
	case n >= leadIdealMin && n <= leadIdealMax:
		score += 25
	case n >= leadLooseMin && n <= leadLooseMax:
		score += 15
	default:
		*recs = append(*recs, "Der erste Absatz sollte 80 bis 250 Zeichen umfassen und die Kernbotschaft enthalten.")
	}

	return clamp(score, 0, 100)
}
