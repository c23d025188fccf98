// Package keywordscore computes the keyword-positioning score consumed
// by the composite score calculator. The score blends lexical
// positioning signals with the semantic-relevance bonus from AI
// enrichment; without enrichment a fixed fallback bonus keeps the scale
// comparable.
package keywordscore

import (
	"math"

	"github.com/prwerk/seoscore/internal/domain/model"
)

// Sub-contribution caps.
const (
	headlineBonus       = 15.0
	firstParagraphBonus = 15.0
	maxDensityScore     = 20.0
	maxDistribution     = 15.0
	maxNaturalFlow      = 10.0
	maxAIBonus          = 25.0
	fallbackBonus       = 10.0
	maxScore            = 100.0
)

// Density bands in percent of total words.
const (
	idealDensityMin = 0.5
	idealDensityMax = 3.0
	looseDensityMin = 0.3
	looseDensityMax = 4.0
)

// Scorer computes KeywordScoreData. Stateless and safe for concurrent use.
type Scorer struct{}

// New creates a new Scorer.
func New() *Scorer {
	return &Scorer{}
}

// Calculate derives the positioning score from the keyword metrics.
// Contributions are averaged across keywords so that one- and
// two-keyword sets score on the same scale.
func (s *Scorer) Calculate(metrics []model.KeywordMetrics) model.KeywordScoreData {
	if len(metrics) == 0 {
		return model.KeywordScoreData{}
	}

	var bd model.KeywordScoreBreakdown
	hasAI := false
	relevanceSum := 0.0

	for _, m := range metrics {
		if m.InHeadline {
			bd.HeadlineBonus += headlineBonus
		}
		if m.InFirstParagraph {
			bd.FirstParagraphBonus += firstParagraphBonus
		}
		bd.DensityScore += densityScore(m.Density)
		bd.DistributionScore += distributionScore(m.Distribution)
		bd.NaturalFlowScore += naturalFlowScore(m)

		if m.Enrichment != nil && m.Enrichment.AIAnalyzed {
			hasAI = true
			relevanceSum += float64(m.Enrichment.SemanticRelevance)
		}
	}

	n := float64(len(metrics))
	bd.HeadlineBonus /= n
	bd.FirstParagraphBonus /= n
	bd.DensityScore /= n
	bd.DistributionScore /= n
	bd.NaturalFlowScore /= n

	base := bd.HeadlineBonus + bd.FirstParagraphBonus + bd.DensityScore +
		bd.DistributionScore + bd.NaturalFlowScore

	aiBonus := 0.0
	if hasAI {
		aiBonus = relevanceSum / n / 100 * maxAIBonus
	} else {
		bd.FallbackBonus = fallbackBonus
	}

	total := math.Min(maxScore, base+aiBonus+bd.FallbackBonus)

	return model.KeywordScoreData{
		BaseScore:     round2(base),
		AIBonus:       round2(aiBonus),
		TotalScore:    round2(total),
		HasAIAnalysis: hasAI,
		Breakdown:     bd,
	}
}

func densityScore(density float64) float64 {
	switch {
	case density >= idealDensityMin && density <= idealDensityMax:
		return maxDensityScore
	case density >= looseDensityMin && density <= looseDensityMax:
		return maxDensityScore / 2
	default:
		return 0
	}
}

func distributionScore(d model.Distribution) float64 {
	switch d {
	case model.DistributionGood:
		return maxDistribution
	case model.DistributionMedium:
		return maxDistribution / 2
	default:
		return 0
	}
}

// naturalFlowScore rewards keyword use below the stuffing threshold.
func naturalFlowScore(m model.KeywordMetrics) float64 {
	if m.Occurrences == 0 {
		return 0
	}
	if m.Density > idealDensityMax {
		return 0
	}
	return maxNaturalFlow
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
