package seoscore

import (
	"fmt"
	"math"

	"github.com/prwerk/seoscore/internal/domain/model"
)

// Density bands in percent of total words, matching the positioning scorer.
const (
	minHealthyDensity = 0.5
	maxHealthyDensity = 3.0
)

// scoreKeywords converts the positioning score into the category score
// and derives both aggregate and per-keyword recommendations.
func (c *Calculator) scoreKeywords(in Input, recs *[]string) int {
	data := in.KeywordScore
	if data == nil {
		computed := c.keywordScorer.Calculate(in.KeywordMetrics)
		data = &computed
	}

	bd := data.Breakdown
	if bd.HeadlineBonus+bd.FirstParagraphBonus < 30 {
		*recs = append(*recs, "Positionieren Sie Ihre Keywords prominenter: in der Überschrift und im ersten Absatz.")
	}
	if bd.DistributionScore < 10 {
		*recs = append(*recs, "Verteilen Sie die Keywords gleichmäßiger über den gesamten Text.")
	}
	if bd.NaturalFlowScore < 5 {
		*recs = append(*recs, "Vermeiden Sie Keyword-Stuffing und schreiben Sie natürlich.")
	}
	if data.HasAIAnalysis && data.AIBonus < 20 {
		*recs = append(*recs, AIMarker+" Die semantische Relevanz der Keywords ist ausbaufähig. Verwenden Sie verwandte Begriffe.")
	}
	if !data.HasAIAnalysis && bd.FallbackBonus < 20 {
		*recs = append(*recs, "Aktualisieren Sie die KI-Analyse für eine genauere Keyword-Bewertung.")
	}

	for _, m := range in.KeywordMetrics {
		keywordRecommendations(m, recs)
	}
	tonalityRecommendations(in.KeywordMetrics, recs)

	return clamp(int(math.Round(data.TotalScore)), 0, 100)
}

// keywordRecommendations emits per-keyword advice on density, placement
// and semantic fit.
func keywordRecommendations(m model.KeywordMetrics, recs *[]string) {
	if m.Occurrences == 0 {
		*recs = append(*recs, fmt.Sprintf("Das Keyword %q kommt im Text nicht vor.", m.Keyword))
		return
	}

	if m.Density < minHealthyDensity {
		*recs = append(*recs, fmt.Sprintf("Verwenden Sie %q häufiger – die Dichte liegt unter 0,5 %%.", m.Keyword))
	} else if m.Density > maxHealthyDensity {
		*recs = append(*recs, fmt.Sprintf("Reduzieren Sie die Häufigkeit von %q – die Dichte liegt über 3 %%.", m.Keyword))
	}
	if !m.InHeadline {
		*recs = append(*recs, fmt.Sprintf("Erwähnen Sie %q in der Überschrift.", m.Keyword))
	}
	if !m.InFirstParagraph {
		*recs = append(*recs, fmt.Sprintf("Erwähnen Sie %q im ersten Absatz.", m.Keyword))
	}
	if m.Distribution == model.DistributionPoor && m.Occurrences >= 2 {
		*recs = append(*recs, fmt.Sprintf("Verteilen Sie %q gleichmäßiger über den Text.", m.Keyword))
	}
	if m.Enrichment != nil && m.Enrichment.AIAnalyzed && m.Enrichment.SemanticRelevance < 50 {
		*recs = append(*recs, fmt.Sprintf("%s %q passt semantisch nur bedingt zum Text.", AIMarker, m.Keyword))
	}
}

// tonalityRecommendations flags an audience/tonality mismatch once per pass.
func tonalityRecommendations(metrics []model.KeywordMetrics, recs *[]string) {
	b2bEmotional := false
	b2cFactual := false
	for _, m := range metrics {
		if m.Enrichment == nil {
			continue
		}
		switch {
		case m.Enrichment.TargetAudience == model.AudienceB2B && m.Enrichment.Tonality == model.TonalityEmotional:
			b2bEmotional = true
		case m.Enrichment.TargetAudience == model.AudienceB2C && m.Enrichment.Tonality == model.TonalityFactual:
			b2cFactual = true
		}
	}
	if b2bEmotional {
		*recs = append(*recs, AIMarker+" Formulieren Sie für B2B-Zielgruppen sachlicher.")
	}
	if b2cFactual {
		*recs = append(*recs, AIMarker+" Für B2C-Zielgruppen darf die Ansprache emotionaler sein.")
	}
}
