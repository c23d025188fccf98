// Package seoscore combines document metrics, keyword metrics and type
// classification into the seven-category composite score with actionable
// recommendations.
package seoscore

import (
	"math"

	"github.com/prwerk/seoscore/internal/domain/hashtag"
	"github.com/prwerk/seoscore/internal/domain/keywordscore"
	"github.com/prwerk/seoscore/internal/domain/model"
	"github.com/prwerk/seoscore/internal/domain/prtype"
)

// AIMarker prefixes every recommendation derived from semantic/AI data.
// Downstream consumers filter on the literal marker; it must stay stable.
const AIMarker = "[KI]"

// Category weights of the composite score.
const (
	weightHeadline     = 0.20
	weightKeywords     = 0.20
	weightStructure    = 0.20
	weightRelevance    = 0.15
	weightConcreteness = 0.10
	weightEngagement   = 0.10
	weightSocial       = 0.05
)

// KeywordScorer computes the keyword-positioning score.
type KeywordScorer interface {
	Calculate(metrics []model.KeywordMetrics) model.KeywordScoreData
}

// HashtagProvider detects hashtags and assesses their quality.
type HashtagProvider interface {
	Detect(text string) []string
	AssessQuality(hashtags, keywords []string) hashtag.Assessment
}

// TypeDetector derives release-type modifiers and audience thresholds.
type TypeDetector interface {
	Modifiers(content, title string) model.TypeModifiers
	Thresholds(audience string) model.AudienceThresholds
}

// Input bundles everything one scoring pass consumes.
type Input struct {
	PRMetrics      model.PRMetrics
	KeywordMetrics []model.KeywordMetrics
	Text           string
	Title          string
	Keywords       []string

	// KeywordScore is the optional precomputed positioning score. When
	// nil the calculator computes it from the keyword metrics.
	KeywordScore *model.KeywordScoreData
}

// Calculator computes the composite PR score. Stateless and safe for
// concurrent use.
type Calculator struct {
	keywordScorer KeywordScorer
	hashtags      HashtagProvider
	types         TypeDetector
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithKeywordScorer replaces the keyword-positioning collaborator.
func WithKeywordScorer(s KeywordScorer) Option {
	return func(c *Calculator) {
		if s != nil {
			c.keywordScorer = s
		}
	}
}

// WithHashtagProvider replaces the hashtag collaborator.
func WithHashtagProvider(h HashtagProvider) Option {
	return func(c *Calculator) {
		if h != nil {
			c.hashtags = h
		}
	}
}

// WithTypeDetector replaces the PR-type detector.
func WithTypeDetector(d TypeDetector) Option {
	return func(c *Calculator) {
		if d != nil {
			c.types = d
		}
	}
}

// New creates a Calculator with the default collaborators.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		keywordScorer: keywordscore.New(),
		hashtags:      hashtagLib{},
		types:         prtype.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate runs one composite scoring pass.
func (c *Calculator) Calculate(in Input) model.Result {
	if len(in.Keywords) == 0 {
		return model.Result{
			TotalScore: 0,
			Recommendations: []string{
				"Fügen Sie 1-2 Keywords hinzu, um die SEO-Bewertung zu aktivieren.",
			},
		}
	}

	mods := c.types.Modifiers(in.Text, in.Title)
	thresholds := c.types.Thresholds(dominantAudience(in.KeywordMetrics))

	var recs []string
	var bd model.Breakdown

	bd.Headline = c.scoreHeadline(in, mods, &recs)
	bd.Keywords = c.scoreKeywords(in, &recs)
	bd.Structure = c.scoreStructure(in.PRMetrics, thresholds, &recs)
	bd.Relevance = scoreRelevance(in.KeywordMetrics)
	bd.Concreteness = scoreConcreteness(in.PRMetrics, &recs)
	bd.Engagement = c.scoreEngagement(in, &recs)
	bd.Social = c.scoreSocial(in, &recs)

	total := int(math.Round(
		float64(bd.Headline)*weightHeadline +
			float64(bd.Keywords)*weightKeywords +
			float64(bd.Structure)*weightStructure +
			float64(bd.Relevance)*weightRelevance +
			float64(bd.Concreteness)*weightConcreteness +
			float64(bd.Engagement)*weightEngagement +
			float64(bd.Social)*weightSocial,
	))

	return model.Result{
		TotalScore:      clamp(total, 0, 100),
		Breakdown:       bd,
		Recommendations: recs,
	}
}

// scoreRelevance averages the context quality across keywords; keywords
// without enrichment count as the neutral 50.
func scoreRelevance(metrics []model.KeywordMetrics) int {
	if len(metrics) == 0 {
		return 50
	}
	sum := 0
	for _, m := range metrics {
		if m.Enrichment != nil {
			sum += clamp(m.Enrichment.ContextQuality, 0, 100)
		} else {
			sum += 50
		}
	}
	return int(math.Round(float64(sum) / float64(len(metrics))))
}

// scoreConcreteness rewards numbers, dates and company names.
func scoreConcreteness(pr model.PRMetrics, recs *[]string) int {
	score := 0
	if pr.NumberCount >= 2 {
		score += 40
	}
	if pr.HasSpecificDates {
		score += 30
	}
	if pr.HasCompanyNames {
		score += 30
	}
	if score == 0 {
		*recs = append(*recs, "Ergänzen Sie konkrete Zahlen, Daten und Firmennamen – das macht die Meldung glaubwürdiger.")
	}
	return clamp(score, 0, 100)
}

// dominantAudience picks the first known target audience from the
// enrichment data, falling back to the standard profile.
func dominantAudience(metrics []model.KeywordMetrics) string {
	for _, m := range metrics {
		if m.Enrichment == nil {
			continue
		}
		if a := m.Enrichment.TargetAudience; a != "" && a != model.AudienceUnknown {
			return a
		}
	}
	return model.AudienceDefault
}

// hashtagLib adapts the hashtag package to the HashtagProvider interface.
type hashtagLib struct{}

func (hashtagLib) Detect(text string) []string {
	return hashtag.Detect(text)
}

func (hashtagLib) AssessQuality(hashtags, keywords []string) hashtag.Assessment {
	return hashtag.AssessQuality(hashtags, keywords)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
