// Package model contains domain models passed between layers.
package model

// Distribution rates how evenly a keyword's occurrences are spread
// across the document.
type Distribution string

// Distribution ratings.
const (
	DistributionGood   Distribution = "good"
	DistributionMedium Distribution = "medium"
	DistributionPoor   Distribution = "poor"
)

// Audience labels. TargetAudience values outside this set fall back to
// the default thresholds.
const (
	AudienceB2B      = "B2B"
	AudienceB2C      = "B2C"
	AudienceConsumer = "Verbraucher"
	AudienceUnknown  = "Unbekannt"
	AudienceDefault  = "Standard"
)

// Tonality labels produced by semantic enrichment.
const (
	TonalityFactual   = "Sachlich"
	TonalityEmotional = "Emotional"
	TonalityNeutral   = "Neutral"
)

// MaxRelatedTerms caps the related-terms list carried per keyword.
const MaxRelatedTerms = 3

// Enrichment holds the semantic signals for one keyword. The struct is
// only attached to KeywordMetrics once an enrichment call has settled;
// it survives basic-metric recomputes unchanged (sticky fields).
type Enrichment struct {
	SemanticRelevance int      `json:"semantic_relevance"` // 0..100
	ContextQuality    int      `json:"context_quality"`    // 0..100
	TargetAudience    string   `json:"target_audience"`
	Tonality          string   `json:"tonality"`
	RelatedTerms      []string `json:"related_terms"`

	// AIAnalyzed is true when the values came from a successful backend
	// response, false for the neutral fallback tuple.
	AIAnalyzed bool `json:"ai_analyzed"`
}

// FallbackEnrichment returns the neutral tuple used when an enrichment
// call fails or times out.
func FallbackEnrichment() *Enrichment {
	return &Enrichment{
		SemanticRelevance: 50,
		ContextQuality:    50,
		TargetAudience:    AudienceUnknown,
		Tonality:          TonalityNeutral,
		RelatedTerms:      []string{},
		AIAnalyzed:        false,
	}
}

// Clone returns a deep copy of the enrichment data.
func (e *Enrichment) Clone() *Enrichment {
	if e == nil {
		return nil
	}
	out := *e
	out.RelatedTerms = append([]string(nil), e.RelatedTerms...)
	return &out
}

// KeywordMetrics carries the lexical metrics of one active keyword plus
// optional sticky enrichment data.
type KeywordMetrics struct {
	Keyword          string       `json:"keyword"`
	Density          float64      `json:"density"` // percent of total words
	Occurrences      int          `json:"occurrences"`
	InHeadline       bool         `json:"in_headline"`
	InFirstParagraph bool         `json:"in_first_paragraph"`
	Distribution     Distribution `json:"distribution"`

	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// Clone returns a deep copy, so callers can hand metrics across goroutine
// boundaries without sharing the enrichment slice.
func (m KeywordMetrics) Clone() KeywordMetrics {
	out := m
	out.Enrichment = m.Enrichment.Clone()
	return out
}

// PRMetrics captures structural and content metrics of the whole document.
// Recomputed per scoring pass, never stored.
type PRMetrics struct {
	HeadlineLength        int     `json:"headline_length"`
	HeadlineHasKeywords   bool    `json:"headline_has_keywords"`
	HeadlineHasActiveVerb bool    `json:"headline_has_active_verb"`
	LeadLength            int     `json:"lead_length"`
	LeadHasNumbers        bool    `json:"lead_has_numbers"`
	LeadKeywordMentions   int     `json:"lead_keyword_mentions"`
	QuoteCount            int     `json:"quote_count"`
	AvgQuoteLength        int     `json:"avg_quote_length"`
	HasActionVerbs        bool    `json:"has_action_verbs"`
	HasLearnMore          bool    `json:"has_learn_more"`
	AvgParagraphLength    float64 `json:"avg_paragraph_length"`
	HasBulletPoints       bool    `json:"has_bullet_points"`
	HasSubheadings        bool    `json:"has_subheadings"`
	NumberCount           int     `json:"number_count"`
	HasSpecificDates      bool    `json:"has_specific_dates"`
	HasCompanyNames       bool    `json:"has_company_names"`
}

// PRTypeInfo classifies a release into six non-exclusive types.
type PRTypeInfo struct {
	Product   bool `json:"product"`
	Financial bool `json:"financial"`
	Personal  bool `json:"personal"`
	Research  bool `json:"research"`
	Crisis    bool `json:"crisis"`
	Event     bool `json:"event"`
}

// Any reports whether at least one type matched.
func (t PRTypeInfo) Any() bool {
	return t.Product || t.Financial || t.Personal || t.Research || t.Crisis || t.Event
}

// TypeModifiers are the type-specific scoring adjustments derived from
// the detected release types.
type TypeModifiers struct {
	HeadlineModifier     int        `json:"headline_modifier"`
	VerbImportance       int        `json:"verb_importance"`
	RecommendationSuffix string     `json:"recommendation_suffix"`
	Type                 PRTypeInfo `json:"pr_type"`
}

// AudienceThresholds are the structural bounds applied per target audience.
type AudienceThresholds struct {
	MinParagraphLength    int `json:"min_paragraph_length"`
	MaxParagraphLength    int `json:"max_paragraph_length"`
	MaxSentenceComplexity int `json:"max_sentence_complexity"`
	TechnicalTermModifier int `json:"technical_term_modifier"`
}

// Breakdown holds the seven category scores of a scoring pass, each 0..100
// (headline floors at 40).
type Breakdown struct {
	Headline     int `json:"headline"`
	Keywords     int `json:"keywords"`
	Structure    int `json:"structure"`
	Relevance    int `json:"relevance"`
	Concreteness int `json:"concreteness"`
	Engagement   int `json:"engagement"`
	Social       int `json:"social"`
}

// KeywordScoreBreakdown details the positioning sub-contributions behind
// a keyword score.
type KeywordScoreBreakdown struct {
	HeadlineBonus       float64 `json:"headline_bonus"`
	FirstParagraphBonus float64 `json:"first_paragraph_bonus"`
	DensityScore        float64 `json:"density_score"`
	DistributionScore   float64 `json:"distribution_score"`
	NaturalFlowScore    float64 `json:"natural_flow_score"`
	FallbackBonus       float64 `json:"fallback_bonus"`
}

// KeywordScoreData is produced by the keyword-positioning collaborator.
type KeywordScoreData struct {
	BaseScore     float64               `json:"base_score"`
	AIBonus       float64               `json:"ai_bonus"`
	TotalScore    float64               `json:"total_score"`
	HasAIAnalysis bool                  `json:"has_ai_analysis"`
	Breakdown     KeywordScoreBreakdown `json:"breakdown"`
}

// Result is the outcome of one composite scoring pass.
type Result struct {
	TotalScore      int       `json:"total_score"`
	Breakdown       Breakdown `json:"breakdown"`
	Recommendations []string  `json:"recommendations"`
}
