// Package keywordmetrics computes the basic lexical metrics of a keyword
// against document text and title.
package keywordmetrics

import (
	"strings"
	"unicode"

	"github.com/prwerk/seoscore/internal/domain/markup"
	"github.com/prwerk/seoscore/internal/domain/model"
)

// Distribution spread thresholds for three or more occurrences.
const (
	goodSpread   = 0.4
	mediumSpread = 0.2
)

// Calculator derives keyword metrics. It is stateless and safe for
// concurrent use.
type Calculator struct{}

// New creates a new Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Calculate computes the basic metrics of keyword against text and title.
// Enrichment fields stay absent.
func (c *Calculator) Calculate(keyword, text, title string) model.KeywordMetrics {
	plain := markup.Strip(text)
	tokens := tokenize(plain)
	kw := tokenize(keyword)

	positions := matchPositions(tokens, kw)
	occurrences := len(positions)

	density := 0.0
	if len(tokens) > 0 && occurrences > 0 {
		density = float64(occurrences) / float64(len(tokens)) * 100
	}

	firstParagraph, _, _ := strings.Cut(plain, "\n")

	return model.KeywordMetrics{
		Keyword:          keyword,
		Density:          density,
		Occurrences:      occurrences,
		InHeadline:       containsWholeWord(title, kw),
		InFirstParagraph: containsWholeWord(firstParagraph, kw),
		Distribution:     rateDistribution(positions, len(tokens)),
	}
}

// Update recomputes the basic fields and carries over the sticky
// enrichment data from existing, if any.
func (c *Calculator) Update(keyword, text, title string, existing *model.KeywordMetrics) model.KeywordMetrics {
	m := c.Calculate(keyword, text, title)
	if existing != nil {
		m.Enrichment = existing.Enrichment.Clone()
	}
	return m
}

// rateDistribution rates how evenly the matches spread over the token
// stream: fewer than two occurrences are poor, exactly two are medium,
// three or more are rated by positional spread.
func rateDistribution(positions []int, totalTokens int) model.Distribution {
	switch {
	case len(positions) < 2:
		return model.DistributionPoor
	case len(positions) == 2:
		return model.DistributionMedium
	}

	minPos := float64(positions[0]) / float64(totalTokens)
	maxPos := float64(positions[len(positions)-1]) / float64(totalTokens)
	spread := maxPos - minPos

	switch {
	case spread > goodSpread:
		return model.DistributionGood
	case spread > mediumSpread:
		return model.DistributionMedium
	default:
		return model.DistributionPoor
	}
}

// tokenize splits on whitespace, trims surrounding punctuation and
// lowercases. Tokens that are pure punctuation disappear.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if t != "" {
			out = append(out, strings.ToLower(t))
		}
	}
	return out
}

// matchPositions returns the token indices where the keyword token
// sequence occurs. Multi-word keywords match consecutive tokens.
func matchPositions(tokens, keyword []string) []int {
	if len(keyword) == 0 || len(tokens) < len(keyword) {
		return nil
	}
	var positions []int
	for i := 0; i+len(keyword) <= len(tokens); i++ {
		match := true
		for j, kw := range keyword {
			if tokens[i+j] != kw {
				match = false
				break
			}
		}
		if match {
			positions = append(positions, i)
		}
	}
	return positions
}

// containsWholeWord reports whether the keyword token sequence occurs in
// the given text.
func containsWholeWord(text string, keyword []string) bool {
	return len(matchPositions(tokenize(text), keyword)) > 0
}
