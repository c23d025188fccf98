// Package prmetrics computes structural and content metrics of a whole
// press release document.
package prmetrics

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/prwerk/seoscore/internal/domain/markup"
	"github.com/prwerk/seoscore/internal/domain/model"
)

// estimatedQuoteLength is reported as the average quote length whenever
// any quote exists. Downstream consumers rely on the constant.
const estimatedQuoteLength = 150

// Calculator derives document metrics. Stateless and safe for
// concurrent use.
type Calculator struct{}

// New creates a new Calculator.
func New() *Calculator {
	return &Calculator{}
}

// Calculate computes the PR metrics of text and title against the active
// keywords.
func (c *Calculator) Calculate(text, title string, keywords []string) model.PRMetrics {
	doc := markup.Parse(text)
	paragraphs := doc.Paragraphs()
	plain := doc.Text()

	lead := ""
	if len(paragraphs) > 0 {
		lead = paragraphs[0]
	}

	quoteCount := doc.QuoteCount()
	avgQuoteLength := 0
	if quoteCount > 0 {
		avgQuoteLength = estimatedQuoteLength
	}

	return model.PRMetrics{
		HeadlineLength:        utf8.RuneCountInString(title),
		HeadlineHasKeywords:   containsAnyKeyword(title, keywords),
		HeadlineHasActiveVerb: HasActiveVerb(title),
		LeadLength:            utf8.RuneCountInString(lead),
		LeadHasNumbers:        strings.ContainsFunc(lead, unicode.IsDigit),
		LeadKeywordMentions:   keywordMentions(lead, keywords),
		QuoteCount:            quoteCount,
		AvgQuoteLength:        avgQuoteLength,
		HasActionVerbs:        actionVerbRe.MatchString(plain),
		HasLearnMore:          learnMoreRe.MatchString(plain),
		AvgParagraphLength:    avgParagraphLength(paragraphs),
		HasBulletPoints:       doc.HasList(),
		HasSubheadings:        doc.HasSubheadings(),
		NumberCount:           len(numberRe.FindAllString(plain, -1)),
		HasSpecificDates:      dateRe.MatchString(plain),
		HasCompanyNames:       companyNameRe.MatchString(plain) || acronymRe.MatchString(plain),
	}
}

// HasActiveVerb reports whether the title contains one of the fixed
// active verbs as a whole word.
func HasActiveVerb(title string) bool {
	for _, token := range strings.Fields(strings.ToLower(title)) {
		token = strings.TrimFunc(token, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		for _, verb := range activeVerbs {
			if token == verb {
				return true
			}
		}
	}
	return false
}

func containsAnyKeyword(title string, keywords []string) bool {
	lowerTitle := strings.ToLower(title)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowerTitle, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func keywordMentions(lead string, keywords []string) int {
	lowerLead := strings.ToLower(lead)
	mentions := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		mentions += strings.Count(lowerLead, strings.ToLower(kw))
	}
	return mentions
}

func avgParagraphLength(paragraphs []string) float64 {
	if len(paragraphs) == 0 {
		return 0
	}
	total := 0
	for _, p := range paragraphs {
		total += utf8.RuneCountInString(p)
	}
	return float64(total) / float64(len(paragraphs))
}
