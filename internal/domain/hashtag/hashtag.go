// Package hashtag detects hashtags in release text and assesses their
// quality against the active keyword set.
package hashtag

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#([\p{L}\p{N}_]+)`)

// Per-hashtag quality contributions.
const (
	baseScore        = 40
	keywordRelated   = 30
	goodLengthBonus  = 15
	readabilityBonus = 15
	minTagLength     = 3
	maxTagLength     = 20
)

// Assessment is the result of a quality check over a hashtag set.
type Assessment struct {
	AverageScore float64        `json:"average_score"`
	Breakdown    map[string]int `json:"breakdown"`
}

// Detect returns the hashtags found in text, without the leading '#',
// deduplicated case-insensitively in order of first appearance.
func Detect(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, match := range hashtagRe.FindAllStringSubmatch(text, -1) {
		tag := match[1]
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// AssessQuality scores each hashtag from 0 to 100 and averages the
// results. Hashtags relating to an active keyword score highest.
func AssessQuality(hashtags, keywords []string) Assessment {
	if len(hashtags) == 0 {
		return Assessment{Breakdown: map[string]int{}}
	}

	breakdown := make(map[string]int, len(hashtags))
	sum := 0
	for _, tag := range hashtags {
		score := scoreHashtag(tag, keywords)
		breakdown[tag] = score
		sum += score
	}

	return Assessment{
		AverageScore: float64(sum) / float64(len(hashtags)),
		Breakdown:    breakdown,
	}
}

func scoreHashtag(tag string, keywords []string) int {
	score := baseScore

	if relatesToKeyword(tag, keywords) {
		score += keywordRelated
	}
	if n := len([]rune(tag)); n >= minTagLength && n <= maxTagLength {
		score += goodLengthBonus
	}
	if !strings.ContainsAny(tag, "0123456789_") {
		score += readabilityBonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

// relatesToKeyword checks both directions: the tag embedding a keyword
// ("#SoftwareNews") and a multi-word keyword collapsing into the tag.
func relatesToKeyword(tag string, keywords []string) bool {
	lowerTag := strings.ToLower(tag)
	for _, kw := range keywords {
		collapsed := strings.ToLower(strings.ReplaceAll(kw, " ", ""))
		if collapsed == "" {
			continue
		}
		if strings.Contains(lowerTag, collapsed) || strings.Contains(collapsed, lowerTag) {
			return true
		}
	}
	return false
}
