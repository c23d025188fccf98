package seoscore

import "math"

// Social media headline length bands in characters.
const (
	socialHeadlineIdeal = 280
	socialHeadlineLoose = 320
)

// scoreSocial rates shareability: headline length for social previews
// plus hashtag count and quality.
func (c *Calculator) scoreSocial(in Input, recs *[]string) int {
	score := 0

	switch n := len([]rune(in.Title)); {
	case n <= socialHeadlineIdeal:
		score += 40
	case n <= socialHeadlineLoose:
		score += 25
		*recs = append(*recs, "Kürzen Sie die Überschrift leicht für eine bessere Social-Media-Vorschau.")
	default:
		score += 10
		*recs = append(*recs, "Die Überschrift ist für Social Media zu lang – kürzen Sie auf unter 280 Zeichen.")
	}

	tags := c.hashtags.Detect(in.Text)
	switch {
	case len(tags) >= 3:
		score += 35
	case len(tags) == 2:
		score += 25
	case len(tags) == 1:
		score += 15
	default:
		*recs = append(*recs, "Fügen Sie 2-3 relevante Hashtags hinzu, um die Reichweite zu erhöhen.")
	}

	if len(tags) > 0 {
		quality := c.hashtags.AssessQuality(tags, in.Keywords)
		score += int(math.Round(quality.AverageScore / 100 * 25))
	}

	return clamp(score, 0, 100)
}
