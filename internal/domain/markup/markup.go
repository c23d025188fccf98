// Package markup extracts plain text and structural signals from the
// editor markup of a press release. Content arrives as HTML fragments;
// plain text passes through unchanged.
package markup

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	lineBreakRe  = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockCloseRe = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|blockquote|figcaption)>`)
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	blankRunRe   = regexp.MustCompile(`\n{2,}`)
	paragraphRe  = regexp.MustCompile(`\n+`)
)

// Document is a parsed piece of content. Parsing happens once; all
// accessors are cheap afterwards.
type Document struct {
	raw        string
	doc        *goquery.Document
	text       string
	paragraphs []string
}

// Parse builds a Document from raw editor markup.
func Parse(raw string) *Document {
	d := &Document{raw: raw}

	// Block boundaries must survive text extraction, so newlines are
	// injected before the HTML parser flattens the tree.
	prepared := lineBreakRe.ReplaceAllString(raw, "\n")
	prepared = blockCloseRe.ReplaceAllString(prepared, "$0\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(prepared))
	if err != nil {
		// net/html recovers from almost anything; if it still fails,
		// degrade to a regex strip.
		d.text = normalize(tagRe.ReplaceAllString(prepared, ""))
		d.paragraphs = splitParagraphs(d.text)
		return d
	}
	d.doc = doc
	d.text = normalize(doc.Text())
	d.paragraphs = d.extractParagraphs()
	return d
}

// Strip returns the tag-stripped plain text of raw markup, with block
// boundaries represented as newlines.
func Strip(raw string) string {
	return Parse(raw).Text()
}

// Text returns the plain text of the document.
func (d *Document) Text() string {
	return d.text
}

// Paragraphs returns the non-empty, tag-stripped paragraphs.
func (d *Document) Paragraphs() []string {
	return d.paragraphs
}

// FirstParagraph returns the lead paragraph, or "" for empty content.
func (d *Document) FirstParagraph() string {
	if len(d.paragraphs) == 0 {
		return ""
	}
	return d.paragraphs[0]
}

// QuoteCount counts block-quote elements, covering both the specialized
// pr-quote variant and generic blockquotes.
func (d *Document) QuoteCount() int {
	if d.doc == nil {
		return 0
	}
	// The union selector deduplicates <blockquote class="pr-quote">.
	return d.doc.Find("blockquote, .pr-quote").Length()
}

// HasList reports whether the document contains list markup.
func (d *Document) HasList() bool {
	if d.doc == nil {
		return false
	}
	return d.doc.Find("ul, ol").Length() > 0
}

// HasSubheadings reports whether the document contains heading markup.
func (d *Document) HasSubheadings() bool {
	if d.doc == nil {
		return false
	}
	return d.doc.Find("h2, h3, h4").Length() > 0
}

// HasCTAElement reports whether the document contains call-to-action
// markup (dedicated CTA class, buttons, or links).
func (d *Document) HasCTAElement() bool {
	if d.doc == nil {
		return false
	}
	return d.doc.Find(".pr-cta, button, a[href]").Length() > 0
}

// extractParagraphs prefers <p> elements; content without paragraph tags
// falls back to newline-delimited plain text.
func (d *Document) extractParagraphs() []string {
	var out []string
	d.doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	if len(out) > 0 {
		return out
	}
	return splitParagraphs(d.text)
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range paragraphRe.Split(text, -1) {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalize trims every line and collapses blank-line runs so that the
// stripped text is stable regardless of the source formatting.
func normalize(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	joined := strings.Join(lines, "\n")
	joined = blankRunRe.ReplaceAllString(joined, "\n")
	return strings.TrimSpace(joined)
}
