package markup_test

import (
	"testing"

	"github.com/prwerk/seoscore/internal/domain/markup"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseHTMLContent(t *testing.T) {
	Convey("Given HTML editor content", t, func() {
		raw := `<h2>Überschrift</h2><p>Erster Absatz mit <strong>Software</strong>.</p><p>Zweiter Absatz.</p><ul><li>Punkt eins</li></ul><blockquote class="pr-quote">Ein Zitat.</blockquote>`
		doc := markup.Parse(raw)

		Convey("Then text extraction keeps block boundaries", func() {
			So(doc.Text(), ShouldContainSubstring, "Erster Absatz mit Software.")
			So(doc.Text(), ShouldContainSubstring, "\n")
		})

		Convey("Then paragraphs come from the <p> elements", func() {
			ps := doc.Paragraphs()
			So(ps, ShouldHaveLength, 2)
			So(ps[0], ShouldEqual, "Erster Absatz mit Software.")
			So(doc.FirstParagraph(), ShouldEqual, "Erster Absatz mit Software.")
		})

		Convey("Then structural signals are detected", func() {
			So(doc.QuoteCount(), ShouldEqual, 1)
			So(doc.HasList(), ShouldBeTrue)
			So(doc.HasSubheadings(), ShouldBeTrue)
		})
	})
}

func TestParsePlainText(t *testing.T) {
	Convey("Given plain text content", t, func() {
		raw := "Erste Zeile mit Inhalt.\nZweite Zeile.\n\nDritter Absatz."
		doc := markup.Parse(raw)

		Convey("Then the text passes through", func() {
			So(doc.Text(), ShouldContainSubstring, "Erste Zeile mit Inhalt.")
		})

		Convey("Then paragraphs split on line breaks", func() {
			So(doc.Paragraphs(), ShouldHaveLength, 3)
			So(doc.FirstParagraph(), ShouldEqual, "Erste Zeile mit Inhalt.")
		})

		Convey("Then no structural markup is reported", func() {
			So(doc.QuoteCount(), ShouldEqual, 0)
			So(doc.HasList(), ShouldBeFalse)
			So(doc.HasSubheadings(), ShouldBeFalse)
		})
	})
}

func TestParseEmptyContent(t *testing.T) {
	Convey("Given empty content", t, func() {
		doc := markup.Parse("")

		Convey("Then everything is zero-valued", func() {
			So(doc.Text(), ShouldBeBlank)
			So(doc.Paragraphs(), ShouldBeEmpty)
			So(doc.FirstParagraph(), ShouldBeBlank)
			So(doc.QuoteCount(), ShouldEqual, 0)
		})
	})
}

func TestQuoteVariants(t *testing.T) {
	Convey("Given both quote variants", t, func() {
		raw := `<blockquote class="pr-quote">Zitat A</blockquote><blockquote>Zitat B</blockquote><div class="pr-quote">Zitat C</div>`
		doc := markup.Parse(raw)

		Convey("Then each quote counts exactly once", func() {
			So(doc.QuoteCount(), ShouldEqual, 3)
		})
	})
}

func TestStrip(t *testing.T) {
	Convey("Given markup with inline tags", t, func() {
		So(markup.Strip("<p>Hallo <em>Welt</em></p>"), ShouldEqual, "Hallo Welt")
	})
}
