package keywordmetrics_test

import (
	"strings"
	"testing"

	"github.com/prwerk/seoscore/internal/domain/keywordmetrics"
	"github.com/prwerk/seoscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCalculateBasicMetrics(t *testing.T) {
	Convey("Given a keyword metrics calculator", t, func() {
		calc := keywordmetrics.New()

		Convey("When the keyword occurs three times spread across the text", func() {
			title := "Software revolutioniert Digitalisierung"
			text := "<p>Die Digitalisierung beginnt hier mit vielen weiteren Worten im ersten Absatz.</p>" +
				"<p>Ein zweiter Absatz ohne besondere Begriffe und noch mehr Inhalt.</p>" +
				"<p>Die Digitalisierung schreitet voran in der Mitte des Textes.</p>" +
				"<p>Ein vierter Absatz mit zusätzlichem Inhalt für die Länge.</p>" +
				"<p>Am Ende steht die Digitalisierung als Ziel.</p>"

			m := calc.Calculate("Digitalisierung", text, title)

			Convey("Then occurrences, headline flag and distribution match", func() {
				So(m.Occurrences, ShouldEqual, 3)
				So(m.InHeadline, ShouldBeTrue)
				So(m.InFirstParagraph, ShouldBeTrue)
				So(m.Distribution, ShouldEqual, model.DistributionGood)
				So(m.Density, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the text is empty", func() {
			m := calc.Calculate("Software", "", "Titel")

			Convey("Then everything is zero and distribution is poor", func() {
				So(m.Occurrences, ShouldEqual, 0)
				So(m.Density, ShouldEqual, 0)
				So(m.InFirstParagraph, ShouldBeFalse)
				So(m.Distribution, ShouldEqual, model.DistributionPoor)
			})
		})

		Convey("When the keyword occurs exactly twice", func() {
			text := "Software hier und am Ende nochmal Software"
			m := calc.Calculate("Software", text, "")

			Convey("Then distribution is medium", func() {
				So(m.Occurrences, ShouldEqual, 2)
				So(m.Distribution, ShouldEqual, model.DistributionMedium)
			})
		})

		Convey("When three occurrences cluster at the start", func() {
			text := "Cloud Cloud Cloud " + strings.Repeat("anderes Wort und noch mehr Inhalt ", 20)
			m := calc.Calculate("Cloud", text, "")

			Convey("Then distribution is poor despite three matches", func() {
				So(m.Occurrences, ShouldEqual, 3)
				So(m.Distribution, ShouldEqual, model.DistributionPoor)
			})
		})

		Convey("When matching must be whole-word", func() {
			m := calc.Calculate("Software", "Softwarelösung und Softwareprojekt überall", "")

			Convey("Then substrings inside longer words do not count", func() {
				So(m.Occurrences, ShouldEqual, 0)
			})
		})

		Convey("When matching is case-insensitive and ignores punctuation", func() {
			m := calc.Calculate("digitalisierung", "Die DIGITALISIERUNG, sagt man, kommt. Digitalisierung!", "")

			So(m.Occurrences, ShouldEqual, 2)
		})

		Convey("When the keyword is a multi-word phrase", func() {
			m := calc.Calculate("Künstliche Intelligenz", "Die Künstliche Intelligenz verändert alles.", "Künstliche Intelligenz im Einsatz")

			So(m.Occurrences, ShouldEqual, 1)
			So(m.InHeadline, ShouldBeTrue)
		})

		Convey("When the density is computed", func() {
			m := calc.Calculate("Wort", "Wort zwei drei vier", "")

			Convey("Then it is the share of total words in percent", func() {
				So(m.Density, ShouldAlmostEqual, 25.0, 0.0001)
			})
		})
	})
}

func TestUpdatePreservesEnrichment(t *testing.T) {
	Convey("Given existing metrics with enrichment data", t, func() {
		calc := keywordmetrics.New()
		existing := model.KeywordMetrics{
			Keyword: "Software",
			Enrichment: &model.Enrichment{
				SemanticRelevance: 90,
				ContextQuality:    85,
				TargetAudience:    model.AudienceB2B,
				Tonality:          model.TonalityFactual,
				RelatedTerms:      []string{"IT", "Cloud", "SaaS"},
				AIAnalyzed:        true,
			},
		}

		Convey("When updating with new content", func() {
			m := calc.Update("Software", "Software überall, Software gewinnt.", "Neue Software", &existing)

			Convey("Then basic fields are fresh and enrichment is byte-for-byte identical", func() {
				So(m.Occurrences, ShouldEqual, 2)
				So(m.InHeadline, ShouldBeTrue)
				So(m.Enrichment, ShouldNotBeNil)
				So(m.Enrichment.SemanticRelevance, ShouldEqual, 90)
				So(m.Enrichment.ContextQuality, ShouldEqual, 85)
				So(m.Enrichment.TargetAudience, ShouldEqual, model.AudienceB2B)
				So(m.Enrichment.Tonality, ShouldEqual, model.TonalityFactual)
				So(m.Enrichment.RelatedTerms, ShouldResemble, []string{"IT", "Cloud", "SaaS"})
			})
		})

		Convey("When updating twice with identical input", func() {
			a := calc.Update("Software", "Software im Text.", "Titel", &existing)
			b := calc.Update("Software", "Software im Text.", "Titel", &existing)

			Convey("Then the results are identical", func() {
				So(a, ShouldResemble, b)
			})
		})

		Convey("When updating without existing metrics", func() {
			m := calc.Update("Software", "Software im Text.", "Titel", nil)

			Convey("Then no enrichment appears", func() {
				So(m.Enrichment, ShouldBeNil)
			})
		})
	})
}
