package hashtag_test

import (
	"testing"

	"github.com/prwerk/seoscore/internal/domain/hashtag"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDetect(t *testing.T) {
	Convey("Given text with hashtags", t, func() {
		Convey("When hashtags appear in the text", func() {
			tags := hashtag.Detect("Mehr dazu unter #Digitalisierung und #Software2026 sowie #KI.")

			Convey("Then all distinct tags are found in order", func() {
				So(tags, ShouldResemble, []string{"Digitalisierung", "Software2026", "KI"})
			})
		})

		Convey("When the same hashtag repeats in different casing", func() {
			tags := hashtag.Detect("#Software im Titel, später nochmal #software.")

			Convey("Then it is reported once", func() {
				So(tags, ShouldHaveLength, 1)
			})
		})

		Convey("When the text has no hashtags", func() {
			So(hashtag.Detect("Text ohne Tags."), ShouldBeEmpty)
		})
	})
}

func TestAssessQuality(t *testing.T) {
	Convey("Given a quality assessment", t, func() {
		Convey("When a hashtag matches a keyword", func() {
			a := hashtag.AssessQuality([]string{"Digitalisierung"}, []string{"Digitalisierung"})

			Convey("Then it scores the full marks", func() {
				So(a.AverageScore, ShouldEqual, 100)
				So(a.Breakdown["Digitalisierung"], ShouldEqual, 100)
			})
		})

		Convey("When a hashtag embeds a multi-word keyword", func() {
			a := hashtag.AssessQuality([]string{"KuenstlicheIntelligenzNews"}, []string{"Kuenstliche Intelligenz"})

			So(a.Breakdown["KuenstlicheIntelligenzNews"], ShouldBeGreaterThanOrEqualTo, 70)
		})

		Convey("When a hashtag is unrelated and hard to read", func() {
			a := hashtag.AssessQuality([]string{"x_42"}, []string{"Software"})

			Convey("Then only base and length points remain", func() {
				So(a.Breakdown["x_42"], ShouldEqual, 55)
			})
		})

		Convey("When no hashtags exist", func() {
			a := hashtag.AssessQuality(nil, []string{"Software"})

			So(a.AverageScore, ShouldEqual, 0)
			So(a.Breakdown, ShouldBeEmpty)
		})
	})
}
