package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "testns")
				So(manager.subsystem, ShouldEqual, "testsub")
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording engine metrics", func() {
			Convey("Then the helpers should not panic", func() {
				So(func() {
					RecordScoringPass()
					RecordScoringLatency(1.5)
					ObserveTotalScore(87)
					UpdateCategoryScore("headline", 75)
					ObserveRecommendationCount(4)
					RecordEmptyKeywordRun()
					UpdateActiveKeywords(2)
					RecordKeywordRejected("duplicate")
					RecordEnrichmentRequest()
					RecordEnrichmentFailure()
					RecordEnrichmentFallback()
					RecordEnrichmentDropped()
					RecordEnrichmentLatency(320)
					RecordHTTPRequest("score", "POST", "200")
					RecordHTTPRequestDuration("score", "POST", 0.01)
					RecordErrorByComponent("enrichment", "timeout")
				}, ShouldNotPanic)
			})
		})

		Convey("When fetching the registry", func() {
			Convey("Then it should be non-nil", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
