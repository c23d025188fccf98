package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	service "github.com/prwerk/seoscore/internal/app"
	"github.com/prwerk/seoscore/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeEnricher is a controllable Enricher test double. When block is
// set, calls wait for the channel (or the context) before returning.
type fakeEnricher struct {
	mu     sync.Mutex
	calls  int
	result *model.Enrichment
	err    error
	block  chan struct{}
}

func (f *fakeEnricher) Enrich(ctx context.Context, keyword, text string) (*model.Enrichment, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	result := f.result
	err := f.err
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return result.Clone(), nil
}

func (f *fakeEnricher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeEnricher) set(result *model.Enrichment, err error) {
	f.mu.Lock()
	f.result = result
	f.err = err
	f.mu.Unlock()
}

func eventually(cond func() bool) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func analyzedEnrichment() *model.Enrichment {
	return &model.Enrichment{
		SemanticRelevance: 85,
		ContextQuality:    75,
		TargetAudience:    model.AudienceB2B,
		Tonality:          model.TonalityFactual,
		RelatedTerms:      []string{"Cloud", "SaaS"},
		AIAnalyzed:        true,
	}
}

func TestKeywordLifecycle(t *testing.T) {
	Convey("Given a coordinator with capacity for two keywords", t, func() {
		ctx := context.Background()
		coord := service.New(service.WithMaxKeywords(2))

		Convey("When keywords are added", func() {
			So(coord.AddKeyword(ctx, "Software"), ShouldBeTrue)
			So(coord.AddKeyword(ctx, "Cloud"), ShouldBeTrue)

			Convey("Then they are listed in insertion order", func() {
				kws := coord.Keywords()
				So(kws, ShouldHaveLength, 2)
				So(kws[0].Keyword, ShouldEqual, "Software")
				So(kws[1].Keyword, ShouldEqual, "Cloud")
			})

			Convey("Then a third keyword is rejected silently", func() {
				So(coord.AddKeyword(ctx, "KI"), ShouldBeFalse)
				So(coord.Keywords(), ShouldHaveLength, 2)
			})

			Convey("Then a duplicate is rejected case-insensitively", func() {
				So(coord.AddKeyword(ctx, "SOFTWARE"), ShouldBeFalse)
				So(coord.Keywords(), ShouldHaveLength, 2)
			})
		})

		Convey("When an empty keyword is added", func() {
			So(coord.AddKeyword(ctx, "   "), ShouldBeFalse)
			So(coord.Keywords(), ShouldBeEmpty)
		})

		Convey("When a keyword is removed", func() {
			coord.AddKeyword(ctx, "Software")
			So(coord.RemoveKeyword(ctx, "software"), ShouldBeTrue)

			Convey("Then it is gone and a second removal reports false", func() {
				So(coord.Keywords(), ShouldBeEmpty)
				So(coord.RemoveKeyword(ctx, "Software"), ShouldBeFalse)
			})
		})
	})
}

func TestScoringWithoutKeywords(t *testing.T) {
	Convey("Given a coordinator with content but no keywords", t, func() {
		ctx := context.Background()
		coord := service.New()
		coord.SetContent(ctx, "Ein ausführlicher Text über moderne Software.")
		coord.SetTitle(ctx, "Moderne Software im Überblick")

		Convey("When a scoring pass runs", func() {
			res := coord.Score(ctx)

			Convey("Then the total is zero with the keyword hint", func() {
				So(res.TotalScore, ShouldEqual, 0)
				So(res.Recommendations, ShouldHaveLength, 1)
			})
		})
	})
}

func TestAsyncEnrichment(t *testing.T) {
	Convey("Given a coordinator with an enrichment backend", t, func() {
		ctx := context.Background()

		Convey("When the backend succeeds", func() {
			fake := &fakeEnricher{result: analyzedEnrichment()}
			coord := service.New(service.WithEnricher(fake))
			coord.SetContent(ctx, "Software hilft. Software skaliert. Und Software verbindet Teams.")
			coord.AddKeyword(ctx, "Software")

			Convey("Then the enrichment merges into the keyword metrics", func() {
				So(eventually(func() bool {
					kws := coord.Keywords()
					return len(kws) == 1 && kws[0].Enrichment != nil
				}), ShouldBeTrue)

				kw := coord.Keywords()[0]
				So(kw.Enrichment.AIAnalyzed, ShouldBeTrue)
				So(kw.Enrichment.SemanticRelevance, ShouldEqual, 85)
			})

			Convey("Then the enrichment is sticky across content changes", func() {
				So(eventually(func() bool {
					kws := coord.Keywords()
					return len(kws) == 1 && kws[0].Enrichment != nil
				}), ShouldBeTrue)

				coord.SetContent(ctx, "Ein völlig neuer Text, der Software nur einmal nennt.")

				kw := coord.Keywords()[0]
				So(kw.Occurrences, ShouldEqual, 1)
				So(kw.Enrichment, ShouldNotBeNil)
				So(kw.Enrichment.AIAnalyzed, ShouldBeTrue)
				So(fake.callCount(), ShouldEqual, 1)
			})
		})

		Convey("When the backend fails", func() {
			fake := &fakeEnricher{err: errors.New("backend unavailable")}
			coord := service.New(service.WithEnricher(fake))
			coord.AddKeyword(ctx, "Software")

			Convey("Then the neutral fallback is applied", func() {
				So(eventually(func() bool {
					kws := coord.Keywords()
					return len(kws) == 1 && kws[0].Enrichment != nil
				}), ShouldBeTrue)

				kw := coord.Keywords()[0]
				So(kw.Enrichment.AIAnalyzed, ShouldBeFalse)
				So(kw.Enrichment.SemanticRelevance, ShouldEqual, 50)
				So(kw.Enrichment.TargetAudience, ShouldEqual, model.AudienceUnknown)
			})
		})

		Convey("When the backend exceeds the timeout", func() {
			fake := &fakeEnricher{result: analyzedEnrichment(), block: make(chan struct{})}
			coord := service.New(
				service.WithEnricher(fake),
				service.WithEnrichmentTimeout(30*time.Millisecond),
			)
			coord.AddKeyword(ctx, "Software")

			Convey("Then the timeout counts as failure and falls back", func() {
				So(eventually(func() bool {
					kws := coord.Keywords()
					return len(kws) == 1 && kws[0].Enrichment != nil
				}), ShouldBeTrue)

				So(coord.Keywords()[0].Enrichment.AIAnalyzed, ShouldBeFalse)
			})
		})

		Convey("When the keyword is removed while enrichment is in flight", func() {
			release := make(chan struct{})
			fake := &fakeEnricher{result: analyzedEnrichment(), block: release}
			coord := service.New(service.WithEnricher(fake))

			coord.AddKeyword(ctx, "Software")
			So(coord.RemoveKeyword(ctx, "Software"), ShouldBeTrue)
			close(release)

			Convey("Then the stale result is dropped", func() {
				time.Sleep(50 * time.Millisecond)
				So(coord.Keywords(), ShouldBeEmpty)
			})
		})
	})
}

func TestRefreshAll(t *testing.T) {
	Convey("Given a coordinator whose keywords carry fallback data", t, func() {
		ctx := context.Background()
		fake := &fakeEnricher{err: errors.New("backend unavailable")}
		coord := service.New(service.WithEnricher(fake), service.WithMaxKeywords(2))
		coord.SetContent(ctx, "Software und Cloud prägen die Digitalisierung.")
		coord.AddKeyword(ctx, "Software")
		coord.AddKeyword(ctx, "Cloud")

		So(eventually(func() bool {
			for _, kw := range coord.Keywords() {
				if kw.Enrichment == nil {
					return false
				}
			}
			return len(coord.Keywords()) == 2
		}), ShouldBeTrue)

		Convey("When the backend recovers and a refresh runs", func() {
			fake.set(analyzedEnrichment(), nil)
			coord.RefreshAll(ctx)

			Convey("Then every keyword carries fresh analysis", func() {
				for _, kw := range coord.Keywords() {
					So(kw.Enrichment, ShouldNotBeNil)
					So(kw.Enrichment.AIAnalyzed, ShouldBeTrue)
				}
			})
		})
	})
}

func TestScoreListener(t *testing.T) {
	Convey("Given a coordinator with a score listener", t, func() {
		ctx := context.Background()

		var mu sync.Mutex
		var results []model.Result
		coord := service.New(service.WithScoreListener(func(r model.Result) {
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}))

		Convey("When state changes", func() {
			coord.SetContent(ctx, "Software für alle.")
			coord.AddKeyword(ctx, "Software")

			Convey("Then the listener sees each completed pass", func() {
				So(eventually(func() bool {
					mu.Lock()
					defer mu.Unlock()
					return len(results) >= 2
				}), ShouldBeTrue)
			})
		})
	})
}
