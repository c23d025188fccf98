package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/prwerk/seoscore/internal/adapters/http/api"
	service "github.com/prwerk/seoscore/internal/app"
	"github.com/prwerk/seoscore/internal/domain/model"
)

func newTestMux() (*http.ServeMux, *service.Coordinator) {
	coord := service.New(service.WithMaxKeywords(2))
	server := api.NewServer(coord, coord)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux, coord
}

func doJSON(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

type scorePayload struct {
	TotalScore      int                    `json:"total_score"`
	Breakdown       model.Breakdown        `json:"breakdown"`
	Recommendations []string               `json:"recommendations"`
	Keywords        []model.KeywordMetrics `json:"keywords"`
}

func TestScoreEndpoint(t *testing.T) {
	Convey("Given the API with one active keyword", t, func() {
		mux, _ := newTestMux()
		So(doJSON(mux, http.MethodPost, "/keywords", `{"keyword":"Software"}`).Code, ShouldEqual, http.StatusCreated)

		Convey("When a release is scored", func() {
			rec := doJSON(mux, http.MethodPost, "/score", `{
				"text": "Die Software AG präsentiert eine neue Software für den Mittelstand. Software vereinfacht Abläufe.",
				"title": "Software AG präsentiert neue Software"
			}`)

			Convey("Then the result carries score, breakdown and keywords", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var payload scorePayload
				So(json.Unmarshal(rec.Body.Bytes(), &payload), ShouldBeNil)
				So(payload.TotalScore, ShouldBeGreaterThan, 0)
				So(payload.Breakdown.Headline, ShouldBeGreaterThanOrEqualTo, 40)
				So(payload.Keywords, ShouldHaveLength, 1)
				So(payload.Keywords[0].Occurrences, ShouldBeGreaterThan, 0)
			})
		})

		Convey("When the request body is not JSON", func() {
			So(doJSON(mux, http.MethodPost, "/score", "kein json").Code, ShouldEqual, http.StatusBadRequest)
		})
	})

	Convey("Given the API without keywords", t, func() {
		mux, _ := newTestMux()

		Convey("When a release is scored", func() {
			rec := doJSON(mux, http.MethodPost, "/score", `{"text":"Ein Text.","title":"Titel"}`)

			Convey("Then the total is zero with the keyword hint", func() {
				var payload scorePayload
				So(json.Unmarshal(rec.Body.Bytes(), &payload), ShouldBeNil)
				So(payload.TotalScore, ShouldEqual, 0)
				So(payload.Recommendations, ShouldHaveLength, 1)
			})
		})
	})
}

func TestKeywordEndpoints(t *testing.T) {
	Convey("Given the keyword endpoints", t, func() {
		mux, _ := newTestMux()

		Convey("When keywords are added", func() {
			So(doJSON(mux, http.MethodPost, "/keywords", `{"keyword":"Software"}`).Code, ShouldEqual, http.StatusCreated)
			So(doJSON(mux, http.MethodPost, "/keywords", `{"keyword":"Cloud"}`).Code, ShouldEqual, http.StatusCreated)

			Convey("Then the collection lists them in order", func() {
				rec := doJSON(mux, http.MethodGet, "/keywords", "")
				So(rec.Code, ShouldEqual, http.StatusOK)

				var kws []model.KeywordMetrics
				So(json.Unmarshal(rec.Body.Bytes(), &kws), ShouldBeNil)
				So(kws, ShouldHaveLength, 2)
				So(kws[0].Keyword, ShouldEqual, "Software")
			})

			Convey("Then a duplicate is rejected with 409", func() {
				So(doJSON(mux, http.MethodPost, "/keywords", `{"keyword":"software"}`).Code, ShouldEqual, http.StatusConflict)
			})

			Convey("Then a third keyword is rejected with 409", func() {
				So(doJSON(mux, http.MethodPost, "/keywords", `{"keyword":"KI"}`).Code, ShouldEqual, http.StatusConflict)
			})

			Convey("Then a keyword can be removed", func() {
				So(doJSON(mux, http.MethodDelete, "/keywords/Software", "").Code, ShouldEqual, http.StatusNoContent)
				So(doJSON(mux, http.MethodDelete, "/keywords/Software", "").Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the keyword payload is invalid", func() {
			So(doJSON(mux, http.MethodPost, "/keywords", `{}`).Code, ShouldEqual, http.StatusBadRequest)
			So(doJSON(mux, http.MethodPost, "/keywords", "kein json").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestRefreshEndpoint(t *testing.T) {
	Convey("Given the refresh endpoint", t, func() {
		mux, _ := newTestMux()
		doJSON(mux, http.MethodPost, "/keywords", `{"keyword":"Software"}`)

		Convey("When a refresh is requested", func() {
			rec := doJSON(mux, http.MethodPost, "/refresh", "")

			Convey("Then the rescored result is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var payload scorePayload
				So(json.Unmarshal(rec.Body.Bytes(), &payload), ShouldBeNil)
				So(payload.Keywords, ShouldHaveLength, 1)
				So(payload.Keywords[0].Enrichment, ShouldNotBeNil)
			})
		})

		Convey("When the method is wrong", func() {
			So(doJSON(mux, http.MethodGet, "/refresh", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestMonitoringEndpoints(t *testing.T) {
	Convey("Given the monitoring endpoints", t, func() {
		mux, _ := newTestMux()

		Convey("When health is probed", func() {
			rec := doJSON(mux, http.MethodGet, "/healthz", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "ok")
		})

		Convey("When stats are requested", func() {
			rec := doJSON(mux, http.MethodGet, "/stats", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var stats map[string]interface{}
			So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
			So(stats, ShouldContainKey, "activeKeywords")
		})

		Convey("When metrics are scraped", func() {
			rec := doJSON(mux, http.MethodGet, "/metrics", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
		})
	})
}
