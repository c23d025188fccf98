// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prwerk/seoscore/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the coordinator implementation.
type Dependencies interface {
	SetContent(ctx context.Context, text string) model.Result
	SetTitle(ctx context.Context, title string) model.Result
	AddKeyword(ctx context.Context, keyword string) bool
	RemoveKeyword(ctx context.Context, keyword string) bool
	RefreshAll(ctx context.Context) model.Result
	Score(ctx context.Context) model.Result
	Keywords() []model.KeywordMetrics
}

// StatsProvider exposes coordinator state for monitoring.
type StatsProvider interface {
	Stats() map[string]interface{}
}

// Server wires HTTP routes for the scoring API.
type Server struct {
	scoreHandler    *ScoreHandler
	keywordsHandler *KeywordsHandler
	refreshHandler  *RefreshHandler
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	metricsHandler  *MetricsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		scoreHandler:    NewScoreHandler(deps),
		keywordsHandler: NewKeywordsHandler(deps),
		refreshHandler:  NewRefreshHandler(deps),
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		metricsHandler:  NewMetricsHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/score", MetricsMiddleware(s.scoreHandler.HandleScore, "score"))
	mux.HandleFunc("/keywords", MetricsMiddleware(s.keywordsHandler.HandleKeywords, "keywords"))
	mux.HandleFunc("/keywords/", MetricsMiddleware(s.keywordsHandler.HandleKeyword, "keyword"))
	mux.HandleFunc("/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "refresh"))
	mux.Handle("/metrics", s.metricsHandler.Handler())
}

// scoreResponse is the wire shape of a completed scoring pass.
type scoreResponse struct {
	TotalScore      int                    `json:"total_score"`
	Breakdown       model.Breakdown        `json:"breakdown"`
	Recommendations []string               `json:"recommendations"`
	Keywords        []model.KeywordMetrics `json:"keywords"`
}

func newScoreResponse(res model.Result, keywords []model.KeywordMetrics) scoreResponse {
	recs := res.Recommendations
	if recs == nil {
		recs = []string{}
	}
	if keywords == nil {
		keywords = []model.KeywordMetrics{}
	}
	return scoreResponse{
		TotalScore:      res.TotalScore,
		Breakdown:       res.Breakdown,
		Recommendations: recs,
		Keywords:        keywords,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
