// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// ScoreHandler handles scoring requests.
type ScoreHandler struct {
	deps Dependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps Dependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// scoreRequest mirrors the request schema for POST /score. Both fields
// are optional; omitted fields leave the current state untouched.
type scoreRequest struct {
	Text  *string `json:"text"`
	Title *string `json:"title"`
}

// HandleScore handles POST /score requests: it applies any supplied
// content changes and runs a full scoring pass. GET returns the most
// recent result without recomputing.
func (h *ScoreHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.score"

	switch r.Method {
	case http.MethodPost:
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if req.Text != nil {
			h.deps.SetContent(r.Context(), *req.Text)
		}
		if req.Title != nil {
			h.deps.SetTitle(r.Context(), *req.Title)
		}
		res := h.deps.Score(r.Context())
		writeJSON(w, http.StatusOK, newScoreResponse(res, h.deps.Keywords()))

	default:
		http.NotFound(w, r)
	}
}
