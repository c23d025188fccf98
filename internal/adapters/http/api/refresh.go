// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// RefreshHandler handles enrichment refresh requests.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// HandleRefresh handles POST /refresh requests. The call blocks until
// the semantic analysis of every active keyword has settled and returns
// the rescored result.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	res := h.deps.RefreshAll(r.Context())
	writeJSON(w, http.StatusOK, newScoreResponse(res, h.deps.Keywords()))
}
