// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// KeywordsHandler handles keyword collection requests.
type KeywordsHandler struct {
	deps Dependencies
}

// NewKeywordsHandler creates a new keywords handler.
func NewKeywordsHandler(deps Dependencies) *KeywordsHandler {
	return &KeywordsHandler{deps: deps}
}

// keywordRequest mirrors the request schema for POST /keywords.
type keywordRequest struct {
	Keyword string `json:"keyword"`
}

func (k keywordRequest) validate() error {
	if strings.TrimSpace(k.Keyword) == "" {
		return errors.New("missing keyword")
	}
	return nil
}

// HandleKeywords handles GET and POST /keywords requests.
func (h *KeywordsHandler) HandleKeywords(w http.ResponseWriter, r *http.Request) {
	const op = "api.keywords"

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Keywords())

	case http.MethodPost:
		var req keywordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if !h.deps.AddKeyword(r.Context(), req.Keyword) {
			writeError(w, http.StatusConflict, "keyword_rejected", NewKind(op, ErrKeywordRejected))
			return
		}
		writeJSON(w, http.StatusCreated, h.deps.Keywords())

	default:
		http.NotFound(w, r)
	}
}

// HandleKeyword handles DELETE /keywords/{keyword} requests.
func (h *KeywordsHandler) HandleKeyword(w http.ResponseWriter, r *http.Request) {
	const op = "api.keyword"

	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}

	keyword := strings.TrimPrefix(r.URL.Path, "/keywords/")
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	if !h.deps.RemoveKeyword(r.Context(), keyword) {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
