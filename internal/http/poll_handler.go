package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pollboard/internal/platform/apperr"
)

type pollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

func (h *Handler) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var req pollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	p, err := h.pollSvc.Create(r.Context(), req.Question, req.Options, identityFromCtx(r))
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"error": nil, "poll": p})
}

func (h *Handler) handleUpdatePoll(w http.ResponseWriter, r *http.Request) {
	var req pollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	p, err := h.pollSvc.Update(r.Context(), chi.URLParam(r, "id"), req.Question, req.Options, identityFromCtx(r))
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"error": nil, "poll": p})
}

func (h *Handler) handleDeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := h.pollSvc.Delete(r.Context(), chi.URLParam(r, "id"), identityFromCtx(r)); err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"error": nil})
}

func (h *Handler) handleGetPoll(w http.ResponseWriter, r *http.Request) {
	p, err := h.pollSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"error": nil, "poll": p})
}

func (h *Handler) handleListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.pollSvc.List(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"error": nil, "polls": polls})
}

func (h *Handler) handleListMyPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.pollSvc.ListOwn(r.Context(), identityFromCtx(r))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"error": nil, "polls": polls})
}
