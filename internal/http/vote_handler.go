package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pollboard/internal/platform/apperr"
	"pollboard/internal/worker"
)

type voteRequest struct {
	// Pointer so that a missing field is distinguishable from index 0.
	OptionIndex *int `json:"option_index"`
}

// @Summary     Cast a vote
// @Tags        votes
// @Accept      json
// @Param       id       path      string       true  "Poll ID"
// @Param       request  body      voteRequest  true  "Vote payload"
// @Success     201      {object}  map[string]any
// @Failure     400      {object}  map[string]string  "invalid body or option index"
// @Failure     401      {object}  map[string]string  "authentication required"
// @Failure     404      {object}  map[string]string  "poll not found"
// @Failure     409      {object}  map[string]string  "already voted"
// @Failure     429      {object}  map[string]string  "rate limited"
// @Router      /api/v1/polls/{id}/vote [post]
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	pollID := chi.URLParam(r, "id")

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}
	if req.OptionIndex == nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "option_index is required", nil))
		return
	}

	caller := identityFromCtx(r)
	if err := h.voteSvc.Cast(r.Context(), pollID, *req.OptionIndex, caller); err != nil {
		errorResponse(w, err)
		return
	}

	select {
	case h.voteCh <- worker.VoteEvent{PollID: pollID, Anonymous: caller.IsAnonymous()}:
	default:
	}

	writeJSON(w, http.StatusCreated, map[string]any{"error": nil})
}

// @Summary     Poll results
// @Tags        polls
// @Produce     json
// @Param       id   path     string  true  "Poll ID"
// @Success     200  {object} map[string]any
// @Failure     404  {object} map[string]string  "poll not found"
// @Router      /api/v1/polls/{id}/results [get]
func (h *Handler) handlePollResults(w http.ResponseWriter, r *http.Request) {
	res, err := h.voteSvc.Results(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"error":       nil,
		"poll":        res.Poll,
		"options":     res.Options,
		"total_votes": res.Total,
	})
}
