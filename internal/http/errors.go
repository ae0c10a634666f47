package api

import (
	"database/sql"
	"errors"
	"net/http"

	"pollboard/internal/domain/poll"
	"pollboard/internal/domain/user"
	"pollboard/internal/domain/vote"
	"pollboard/internal/platform/apperr"
)

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	writeJSON(w, appErr.StatusCode(), map[string]string{
		"error":   appErr.Code,
		"message": appErr.Message,
	})
}

func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return apperr.NotFound("not_found", "resource not found", err)
	case errors.Is(err, poll.ErrPollNotFound):
		return apperr.NotFound("poll_not_found", "poll not found", err)
	case errors.Is(err, poll.ErrNotAuthenticated):
		return apperr.Unauthorized("not_authenticated", poll.ErrNotAuthenticated.Error(), err)
	case errors.Is(err, poll.ErrNotAuthorized):
		return apperr.Forbidden("not_authorized", poll.ErrNotAuthorized.Error(), err)
	case errors.Is(err, poll.ErrOptionsLocked):
		return apperr.Conflict("options_locked", poll.ErrOptionsLocked.Error(), err)
	case errors.Is(err, poll.ErrQuestionLength),
		errors.Is(err, poll.ErrOptionCount),
		errors.Is(err, poll.ErrOptionLength),
		errors.Is(err, poll.ErrDuplicateOption):
		return apperr.BadRequest("validation_failed", err.Error(), err)
	case errors.Is(err, vote.ErrAlreadyVoted):
		return apperr.Conflict("already_voted", vote.ErrAlreadyVoted.Error(), err)
	case errors.Is(err, vote.ErrInvalidOption):
		return apperr.BadRequest("invalid_option", vote.ErrInvalidOption.Error(), err)
	case errors.Is(err, vote.ErrAuthRequired):
		return apperr.Unauthorized("not_authenticated", vote.ErrAuthRequired.Error(), err)
	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid_credentials", "invalid credentials", err)
	case errors.Is(err, user.ErrEmailTaken):
		return apperr.BadRequest("email_taken", "email already taken", err)
	case errors.Is(err, user.ErrInvalidRole):
		return apperr.BadRequest("invalid_role", "invalid role", err)
	default:
		// Store failures pass the underlying message through unredacted.
		return apperr.FromError(err)
	}
}
