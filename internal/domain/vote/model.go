package vote

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAlreadyVoted  = errors.New("already voted on this poll")
	ErrInvalidOption = errors.New("option index out of range")
	ErrAuthRequired  = errors.New("authentication required to vote")
)

// Vote records one cast ballot. VoterID is nil for anonymous casts; Option
// holds the text of the chosen option as it read at the time of voting.
type Vote struct {
	ID        string    `json:"id"`
	PollID    string    `json:"poll_id"`
	VoterID   *string   `json:"voted_by,omitempty"`
	Option    string    `json:"option"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	// Create inserts the vote. Implementations return ErrAlreadyVoted when
	// the store's uniqueness constraint on (poll_id, voter_id) rejects it.
	Create(ctx context.Context, v *Vote) error
	HasVoted(ctx context.Context, pollID, voterID string) (bool, error)
	CountByOption(ctx context.Context, pollID string) (map[string]int64, error)
	HasAnyVotes(ctx context.Context, pollID string) (bool, error)
}
