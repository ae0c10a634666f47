package vote

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pollboard/internal/domain/identity"
	"pollboard/internal/domain/poll"
)

// PollGetter is the slice of the poll repository the vote engine needs.
type PollGetter interface {
	GetByID(ctx context.Context, id string) (*poll.Poll, error)
}

// Service enforces the at-most-one-vote rule and computes tallies.
//
// Anonymous casts are deliberately not deduplicated: when allowAnonymous is
// on, any number of anonymous votes per poll are accepted. Only
// authenticated identities are held to one vote per poll, first by the
// HasVoted fast path and ultimately by the store's unique index, which also
// closes the window between concurrent casts from the same identity.
type Service struct {
	repo           Repository
	polls          PollGetter
	allowAnonymous bool
	now            func() time.Time
}

func NewService(repo Repository, polls PollGetter, allowAnonymous bool) *Service {
	return &Service{repo: repo, polls: polls, allowAnonymous: allowAnonymous, now: time.Now}
}

// Cast records one vote for the option at optionIndex. An out-of-range index
// is refused outright, never clamped.
func (s *Service) Cast(ctx context.Context, pollID string, optionIndex int, caller *identity.Identity) error {
	p, err := s.polls.GetByID(ctx, pollID)
	if err != nil {
		return err
	}

	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return ErrInvalidOption
	}
	option := p.Options[optionIndex]

	var voterID *string
	if caller.IsAnonymous() {
		if !s.allowAnonymous {
			return ErrAuthRequired
		}
	} else {
		voted, err := s.repo.HasVoted(ctx, p.ID, caller.ID)
		if err != nil {
			return err
		}
		if voted {
			return ErrAlreadyVoted
		}
		id := caller.ID
		voterID = &id
	}

	return s.repo.Create(ctx, &Vote{
		ID:        uuid.NewString(),
		PollID:    p.ID,
		VoterID:   voterID,
		Option:    option,
		CreatedAt: s.now().UTC(),
	})
}

type OptionResult struct {
	Option     string  `json:"option"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type Results struct {
	Poll    *poll.Poll     `json:"poll"`
	Options []OptionResult `json:"options"`
	Total   int64          `json:"total_votes"`
}

// Results recomputes the tally from stored votes. Rows follow the poll's
// option order with zero counts filled in; votes whose stored text matches
// no current option are skipped rather than failing the whole read. Total
// is the number of counted votes.
func (s *Service) Results(ctx context.Context, pollID string) (*Results, error) {
	p, err := s.polls.GetByID(ctx, pollID)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountByOption(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	res := &Results{Poll: p, Options: make([]OptionResult, len(p.Options))}
	for i, opt := range p.Options {
		n := counts[opt]
		res.Options[i] = OptionResult{Option: opt, Votes: n}
		res.Total += n
	}
	for i := range res.Options {
		res.Options[i].Percentage = Percentage(res.Options[i].Votes, res.Total)
	}
	return res, nil
}

// Percentage is the display convention for tallies: a zero total yields 0
// for every option, never a division error.
func Percentage(votes, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(votes) * 100.0 / float64(total)
}
