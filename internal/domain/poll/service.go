package poll

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"pollboard/internal/domain/identity"
)

// VoteChecker reports whether a poll has received any votes. The vote
// repository implements it; the poll service only needs this one question
// to decide whether option texts are still editable.
type VoteChecker interface {
	HasAnyVotes(ctx context.Context, pollID string) (bool, error)
}

// Service coordinates the poll lifecycle: create, update, delete and reads.
// Each method resolves to exactly one repository write after validation and
// authorization have passed.
type Service struct {
	repo  Repository
	votes VoteChecker
	now   func() time.Time
}

func NewService(repo Repository, votes VoteChecker) *Service {
	return &Service{repo: repo, votes: votes, now: time.Now}
}

func (s *Service) Create(ctx context.Context, question string, options []string, caller *identity.Identity) (*Poll, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}
	if err := ValidateFields(question, options); err != nil {
		return nil, err
	}

	q, opts := normalizeFields(question, options)
	now := s.now().UTC()
	p := &Poll{
		ID:        uuid.NewString(),
		Question:  q,
		Options:   opts,
		OwnerID:   caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update overwrites the question and options of an existing poll. Once the
// poll has votes the option texts are locked, because stored votes reference
// options by text; the question may still be reworded.
func (s *Service) Update(ctx context.Context, id, question string, options []string, caller *identity.Identity) (*Poll, error) {
	if err := ValidateFields(question, options); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(caller, p) {
		return nil, ErrNotAuthorized
	}

	q, opts := normalizeFields(question, options)
	if !slices.Equal(opts, p.Options) {
		voted, err := s.votes.HasAnyVotes(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if voted {
			return nil, ErrOptionsLocked
		}
	}

	p.Question = q
	p.Options = opts
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a poll; the store cascades removal of its votes.
func (s *Service) Delete(ctx context.Context, id string, caller *identity.Identity) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(caller, p) {
		return ErrNotAuthorized
	}
	return s.repo.Delete(ctx, p.ID)
}

func (s *Service) Get(ctx context.Context, id string) (*Poll, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Poll, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListOwn(ctx context.Context, caller *identity.Identity) ([]Poll, error) {
	if caller.IsAnonymous() {
		return nil, ErrNotAuthenticated
	}
	return s.repo.ListByOwner(ctx, caller.ID)
}
