package poll

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPollNotFound     = errors.New("poll not found")
	ErrNotAuthenticated = errors.New("authentication required")
	ErrNotAuthorized    = errors.New("not allowed to modify this poll")
	ErrOptionsLocked    = errors.New("options cannot change once the poll has votes")
)

// Poll is a multiple-choice question. Options are ordered: the position of
// an option is how voters address it, its text is how stored votes reference
// it. The option list never changes length after creation.
type Poll struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	OwnerID   string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository interface {
	Create(ctx context.Context, p *Poll) error
	GetByID(ctx context.Context, id string) (*Poll, error)
	List(ctx context.Context) ([]Poll, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Poll, error)
	Update(ctx context.Context, p *Poll) error
	Delete(ctx context.Context, id string) error
}
