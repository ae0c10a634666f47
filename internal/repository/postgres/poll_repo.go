package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"pollboard/internal/domain/poll"
)

type PollRepo struct {
	db *sql.DB
}

func NewPollRepo(db *sql.DB) *PollRepo {
	return &PollRepo{db: db}
}

func (r *PollRepo) Create(ctx context.Context, p *poll.Poll) error {
	opts, err := json.Marshal(p.Options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO polls (id, question, options, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, p.ID, p.Question, opts, p.OwnerID, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PollRepo) GetByID(ctx context.Context, id string) (*poll.Poll, error) {
	p := &poll.Poll{}
	var opts []byte
	err := r.db.QueryRowContext(ctx, `
        SELECT id, question, options, created_by, created_at, updated_at
        FROM polls WHERE id = $1
    `, id).Scan(&p.ID, &p.Question, &opts, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, poll.ErrPollNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(opts, &p.Options); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return p, nil
}

func (r *PollRepo) List(ctx context.Context) ([]poll.Poll, error) {
	return r.queryPolls(ctx, `
        SELECT id, question, options, created_by, created_at, updated_at
        FROM polls ORDER BY created_at DESC
    `)
}

func (r *PollRepo) ListByOwner(ctx context.Context, ownerID string) ([]poll.Poll, error) {
	return r.queryPolls(ctx, `
        SELECT id, question, options, created_by, created_at, updated_at
        FROM polls WHERE created_by = $1 ORDER BY created_at DESC
    `, ownerID)
}

func (r *PollRepo) Update(ctx context.Context, p *poll.Poll) error {
	opts, err := json.Marshal(p.Options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
        UPDATE polls SET question = $1, options = $2, updated_at = $3 WHERE id = $4
    `, p.Question, opts, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return poll.ErrPollNotFound
	}
	return nil
}

// Delete removes the poll; votes go with it via ON DELETE CASCADE.
func (r *PollRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return poll.ErrPollNotFound
	}
	return nil
}

func (r *PollRepo) queryPolls(ctx context.Context, query string, args ...any) ([]poll.Poll, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []poll.Poll
	for rows.Next() {
		var p poll.Poll
		var opts []byte
		if err := rows.Scan(&p.ID, &p.Question, &opts, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(opts, &p.Options); err != nil {
			return nil, fmt.Errorf("decode options: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}
