package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"pollboard/internal/domain/vote"
)

type VoteRepo struct {
	db *sql.DB
}

func NewVoteRepo(db *sql.DB) *VoteRepo {
	return &VoteRepo{db: db}
}

// Create inserts the vote. The partial unique index on (poll_id, voter_id)
// is the real duplicate guard: a second authenticated vote racing past the
// HasVoted check dies here as a 23505 and surfaces as ErrAlreadyVoted.
func (r *VoteRepo) Create(ctx context.Context, v *vote.Vote) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO votes (id, poll_id, voter_id, option, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, v.ID, v.PollID, v.VoterID, v.Option, v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return vote.ErrAlreadyVoted
		}
		return err
	}
	return nil
}

func (r *VoteRepo) HasVoted(ctx context.Context, pollID, voterID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
        SELECT EXISTS(SELECT 1 FROM votes WHERE poll_id = $1 AND voter_id = $2)
    `, pollID, voterID).Scan(&exists)
	return exists, err
}

func (r *VoteRepo) HasAnyVotes(ctx context.Context, pollID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
        SELECT EXISTS(SELECT 1 FROM votes WHERE poll_id = $1)
    `, pollID).Scan(&exists)
	return exists, err
}

func (r *VoteRepo) CountByOption(ctx context.Context, pollID string) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT option, COUNT(*)
        FROM votes
        WHERE poll_id = $1
        GROUP BY option
    `, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[string]int64)
	for rows.Next() {
		var opt string
		var c int64
		if err := rows.Scan(&opt, &c); err != nil {
			return nil, err
		}
		res[opt] = c
	}
	return res, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
