package worker

import (
	"context"
	"log/slog"

	"pollboard/internal/metrics"
)

type VoteEvent struct {
	PollID    string
	Anonymous bool
}

// StatsWorker drains accepted-vote events off the hot path and feeds the
// vote counters. Handlers publish with a non-blocking send, so a full
// channel drops the event rather than delaying the response.
type StatsWorker struct {
	ch  <-chan VoteEvent
	log *slog.Logger
}

func NewStatsWorker(ch <-chan VoteEvent, log *slog.Logger) *StatsWorker {
	return &StatsWorker{ch: ch, log: log}
}

func (w *StatsWorker) Run(ctx context.Context) {
	w.log.Info("stats worker started")
	for {
		select {
		case <-ctx.Done():
			w.log.Info("stats worker stopped")
			return
		case ev := <-w.ch:
			voter := "user"
			if ev.Anonymous {
				voter = "anonymous"
			}
			metrics.IncVote(voter)
			w.log.Debug("vote recorded", "poll_id", ev.PollID, "voter", voter)
		}
	}
}
