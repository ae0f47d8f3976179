package workers

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper drops idle entries; the dashboard session store implements it.
type Sweeper interface {
	Sweep(maxIdle time.Duration) int
}

type SessionSweeper struct {
	sessions Sweeper
	maxIdle  time.Duration
	interval time.Duration
}

func NewSessionSweeper(sessions Sweeper, maxIdle, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		maxIdle:  maxIdle,
		interval: interval,
	}
}

func (ss *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(ss.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("session sweeper shutting down...")
			return
		case <-ticker.C:
			if n := ss.sessions.Sweep(ss.maxIdle); n > 0 {
				slog.Info("swept idle sessions", "removed", n)
			}
		}
	}
}
