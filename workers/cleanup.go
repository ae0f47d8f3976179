package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/notblessy/cryptotracker/models"
	"gorm.io/gorm"
)

type CleanupWorker struct {
	db        *gorm.DB
	retention time.Duration
	interval  time.Duration
}

const defaultCleanupInterval = time.Hour

// NewCleanupWorker falls back to an hourly run when interval is not positive.
func NewCleanupWorker(db *gorm.DB, retention, interval time.Duration) *CleanupWorker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &CleanupWorker{
		db:        db,
		retention: retention,
		interval:  interval,
	}
}

func (cw *CleanupWorker) Start(ctx context.Context) {
	// Run immediately on start
	cw.Cleanup(ctx)

	ticker := time.NewTicker(cw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("cleanup worker shutting down...")
			return
		case <-ticker.C:
			cw.Cleanup(ctx)
		}
	}
}

// Cleanup deletes snapshots older than the retention window.
func (cw *CleanupWorker) Cleanup(ctx context.Context) int64 {
	cutoff := time.Now().Add(-cw.retention)

	result := cw.db.WithContext(ctx).Unscoped().Where("created_at < ?", cutoff).Delete(&models.CoinSnapshot{})
	if result.Error != nil {
		slog.Error("error during snapshot cleanup", "error", result.Error)
		return 0
	}

	slog.Info("snapshot cleanup completed", "deleted", result.RowsAffected, "cutoff", cutoff.Format(time.RFC3339))
	return result.RowsAffected
}
