package workers

import (
	"context"
	"log/slog"

	"github.com/notblessy/cryptotracker/models"
	"gorm.io/gorm"
)

const snapshotQueueSize = 8

// SnapshotRecorder persists every successful market fetch it is handed.
type SnapshotRecorder struct {
	db      *gorm.DB
	batches chan []models.Coin
}

func NewSnapshotRecorder(db *gorm.DB) *SnapshotRecorder {
	return &SnapshotRecorder{
		db:      db,
		batches: make(chan []models.Coin, snapshotQueueSize),
	}
}

// Enqueue hands a fetched listing to the recorder without blocking. When the
// queue is full the listing is dropped and false is returned.
func (sr *SnapshotRecorder) Enqueue(coins []models.Coin) bool {
	select {
	case sr.batches <- coins:
		return true
	default:
		slog.Warn("snapshot queue full, dropping market listing", "coins", len(coins))
		return false
	}
}

func (sr *SnapshotRecorder) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("snapshot recorder shutting down...")
			return
		case coins := <-sr.batches:
			if _, err := sr.Record(ctx, coins); err != nil {
				slog.Error("failed to record market snapshot", "error", err)
			}
		}
	}
}

// Record saves one snapshot row per coin and returns how many were written.
func (sr *SnapshotRecorder) Record(ctx context.Context, coins []models.Coin) (int64, error) {
	if len(coins) == 0 {
		return 0, nil
	}

	snapshots := make([]models.CoinSnapshot, len(coins))
	for i, c := range coins {
		snapshots[i] = models.NewCoinSnapshot(c)
	}

	result := sr.db.WithContext(ctx).Create(&snapshots)
	if result.Error != nil {
		return 0, result.Error
	}

	slog.Info("recorded market snapshot", "coins", result.RowsAffected)
	return result.RowsAffected, nil
}
