package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/notblessy/cryptotracker/config"
	"github.com/notblessy/cryptotracker/db"
	"github.com/notblessy/cryptotracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := db.NewDatabase(config.Database{
		Driver: "sqlite",
		URL:    "file:" + t.Name() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	return database
}

func countSnapshots(t *testing.T, database *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.Unscoped().Model(&models.CoinSnapshot{}).Count(&n).Error)
	return n
}

var coins = []models.Coin{
	{Name: "Bitcoin", Symbol: "btc", CurrentPrice: 64000, MarketCap: 1.2e12, TotalVolume: 3e10},
	{Name: "Ethereum", Symbol: "eth", CurrentPrice: 3100, MarketCap: 3.7e11, TotalVolume: 1.5e10},
}

func TestSnapshotRecorder_Record(t *testing.T) {
	database := newTestDB(t)
	sr := NewSnapshotRecorder(database)

	n, err := sr.Record(context.Background(), coins)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var saved []models.CoinSnapshot
	require.NoError(t, database.Order("coin").Find(&saved).Error)
	require.Len(t, saved, 2)
	assert.Equal(t, "Bitcoin", saved[0].Coin)
	assert.Equal(t, "btc", saved[0].Symbol)
	assert.Equal(t, 64000.0, saved[0].Price)

	n, err = sr.Record(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSnapshotRecorder_StartDrainsQueue(t *testing.T) {
	database := newTestDB(t)
	sr := NewSnapshotRecorder(database)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sr.Start(ctx)
		close(done)
	}()

	assert.True(t, sr.Enqueue(coins))
	assert.Eventually(t, func() bool {
		var n int64
		database.Model(&models.CoinSnapshot{}).Count(&n)
		return n == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestSnapshotRecorder_EnqueueDropsWhenFull(t *testing.T) {
	sr := NewSnapshotRecorder(nil)
	for i := 0; i < snapshotQueueSize; i++ {
		require.True(t, sr.Enqueue(coins))
	}
	assert.False(t, sr.Enqueue(coins))
}

func TestCleanupWorker_DeletesOldSnapshots(t *testing.T) {
	database := newTestDB(t)
	now := time.Now()

	rows := []models.CoinSnapshot{
		{Coin: "Bitcoin", Symbol: "btc", Price: 1, CreatedAt: now.Add(-72 * time.Hour)},
		{Coin: "Bitcoin", Symbol: "btc", Price: 2, CreatedAt: now.Add(-49 * time.Hour)},
		{Coin: "Bitcoin", Symbol: "btc", Price: 3, CreatedAt: now.Add(-time.Hour)},
	}
	require.NoError(t, database.Create(&rows).Error)

	cw := NewCleanupWorker(database, 48*time.Hour, time.Hour)
	assert.Equal(t, int64(2), cw.Cleanup(context.Background()))
	assert.Equal(t, int64(1), countSnapshots(t, database))
}

type countingSweeper struct{ calls atomic.Int32 }

func (c *countingSweeper) Sweep(time.Duration) int {
	c.calls.Add(1)
	return 1
}

func TestSessionSweeper_RunsOnInterval(t *testing.T) {
	sweeper := &countingSweeper{}
	ss := NewSessionSweeper(sweeper, time.Minute, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ss.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()
	<-done
}

func TestCleanupWorker_NonPositiveIntervalFallsBack(t *testing.T) {
	database := newTestDB(t)

	for _, interval := range []time.Duration{0, -time.Minute} {
		cw := NewCleanupWorker(database, 48*time.Hour, interval)
		assert.Equal(t, defaultCleanupInterval, cw.interval)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			cw.Start(ctx)
			close(done)
		}()
		cancel()
		<-done
	}
}
