package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/notblessy/cryptotracker/config"
	"github.com/notblessy/cryptotracker/db"
	"github.com/notblessy/cryptotracker/handlers"
	"github.com/notblessy/cryptotracker/models"
	"github.com/notblessy/cryptotracker/services"
	"github.com/notblessy/cryptotracker/workers"
)

const (
	sessionMaxIdle       = 24 * time.Hour
	sessionSweepInterval = time.Hour
)

// warmUp fills the market cache in the background so a slow upstream never
// holds up the listener; failures are memoized and surface on first render.
func warmUp(ctx context.Context, store handlers.MarketStore) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		slog.Info("fetching initial market data...")
		store.Coins(ctx)
	}()
	return done
}

func main() {
	cfg := config.Load()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := services.NewCoinGeckoClient(
		services.WithBaseURL(cfg.CoinGecko.BaseURL),
		services.WithAPIKey(cfg.CoinGecko.APIKey),
		services.WithTimeout(cfg.CoinGecko.Timeout),
	)
	store := services.NewMarketStore(client)
	sessions := handlers.NewSessionStore()

	// WaitGroup to wait for all workers to finish
	var wg sync.WaitGroup

	h := handlers.Handlers{
		Dashboard: handlers.NewDashboardHandler(store, sessions, cfg.TrendSeed),
		API:       handlers.NewAPIHandler(store, cfg.TrendSeed),
	}

	if cfg.PersistenceEnabled() {
		database, err := db.NewDatabase(cfg.Database)
		if err != nil {
			slog.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		slog.Info("database initialized and migrated successfully", "driver", cfg.Database.Driver)

		recorder := workers.NewSnapshotRecorder(database)
		cleanupWorker := workers.NewCleanupWorker(database, cfg.Database.Retention, cfg.Database.CleanupInterval)
		store.OnCoinsFetched(func(coins []models.Coin) {
			recorder.Enqueue(coins)
		})

		wg.Add(2)
		go func() {
			defer wg.Done()
			recorder.Start(ctx)
		}()
		go func() {
			defer wg.Done()
			cleanupWorker.Start(ctx)
		}()

		h.Prices = handlers.NewPriceHandler(database)
	} else {
		slog.Info("DATABASE_URL not set, snapshot history disabled")
	}

	sweeper := workers.NewSessionSweeper(sessions, sessionMaxIdle, sessionSweepInterval)
	wg.Add(1)
	go func() {
		defer wg.Done()
		sweeper.Start(ctx)
	}()

	warmUp(ctx, store)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	handlers.RegisterRoutes(e, h)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: e,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("HTTP server starting", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("shutdown signal received, initiating graceful shutdown...")

	// Cancel context to signal workers to stop
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped successfully")
	}

	// Wait for workers to finish with timeout
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("all workers stopped successfully")
	case <-time.After(30 * time.Second):
		slog.Warn("timeout waiting for workers to stop, forcing shutdown")
	}

	slog.Info("application shutdown complete")
}
