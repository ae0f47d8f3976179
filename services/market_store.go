package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/notblessy/cryptotracker/models"
	"golang.org/x/sync/singleflight"
)

// MarketSource is the upstream the store memoizes.
type MarketSource interface {
	GetMarkets(ctx context.Context) ([]models.Coin, error)
	GetExchanges(ctx context.Context) ([]models.Exchange, error)
}

// Result is a memoized listing. A failed fetch is memoized as an empty
// result carrying Err until the next refresh.
type Result[T any] struct {
	Items     []T
	FetchedAt time.Time
	Err       error
}

func (r Result[T]) Failed() bool { return r.Err != nil }

// CoinsListener is notified after every successful markets fetch.
type CoinsListener func(coins []models.Coin)

// MarketStore memoizes the markets and exchanges listings for the process
// lifetime or until explicitly refreshed.
type MarketStore struct {
	source MarketSource
	now    func() time.Time

	mu        sync.RWMutex
	coins     *Result[models.Coin]
	exchanges *Result[models.Exchange]
	listeners []CoinsListener

	// Bumped on every refresh or invalidation; a fetch that started under an
	// older generation must not overwrite the cache.
	coinsGen     uint64
	exchangesGen uint64

	group singleflight.Group
}

func NewMarketStore(source MarketSource) *MarketStore {
	return &MarketStore{
		source: source,
		now:    time.Now,
	}
}

// OnCoinsFetched registers a listener for successful markets fetches.
func (s *MarketStore) OnCoinsFetched(l CoinsListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Coins returns the memoized markets listing, fetching it on first access.
func (s *MarketStore) Coins(ctx context.Context) Result[models.Coin] {
	s.mu.RLock()
	cached := s.coins
	s.mu.RUnlock()
	if cached != nil {
		return *cached
	}
	return s.loadCoins(ctx)
}

// Exchanges returns the memoized exchanges listing, fetching it on first access.
func (s *MarketStore) Exchanges(ctx context.Context) Result[models.Exchange] {
	s.mu.RLock()
	cached := s.exchanges
	s.mu.RUnlock()
	if cached != nil {
		return *cached
	}
	return s.loadExchanges(ctx)
}

// RefreshCoins discards the memoized markets listing and fetches it again.
func (s *MarketStore) RefreshCoins(ctx context.Context) Result[models.Coin] {
	s.mu.Lock()
	s.coins = nil
	s.coinsGen++
	s.mu.Unlock()
	s.group.Forget("coins")
	return s.loadCoins(ctx)
}

// Invalidate drops both memoized listings without fetching.
func (s *MarketStore) Invalidate() {
	s.mu.Lock()
	s.coins = nil
	s.exchanges = nil
	s.coinsGen++
	s.exchangesGen++
	s.mu.Unlock()
	s.group.Forget("coins")
	s.group.Forget("exchanges")
}

func (s *MarketStore) loadCoins(ctx context.Context) Result[models.Coin] {
	v, _, _ := s.group.Do("coins", func() (any, error) {
		s.mu.RLock()
		cached, gen := s.coins, s.coinsGen
		s.mu.RUnlock()
		if cached != nil {
			return *cached, nil
		}

		// The result is shared, so it must not die with the caller's request.
		coins, err := s.source.GetMarkets(context.WithoutCancel(ctx))
		res := Result[models.Coin]{Items: coins, FetchedAt: s.now(), Err: err}
		if err != nil {
			slog.Error("failed to fetch market data", "error", err)
			res.Items = []models.Coin{}
		} else {
			slog.Info("fetched market data", "coins", len(coins))
		}

		s.mu.Lock()
		current := gen == s.coinsGen
		if current {
			s.coins = &res
		}
		latest := s.coins
		listeners := append([]CoinsListener(nil), s.listeners...)
		s.mu.Unlock()

		if !current {
			slog.Info("discarding market data superseded by a refresh")
			if latest != nil {
				return *latest, nil
			}
			return res, nil
		}
		if err == nil {
			for _, l := range listeners {
				l(coins)
			}
		}
		return res, nil
	})
	return v.(Result[models.Coin])
}

func (s *MarketStore) loadExchanges(ctx context.Context) Result[models.Exchange] {
	v, _, _ := s.group.Do("exchanges", func() (any, error) {
		s.mu.RLock()
		cached, gen := s.exchanges, s.exchangesGen
		s.mu.RUnlock()
		if cached != nil {
			return *cached, nil
		}

		exchanges, err := s.source.GetExchanges(context.WithoutCancel(ctx))
		res := Result[models.Exchange]{Items: exchanges, FetchedAt: s.now(), Err: err}
		if err != nil {
			slog.Error("failed to fetch exchange data", "error", err)
			res.Items = []models.Exchange{}
		} else {
			slog.Info("fetched exchange data", "exchanges", len(exchanges))
		}

		s.mu.Lock()
		if gen == s.exchangesGen {
			s.exchanges = &res
		}
		s.mu.Unlock()
		return res, nil
	})
	return v.(Result[models.Exchange])
}
