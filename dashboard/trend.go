package dashboard

import (
	"math/rand/v2"
	"time"

	"github.com/notblessy/cryptotracker/models"
)

const (
	TrendDays = 10

	// trendSpread bounds simulated values to ±10% of the current figure.
	trendSpread = 0.1
)

var TrendStart = time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)

// NewRand returns a random source for trend generation. A nil seed gives an
// unseeded, non-reproducible source.
func NewRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// GenerateTrend simulates TrendDays daily points around the coin's current
// price and market cap. The series is not real history.
func GenerateTrend(rng *rand.Rand, coin models.Coin) []models.TrendPoint {
	prices := uniformSeries(rng, coin.CurrentPrice)
	caps := uniformSeries(rng, coin.MarketCap)

	points := make([]models.TrendPoint, TrendDays)
	for i := range points {
		points[i] = models.TrendPoint{
			Timestamp: TrendStart.AddDate(0, 0, i),
			Price:     prices[i],
			MarketCap: caps[i],
		}
	}
	return points
}

func uniformSeries(rng *rand.Rand, center float64) []float64 {
	low := center * (1 - trendSpread)
	high := center * (1 + trendSpread)

	out := make([]float64, TrendDays)
	for i := range out {
		out[i] = low + rng.Float64()*(high-low)
	}
	return out
}
