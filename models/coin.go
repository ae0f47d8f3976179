package models

import "time"

// Coin is one row of the markets listing, denominated in USD.
type Coin struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	MarketCap    float64 `json:"market_cap"`
	TotalVolume  float64 `json:"total_volume"`
}

type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	MarketCap float64   `json:"market_cap"`
}
