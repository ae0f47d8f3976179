package models

import (
	"time"

	"gorm.io/gorm"
)

// CoinSnapshot is one coin as seen by a successful markets fetch.
type CoinSnapshot struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Coin        string         `gorm:"type:varchar(100);not null;index" json:"coin"`
	Symbol      string         `gorm:"type:varchar(20);not null" json:"symbol"`
	Price       float64        `gorm:"type:decimal(30,10);not null" json:"price"`
	MarketCap   float64        `gorm:"type:decimal(30,2)" json:"market_cap"`
	TotalVolume float64        `gorm:"type:decimal(30,2)" json:"total_volume"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CoinSnapshot) TableName() string {
	return "coin_snapshots"
}

func NewCoinSnapshot(c Coin) CoinSnapshot {
	return CoinSnapshot{
		Coin:        c.Name,
		Symbol:      c.Symbol,
		Price:       c.CurrentPrice,
		MarketCap:   c.MarketCap,
		TotalVolume: c.TotalVolume,
	}
}
