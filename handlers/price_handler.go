package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/notblessy/cryptotracker/models"
	"gorm.io/gorm"
)

const historyWindow = 24 * time.Hour

type PriceHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPriceHandler(db *gorm.DB) *PriceHandler {
	return &PriceHandler{
		db:  db,
		now: time.Now,
	}
}

type PriceResponse struct {
	Price       float64   `json:"price"`
	MarketCap   float64   `json:"market_cap"`
	TotalVolume float64   `json:"total_volume"`
	CreatedAt   time.Time `json:"created_at"`
}

type PriceHistoryResponse struct {
	Coin   string          `json:"coin"`
	Symbol string          `json:"symbol,omitempty"`
	Prices []PriceResponse `json:"prices"`
	Count  int64           `json:"count"`
}

// GetPriceHistory returns recorded snapshots of a coin from the last 24 hours
// GET /api/coins/:name/history
func (h *PriceHandler) GetPriceHistory(c echo.Context) error {
	coin := c.Param("name")
	if coin == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "coin name is required",
		})
	}

	since := h.now().Add(-historyWindow)

	var snapshots []models.CoinSnapshot
	var count int64

	query := h.db.WithContext(c.Request().Context()).
		Model(&models.CoinSnapshot{}).
		Where("coin = ? AND created_at >= ?", coin, since).
		Session(&gorm.Session{})

	if err := query.Count(&count).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to count snapshots",
		})
	}

	if err := query.Order("created_at DESC").Find(&snapshots).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch snapshots",
		})
	}

	response := PriceHistoryResponse{
		Coin:   coin,
		Prices: make([]PriceResponse, len(snapshots)),
		Count:  count,
	}
	for i, s := range snapshots {
		response.Symbol = s.Symbol
		response.Prices[i] = PriceResponse{
			Price:       s.Price,
			MarketCap:   s.MarketCap,
			TotalVolume: s.TotalVolume,
			CreatedAt:   s.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}
