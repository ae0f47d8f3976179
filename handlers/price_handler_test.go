package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
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

func TestGetPriceHistory(t *testing.T) {
	database := newTestDB(t)
	now := time.Now()

	rows := []models.CoinSnapshot{
		{Coin: "Bitcoin", Symbol: "btc", Price: 60000, CreatedAt: now.Add(-30 * time.Hour)},
		{Coin: "Bitcoin", Symbol: "btc", Price: 63000, CreatedAt: now.Add(-3 * time.Hour)},
		{Coin: "Bitcoin", Symbol: "btc", Price: 64000, CreatedAt: now.Add(-1 * time.Hour)},
		{Coin: "Ethereum", Symbol: "eth", Price: 3100, CreatedAt: now.Add(-1 * time.Hour)},
	}
	require.NoError(t, database.Create(&rows).Error)

	e := echo.New()
	RegisterRoutes(e, Handlers{
		Dashboard: NewDashboardHandler(&fakeStore{}, NewSessionStore(), nil),
		API:       NewAPIHandler(&fakeStore{}, nil),
		Prices:    NewPriceHandler(database),
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/coins/Bitcoin/history", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp PriceHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Bitcoin", resp.Coin)
	assert.Equal(t, "btc", resp.Symbol)
	assert.Equal(t, int64(2), resp.Count)
	require.Len(t, resp.Prices, 2)
	assert.Equal(t, 64000.0, resp.Prices[0].Price)
	assert.Equal(t, 63000.0, resp.Prices[1].Price)
}

func TestGetPriceHistory_Empty(t *testing.T) {
	e := echo.New()
	h := NewPriceHandler(newTestDB(t))
	e.GET("/api/coins/:name/history", h.GetPriceHistory)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/coins/Solana/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PriceHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Prices)
}
