package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/notblessy/cryptotracker/dashboard"
	"github.com/notblessy/cryptotracker/models"
)

type APIHandler struct {
	store MarketStore
	seed  *uint64
}

func NewAPIHandler(store MarketStore, seed *uint64) *APIHandler {
	return &APIHandler{
		store: store,
		seed:  seed,
	}
}

type CoinsResponse struct {
	Coins     []models.Coin   `json:"coins"`
	Count     int             `json:"count"`
	FetchedAt time.Time       `json:"fetched_at"`
	Notices   []models.Notice `json:"notices,omitempty"`
}

type TrendResponse struct {
	Coin    string              `json:"coin"`
	Points  []models.TrendPoint `json:"points"`
	Notices []models.Notice     `json:"notices,omitempty"`
}

type ExchangesResponse struct {
	Exchanges []models.Exchange `json:"exchanges"`
	Count     int               `json:"count"`
	FetchedAt time.Time         `json:"fetched_at"`
	Notices   []models.Notice   `json:"notices,omitempty"`
}

type MapResponse struct {
	Points  []models.MapPoint `json:"points"`
	Count   int               `json:"count"`
	Notices []models.Notice   `json:"notices,omitempty"`
}

// ListCoins returns memoized coins filtered by name.
// GET /api/coins?q=
func (h *APIHandler) ListCoins(c echo.Context) error {
	state := dashboard.SearchChanged{Query: c.QueryParam("q")}.Apply(dashboard.NewState())
	data := dashboard.Load(c.Request().Context(), h.store, dashboard.SectionOverview)
	view := dashboard.Render(state, data, nil)

	return c.JSON(http.StatusOK, CoinsResponse{
		Coins:     view.Overview.Coins,
		Count:     len(view.Overview.Coins),
		FetchedAt: data.Coins.FetchedAt,
		Notices:   view.Notices,
	})
}

// GetTrend returns a simulated 10 day series for a coin.
// GET /api/coins/:name/trend
func (h *APIHandler) GetTrend(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "coin name is required",
		})
	}

	state := dashboard.NewState()
	state = dashboard.SectionSelected{Section: dashboard.SectionTrends}.Apply(state)
	state = dashboard.CoinSelected{Name: name}.Apply(state)

	data := dashboard.Load(c.Request().Context(), h.store, dashboard.SectionTrends)
	view := dashboard.Render(state, data, dashboard.NewRand(h.seed))

	status := http.StatusOK
	if len(view.Trends.Points) == 0 {
		status = http.StatusNotFound
	}

	return c.JSON(status, TrendResponse{
		Coin:    name,
		Points:  view.Trends.Points,
		Notices: view.Notices,
	})
}

// ListExchanges returns memoized exchange metadata.
// GET /api/exchanges
func (h *APIHandler) ListExchanges(c echo.Context) error {
	res := h.store.Exchanges(c.Request().Context())

	var notices []models.Notice
	if res.Failed() {
		notices = append(notices, models.Notice{Level: models.NoticeError, Text: dashboard.MsgExchangeFetchFailed})
	}

	return c.JSON(http.StatusOK, ExchangesResponse{
		Exchanges: res.Items,
		Count:     len(res.Items),
		FetchedAt: res.FetchedAt,
		Notices:   notices,
	})
}

// ExchangeMap returns exchange locations resolved from their country.
// GET /api/exchanges/map
func (h *APIHandler) ExchangeMap(c echo.Context) error {
	state := dashboard.SectionSelected{Section: dashboard.SectionMap}.Apply(dashboard.NewState())
	exchanges := h.store.Exchanges(c.Request().Context())
	view := dashboard.Render(state, dashboard.Data{Exchanges: &exchanges}, nil)

	points := view.Map.Points
	if points == nil {
		points = []models.MapPoint{}
	}

	return c.JSON(http.StatusOK, MapResponse{
		Points:  points,
		Count:   len(view.Map.Points),
		Notices: view.Notices,
	})
}

// Refresh re-fetches market data and returns the new listing.
// POST /api/refresh
func (h *APIHandler) Refresh(c echo.Context) error {
	res := h.store.RefreshCoins(c.Request().Context())

	notices := []models.Notice{{Level: models.NoticeSuccess, Text: dashboard.MsgRefreshed}}
	if res.Failed() {
		notices = []models.Notice{{Level: models.NoticeError, Text: dashboard.MsgMarketFetchFailed}}
	}

	return c.JSON(http.StatusOK, CoinsResponse{
		Coins:     res.Items,
		Count:     len(res.Items),
		FetchedAt: res.FetchedAt,
		Notices:   notices,
	})
}
