package handlers

import (
	"context"
	"math/rand/v2"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/notblessy/cryptotracker/dashboard"
	"github.com/notblessy/cryptotracker/models"
	"github.com/notblessy/cryptotracker/services"
)

// MarketStore is the memoized market data behind every handler.
type MarketStore interface {
	dashboard.Store
	RefreshCoins(ctx context.Context) services.Result[models.Coin]
}

type DashboardHandler struct {
	store    MarketStore
	sessions *SessionStore
	seed     *uint64
}

func NewDashboardHandler(store MarketStore, sessions *SessionStore, seed *uint64) *DashboardHandler {
	return &DashboardHandler{
		store:    store,
		sessions: sessions,
		seed:     seed,
	}
}

func (h *DashboardHandler) rng() *rand.Rand {
	return dashboard.NewRand(h.seed)
}

// Index renders the dashboard for the caller's session.
// GET /
func (h *DashboardHandler) Index(c echo.Context) error {
	sess := h.sessions.Get(c)

	var view dashboard.View
	sess.Update(func(state *dashboard.State) {
		data := dashboard.Load(c.Request().Context(), h.store, state.Section)
		view = dashboard.Render(*state, data, h.rng())
		state.TakeFlash()
	})

	return c.Render(http.StatusOK, "index.html", view)
}

// SelectSection switches the navigation section.
// POST /events/section
func (h *DashboardHandler) SelectSection(c echo.Context) error {
	section, ok := dashboard.ParseSection(c.FormValue("section"))
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "unknown section",
		})
	}
	return h.apply(c, dashboard.SectionSelected{Section: section})
}

// ChangeSearch updates the overview name filter.
// POST /events/search
func (h *DashboardHandler) ChangeSearch(c echo.Context) error {
	return h.apply(c, dashboard.SearchChanged{Query: c.FormValue("q")})
}

// SelectCoin picks the coin shown on the price trends section.
// POST /events/coin
func (h *DashboardHandler) SelectCoin(c echo.Context) error {
	return h.apply(c, dashboard.CoinSelected{Name: c.FormValue("coin")})
}

// ToggleExchanges shows or hides the exchange detail table.
// POST /events/exchanges-toggle
func (h *DashboardHandler) ToggleExchanges(c echo.Context) error {
	show := false
	switch c.FormValue("show") {
	case "true", "on", "1":
		show = true
	}
	return h.apply(c, dashboard.ExchangesToggled{Show: show})
}

// Refresh re-fetches market data regardless of the memoized copy.
// POST /events/refresh
func (h *DashboardHandler) Refresh(c echo.Context) error {
	res := h.store.RefreshCoins(c.Request().Context())
	return h.apply(c, dashboard.RefreshClicked{Err: res.Err})
}

func (h *DashboardHandler) apply(c echo.Context, ev dashboard.Event) error {
	sess := h.sessions.Get(c)
	sess.Update(func(state *dashboard.State) {
		*state = ev.Apply(*state)
	})
	return c.Redirect(http.StatusSeeOther, "/")
}
