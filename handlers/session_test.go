package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/notblessy/cryptotracker/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_ReusesCookieSession(t *testing.T) {
	e := echo.New()
	store := NewSessionStore()

	rec := httptest.NewRecorder()
	first := store.Get(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, first.ID.String(), cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	second := store.Get(e.NewContext(req, httptest.NewRecorder()))

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	e := echo.New()
	store := NewSessionStore()

	stale := store.Get(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))
	fresh := store.Get(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))
	stale.lastSeen = time.Now().Add(-2 * time.Hour)

	fresh.Update(func(state *dashboard.State) {
		state.Search = "eth"
	})

	assert.Equal(t, 1, store.Sweep(time.Hour))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "eth", fresh.State().Search)
}
