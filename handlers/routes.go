package handlers

import "github.com/labstack/echo/v4"

// Handlers groups everything the router serves. Prices is nil when
// persistence is disabled.
type Handlers struct {
	Dashboard *DashboardHandler
	API       *APIHandler
	Prices    *PriceHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.Renderer = NewTemplateRenderer()

	e.GET("/", h.Dashboard.Index)

	events := e.Group("/events")
	events.POST("/section", h.Dashboard.SelectSection)
	events.POST("/search", h.Dashboard.ChangeSearch)
	events.POST("/coin", h.Dashboard.SelectCoin)
	events.POST("/refresh", h.Dashboard.Refresh)
	events.POST("/exchanges-toggle", h.Dashboard.ToggleExchanges)

	api := e.Group("/api")
	api.GET("/coins", h.API.ListCoins)
	api.GET("/coins/:name/trend", h.API.GetTrend)
	api.GET("/exchanges", h.API.ListExchanges)
	api.GET("/exchanges/map", h.API.ExchangeMap)
	api.POST("/refresh", h.API.Refresh)

	if h.Prices != nil {
		api.GET("/coins/:name/history", h.Prices.GetPriceHistory)
	}
}
