package dashboard

import (
	"context"
	"math/rand/v2"

	"github.com/notblessy/cryptotracker/models"
	"github.com/notblessy/cryptotracker/services"
)

const (
	Title = "Cryptocurrency Tracker"
	Intro = "Track real-time cryptocurrency prices, trends, and market insights."

	MsgMarketFetchFailed   = "Failed to fetch data from CoinGecko API"
	MsgExchangeFetchFailed = "Failed to fetch exchange data from CoinGecko."
	MsgRefreshed           = "Data refreshed successfully!"
	MsgNoCoinData          = "No data available for the selected cryptocurrency."
	MsgNoExchangeData      = "No exchange data available."
	MsgNoLocationData      = "No valid location data available for exchanges."
	MsgLoaded              = "App loaded successfully!"
	MsgMaybeOutdated       = "Data may be outdated if not refreshed."

	ExchangesToggleLabel = "Show List of Best Global Exchangers"
)

// Store is the memoized data the dashboard reads from.
type Store interface {
	Coins(ctx context.Context) services.Result[models.Coin]
	Exchanges(ctx context.Context) services.Result[models.Exchange]
}

// Data is the fetched input to a single render. Exchanges is only loaded
// for the map section.
type Data struct {
	Coins     services.Result[models.Coin]
	Exchanges *services.Result[models.Exchange]
}

// Load reads what the given section needs from the store.
func Load(ctx context.Context, store Store, section Section) Data {
	data := Data{Coins: store.Coins(ctx)}
	if section == SectionMap {
		ex := store.Exchanges(ctx)
		data.Exchanges = &ex
	}
	return data
}

type NavItem struct {
	Section Section
	Label   string
	Active  bool
}

type CoinRow struct {
	Name      string
	Symbol    string
	Price     string
	MarketCap string
	Volume    string
}

type ExchangeRow struct {
	Name            string
	Country         string
	YearEstablished string
	TrustScoreRank  string
}

type OverviewView struct {
	Search string
	Coins  []models.Coin
	Rows   []CoinRow
}

type TrendsView struct {
	Options        []string
	Selected       string
	Points         []models.TrendPoint
	PriceChart     *Chart
	MarketCapChart *Chart
}

type MapView struct {
	Points        []models.MapPoint
	Plot          *MapPlot
	ShowExchanges bool
	ToggleLabel   string
	Exchanges     []models.Exchange
	Rows          []ExchangeRow
}

// View is everything needed to draw the page for one state.
type View struct {
	Title   string
	Intro   string
	Nav     []NavItem
	Section Section
	Heading string

	Notices []models.Notice
	Sidebar []models.Notice

	Overview *OverviewView
	Trends   *TrendsView
	Map      *MapView
}

// Render builds the view for state from data. It has no side effects; rng
// only feeds the simulated trend series.
func Render(state State, data Data, rng *rand.Rand) View {
	section := state.Section
	if _, ok := ParseSection(string(section)); !ok {
		section = SectionOverview
	}

	v := View{
		Title:   Title,
		Intro:   Intro,
		Section: section,
		Heading: headingFor(section),
		Sidebar: []models.Notice{
			{Level: models.NoticeSuccess, Text: MsgLoaded},
			{Level: models.NoticeWarning, Text: MsgMaybeOutdated},
		},
	}
	for _, s := range Sections {
		v.Nav = append(v.Nav, NavItem{Section: s, Label: s.Label(), Active: s == section})
	}

	if data.Coins.Failed() {
		v.Notices = append(v.Notices, models.Notice{Level: models.NoticeError, Text: MsgMarketFetchFailed})
	}

	switch section {
	case SectionTrends:
		v.Trends = renderTrends(&v, state, data.Coins.Items, rng)
	case SectionMap:
		v.Map = renderMap(&v, state, data.Exchanges)
	default:
		v.Overview = renderOverview(state, data.Coins.Items)
	}

	v.Notices = append(v.Notices, state.Flash...)
	return v
}

func headingFor(s Section) string {
	if s == SectionOverview {
		return "Cryptocurrency Overview"
	}
	return s.Label()
}

func renderOverview(state State, coins []models.Coin) *OverviewView {
	filtered := FilterCoins(coins, state.Search)
	ov := &OverviewView{
		Search: state.Search,
		Coins:  filtered,
		Rows:   make([]CoinRow, len(filtered)),
	}
	for i, c := range filtered {
		ov.Rows[i] = CoinRow{
			Name:      c.Name,
			Symbol:    c.Symbol,
			Price:     FormatPrice(c.CurrentPrice),
			MarketCap: FormatLarge(c.MarketCap),
			Volume:    FormatLarge(c.TotalVolume),
		}
	}
	return ov
}

// SelectedCoin resolves the coin selector: an explicit choice wins,
// otherwise the first listed coin is selected.
func SelectedCoin(state State, coins []models.Coin) string {
	if state.SelectedCoin != "" {
		return state.SelectedCoin
	}
	if len(coins) > 0 {
		return coins[0].Name
	}
	return ""
}

func renderTrends(v *View, state State, coins []models.Coin, rng *rand.Rand) *TrendsView {
	tv := &TrendsView{
		Options:  coinNames(coins),
		Selected: SelectedCoin(state, coins),
	}

	coin, ok := FindCoin(coins, tv.Selected)
	if !ok {
		v.Notices = append(v.Notices, models.Notice{Level: models.NoticeWarning, Text: MsgNoCoinData})
		return tv
	}

	tv.Points = GenerateTrend(rng, coin)
	tv.PriceChart = PriceChart(coin.Name, tv.Points)
	tv.MarketCapChart = MarketCapChart(coin.Name, tv.Points)
	return tv
}

func renderMap(v *View, state State, exchanges *services.Result[models.Exchange]) *MapView {
	mv := &MapView{
		ShowExchanges: state.ShowExchanges,
		ToggleLabel:   ExchangesToggleLabel,
	}
	if exchanges == nil {
		exchanges = &services.Result[models.Exchange]{}
	}
	mv.Exchanges = exchanges.Items

	if exchanges.Failed() {
		v.Notices = append(v.Notices, models.Notice{Level: models.NoticeError, Text: MsgExchangeFetchFailed})
	}

	if len(exchanges.Items) == 0 {
		v.Notices = append(v.Notices, models.Notice{Level: models.NoticeWarning, Text: MsgNoExchangeData})
	} else {
		mv.Points = MapExchanges(exchanges.Items)
		if len(mv.Points) == 0 {
			v.Notices = append(v.Notices, models.Notice{Level: models.NoticeWarning, Text: MsgNoLocationData})
		} else {
			mv.Plot = NewMapPlot(mv.Points)
		}
	}

	if state.ShowExchanges {
		mv.Rows = make([]ExchangeRow, len(exchanges.Items))
		for i, ex := range exchanges.Items {
			mv.Rows[i] = ExchangeRow{
				Name:            ex.Name,
				Country:         formatOptionalString(ex.Country),
				YearEstablished: formatOptionalInt(ex.YearEstablished),
				TrustScoreRank:  formatOptionalInt(ex.TrustScoreRank),
			}
		}
	}
	return mv
}
