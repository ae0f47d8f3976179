package dashboard

import (
	"math"
	"strconv"
	"strings"

	"github.com/notblessy/cryptotracker/models"
)

const (
	chartWidth  = 800.0
	chartHeight = 480.0

	marginLeft   = 90.0
	marginRight  = 20.0
	marginTop    = 40.0
	marginBottom = 50.0

	yTicks = 5

	mapWidth  = 800.0
	mapHeight = 400.0
)

type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartArea ChartKind = "area"
)

type Tick struct {
	Pos   float64
	Label string
}

type Marker struct {
	X, Y  float64
	Label string
}

// Chart is SVG geometry for a single series plotted over the trend dates.
type Chart struct {
	Kind   ChartKind
	Title  string
	XLabel string
	YLabel string
	Legend string

	Width, Height float64
	PlotLeft      float64
	PlotRight     float64
	PlotTop       float64
	PlotBottom    float64

	// Points is an SVG points list for the series polyline or area polygon.
	Points  string
	Markers []Marker
	XTicks  []Tick
	YTicks  []Tick
}

func (c *Chart) CenterX() float64 { return (c.PlotLeft + c.PlotRight) / 2 }
func (c *Chart) CenterY() float64 { return (c.PlotTop + c.PlotBottom) / 2 }

// PriceChart plots simulated prices as a line with markers.
func PriceChart(coin string, points []models.TrendPoint) *Chart {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Price
	}
	c := newChart(ChartLine, points, values, false)
	c.Title = "Price Trend for " + coin
	c.XLabel = "Date"
	c.YLabel = "Price (USD)"
	c.Legend = "Price"
	return c
}

// MarketCapChart plots simulated market caps as an area filled down to zero.
func MarketCapChart(coin string, points []models.TrendPoint) *Chart {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.MarketCap
	}
	c := newChart(ChartArea, points, values, true)
	c.Title = "Market Cap Trend for " + coin
	c.XLabel = "Date"
	c.YLabel = "Market Cap (USD)"
	return c
}

func newChart(kind ChartKind, points []models.TrendPoint, values []float64, fromZero bool) *Chart {
	c := &Chart{
		Kind:       kind,
		Width:      chartWidth,
		Height:     chartHeight,
		PlotLeft:   marginLeft,
		PlotRight:  chartWidth - marginRight,
		PlotTop:    marginTop,
		PlotBottom: chartHeight - marginBottom,
	}
	if len(values) == 0 {
		return c
	}

	lo, hi := bounds(values, fromZero)
	x := func(i int) float64 {
		if len(values) == 1 {
			return (c.PlotLeft + c.PlotRight) / 2
		}
		return c.PlotLeft + float64(i)*(c.PlotRight-c.PlotLeft)/float64(len(values)-1)
	}
	y := func(v float64) float64 {
		return c.PlotBottom - (v-lo)/(hi-lo)*(c.PlotBottom-c.PlotTop)
	}

	coords := make([]string, 0, len(values)+2)
	for i, v := range values {
		px, py := x(i), y(v)
		coords = append(coords, formatCoord(px)+","+formatCoord(py))
		c.Markers = append(c.Markers, Marker{X: px, Y: py, Label: FormatPrice(v)})
		c.XTicks = append(c.XTicks, Tick{Pos: px, Label: points[i].Timestamp.Format("Jan 02")})
	}
	if kind == ChartArea {
		base := y(math.Max(lo, 0))
		coords = append(coords, formatCoord(x(len(values)-1))+","+formatCoord(base))
		coords = append([]string{formatCoord(x(0)) + "," + formatCoord(base)}, coords...)
		c.Markers = nil
	}
	c.Points = strings.Join(coords, " ")

	for i := 0; i <= yTicks; i++ {
		v := lo + float64(i)*(hi-lo)/yTicks
		c.YTicks = append(c.YTicks, Tick{Pos: y(v), Label: FormatCompact(v)})
	}
	return c
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// bounds returns the y-axis range with a 5% pad, anchored at zero when asked.
func bounds(values []float64, fromZero bool) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if fromZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if hi == lo {
		pad := math.Max(math.Abs(hi)*0.05, 1)
		return lo - pad, hi + pad
	}
	pad := (hi - lo) * 0.05
	if fromZero && lo == 0 {
		return 0, hi + pad
	}
	return lo - pad, hi + pad
}

type MapMarker struct {
	X, Y float64
	Name string
}

// MapPlot is an equirectangular world plot of exchange locations.
type MapPlot struct {
	Width, Height float64
	Meridians     []float64
	Parallels     []float64
	Markers       []MapMarker
}

func NewMapPlot(points []models.MapPoint) *MapPlot {
	m := &MapPlot{Width: mapWidth, Height: mapHeight}
	for lon := -150.0; lon <= 150; lon += 30 {
		m.Meridians = append(m.Meridians, m.x(lon))
	}
	for lat := -60.0; lat <= 60; lat += 30 {
		m.Parallels = append(m.Parallels, m.y(lat))
	}
	for _, p := range points {
		m.Markers = append(m.Markers, MapMarker{X: m.x(p.Lon), Y: m.y(p.Lat), Name: p.Name})
	}
	return m
}

func (m *MapPlot) x(lon float64) float64 { return (lon + 180) / 360 * m.Width }
func (m *MapPlot) y(lat float64) float64 { return (90 - lat) / 180 * m.Height }
