package dashboard

import "github.com/notblessy/cryptotracker/models"

// CountryCoordinates are rough country centroids used in place of geocoding.
var CountryCoordinates = map[string]models.Coordinates{
	"Cayman Islands":         {Lat: 19.3133, Lon: -81.2546},
	"British Virgin Islands": {Lat: 18.4207, Lon: -64.6399},
	"United States":          {Lat: 37.0902, Lon: -95.7129},
	"Seychelles":             {Lat: -4.6796, Lon: 55.4920},
	"Hong Kong":              {Lat: 22.3193, Lon: 114.1694},
	"Bermuda":                {Lat: 32.3078, Lon: -64.7505},
	"Panama":                 {Lat: 8.5380, Lon: -80.7821},
}

// MapExchanges places each exchange at its country's coordinates. Exchanges
// with no country, or one missing from CountryCoordinates, are skipped.
// Matching is exact and case-sensitive.
func MapExchanges(exchanges []models.Exchange) []models.MapPoint {
	points := make([]models.MapPoint, 0, len(exchanges))
	for _, ex := range exchanges {
		if ex.Country == nil || *ex.Country == "" {
			continue
		}
		coords, ok := CountryCoordinates[*ex.Country]
		if !ok {
			continue
		}
		points = append(points, models.MapPoint{Name: ex.Name, Coordinates: coords})
	}
	return points
}
