package dashboard

import (
	"strings"

	"github.com/notblessy/cryptotracker/models"
)

// FilterCoins keeps coins whose name contains search, ignoring case.
// An empty search keeps every coin.
func FilterCoins(coins []models.Coin, search string) []models.Coin {
	if search == "" {
		return coins
	}

	needle := strings.ToLower(search)
	filtered := make([]models.Coin, 0, len(coins))
	for _, c := range coins {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// FindCoin looks a coin up by its exact name.
func FindCoin(coins []models.Coin, name string) (models.Coin, bool) {
	for _, c := range coins {
		if c.Name == name {
			return c, true
		}
	}
	return models.Coin{}, false
}

func coinNames(coins []models.Coin) []string {
	names := make([]string, len(coins))
	for i, c := range coins {
		names[i] = c.Name
	}
	return names
}
