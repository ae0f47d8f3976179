package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/notblessy/cryptotracker/models"
)

const (
	COINGECKO_API_URL = "https://api.coingecko.com/api/v3"

	// MarketsPageSize caps the markets listing.
	MarketsPageSize = 50
)

// ErrFetchFailure covers every way a listing request can fail: transport
// errors, non-200 statuses and undecodable bodies.
var ErrFetchFailure = errors.New("fetch failure")

type CoinGeckoClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

type ClientOption func(*CoinGeckoClient)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *CoinGeckoClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithAPIKey(key string) ClientOption {
	return func(c *CoinGeckoClient) {
		c.apiKey = key
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *CoinGeckoClient) {
		c.client.Timeout = timeout
	}
}

func NewCoinGeckoClient(opts ...ClientOption) *CoinGeckoClient {
	c := &CoinGeckoClient{
		client:  &http.Client{},
		baseURL: COINGECKO_API_URL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMarkets fetches the top coins by market cap in USD.
func (c *CoinGeckoClient) GetMarkets(ctx context.Context) ([]models.Coin, error) {
	params := url.Values{}
	params.Set("vs_currency", "usd")
	params.Set("order", "market_cap_desc")
	params.Set("per_page", fmt.Sprint(MarketsPageSize))

	var coins []models.Coin
	if err := c.get(ctx, "/coins/markets", params, &coins); err != nil {
		return nil, fmt.Errorf("markets: %w", err)
	}

	if len(coins) > MarketsPageSize {
		coins = coins[:MarketsPageSize]
	}
	return coins, nil
}

// GetExchanges fetches exchange metadata.
func (c *CoinGeckoClient) GetExchanges(ctx context.Context) ([]models.Exchange, error) {
	var exchanges []models.Exchange
	if err := c.get(ctx, "/exchanges", nil, &exchanges); err != nil {
		return nil, fmt.Errorf("exchanges: %w", err)
	}
	return exchanges, nil
}

func (c *CoinGeckoClient) get(ctx context.Context, path string, params url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrFetchFailure, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to make request: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return fmt.Errorf("%w: API returned status %d: %s", ErrFetchFailure, resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrFetchFailure, err)
	}

	return nil
}
