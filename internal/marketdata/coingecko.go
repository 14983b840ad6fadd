package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
)

// DefaultCoinGeckoBaseURL is the base URL for the CoinGecko public API.
const DefaultCoinGeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider serves spot quotes from the CoinGecko simple price API.
type CoinGeckoProvider struct {
	baseURL    string
	httpClient *http.Client
	logger     arbor.ILogger
}

// NewCoinGeckoProvider creates a CoinGecko-backed quote provider.
func NewCoinGeckoProvider(logger arbor.ILogger, baseURL string, timeout time.Duration) *CoinGeckoProvider {
	if baseURL == "" {
		baseURL = DefaultCoinGeckoBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &CoinGeckoProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Name returns the provider name.
func (p *CoinGeckoProvider) Name() string {
	return "CoinGecko"
}

// SupportsMarket returns true only for crypto markets.
func (p *CoinGeckoProvider) SupportsMarket(market string) bool {
	return market == "crypto"
}

// coinPrice is one entry in the simple price response.
type coinPrice struct {
	USD       float64 `json:"usd"`
	USDChange float64 `json:"usd_24h_change"`
}

// FetchQuote retrieves the USD spot price and 24 hour change for a symbol.
// The lowercased symbol is used as the CoinGecko coin id.
func (p *CoinGeckoProvider) FetchQuote(ctx context.Context, symbol, market string) (*Quote, error) {
	id := strings.ToLower(symbol)

	params := url.Values{}
	params.Set("ids", id)
	params.Set("vs_currencies", "usd")
	params.Set("include_24hr_change", "true")

	reqURL := fmt.Sprintf("%s/simple/price?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if p.logger != nil {
		p.logger.Debug().
			Str("id", id).
			Msg("CoinGecko quote request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CoinGecko returned status %d", resp.StatusCode)
	}

	var payload map[string]coinPrice
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	entry, ok := payload[id]
	if !ok {
		return nil, fmt.Errorf("no quote for coin id %q", id)
	}

	return &Quote{
		Price:     entry.USD,
		Change24h: entry.USDChange,
		Market:    market,
		Source:    "coingecko",
	}, nil
}
