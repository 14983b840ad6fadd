package news

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

// DefaultCryptoPanicBaseURL is the base URL for the CryptoPanic API.
const DefaultCryptoPanicBaseURL = "https://cryptopanic.com/api"

// CryptoPanicProvider serves headlines from the CryptoPanic posts API.
type CryptoPanicProvider struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     arbor.ILogger
}

// NewCryptoPanicProvider creates a CryptoPanic-backed headline provider.
// The auth token is optional on the public tier.
func NewCryptoPanicProvider(logger arbor.ILogger, baseURL, authToken string, timeout time.Duration) *CryptoPanicProvider {
	if baseURL == "" {
		baseURL = DefaultCryptoPanicBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &CryptoPanicProvider{
		baseURL:    baseURL,
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Name returns the provider name.
func (p *CryptoPanicProvider) Name() string {
	return "CryptoPanic"
}

// cryptoPanicPost is one entry in the posts response.
type cryptoPanicPost struct {
	Title       string `json:"title"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	Importance  int    `json:"importance"`
	Source      struct {
		Title string `json:"title"`
	} `json:"source"`
}

// cryptoPanicResponse is the posts list envelope.
type cryptoPanicResponse struct {
	Results []cryptoPanicPost `json:"results"`
}

// FetchHeadlines retrieves up to limit posts filtered by the lowercased
// symbol. Missing source titles become "Unknown" and missing links "#".
func (p *CryptoPanicProvider) FetchHeadlines(ctx context.Context, symbol string, limit int) ([]Item, error) {
	params := url.Values{}
	params.Set("authors", "")
	params.Set("regions", "")
	params.Set("filter", strings.ToLower(symbol))
	if p.authToken != "" {
		params.Set("auth_token", p.authToken)
	}

	reqURL := fmt.Sprintf("%s/posts/?%s", p.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if p.logger != nil {
		p.logger.Debug().
			Str("symbol", symbol).
			Msg("CryptoPanic posts request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("CryptoPanic returned status %d", resp.StatusCode)
	}

	var payload cryptoPanicResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	items := make([]Item, 0, limit)
	for _, post := range payload.Results {
		if len(items) >= limit {
			break
		}

		item := Item{
			Title:       post.Title,
			Source:      post.Source.Title,
			PublishedAt: post.PublishedAt,
			URL:         post.URL,
			Domain:      post.Domain,
			Importance:  post.Importance,
		}
		if item.Source == "" {
			item.Source = "Unknown"
		}
		if item.URL == "" {
			item.URL = "#"
		}
		items = append(items, item)
	}

	return items, nil
}
