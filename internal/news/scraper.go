package news

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/arbor"
)

// ScrapeSource defines one HTML headline source.
type ScrapeSource struct {
	Name       string
	BaseURL    string
	SearchPath string // {symbol} is replaced with the lowercased symbol
	Domain     string
	Selectors  ArticleSelectors
}

// ArticleSelectors defines CSS selectors for extracting headline data.
type ArticleSelectors struct {
	ArticleContainer string
	Title            string
	URL              string
	PublishedAt      string
}

// defaultScrapeSources returns the crypto news sites scraped when the API
// provider is unavailable.
func defaultScrapeSources() []ScrapeSource {
	return []ScrapeSource{
		{
			Name:       "CoinDesk",
			BaseURL:    "https://www.coindesk.com",
			SearchPath: "/search?s={symbol}",
			Domain:     "coindesk.com",
			Selectors: ArticleSelectors{
				ArticleContainer: "div.search-result, article",
				Title:            "h3, h6",
				URL:              "a",
				PublishedAt:      "time",
			},
		},
		{
			Name:       "Cointelegraph",
			BaseURL:    "https://cointelegraph.com",
			SearchPath: "/search?query={symbol}",
			Domain:     "cointelegraph.com",
			Selectors: ArticleSelectors{
				ArticleContainer: "article",
				Title:            "span.post-card-inline__title, h2",
				URL:              "a",
				PublishedAt:      "time",
			},
		},
	}
}

// ScrapeProvider extracts headlines from public news pages. It backs up the
// API provider and is only registered when news.scraper.enabled is set.
type ScrapeProvider struct {
	sources    []ScrapeSource
	httpClient *http.Client
	userAgent  string
	logger     arbor.ILogger
}

// NewScrapeProvider creates an HTML scraping headline provider with the
// default source list.
func NewScrapeProvider(logger arbor.ILogger, userAgent string, timeout time.Duration) *ScrapeProvider {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &ScrapeProvider{
		sources:    defaultScrapeSources(),
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Name returns the provider name.
func (p *ScrapeProvider) Name() string {
	return "Scraper"
}

// FetchHeadlines scrapes sources in order until the limit is filled.
// A source failure moves on to the next; only a full wipeout is an error.
func (p *ScrapeProvider) FetchHeadlines(ctx context.Context, symbol string, limit int) ([]Item, error) {
	var items []Item
	var lastErr error

	for _, source := range p.sources {
		if len(items) >= limit {
			break
		}

		scraped, err := p.scrapeSource(ctx, source, symbol, limit-len(items))
		if err != nil {
			p.logger.Warn().
				Err(err).
				Str("source", source.Name).
				Msg("Scrape source failed, trying next")
			lastErr = err
			continue
		}
		items = append(items, scraped...)
	}

	if len(items) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return items, nil
}

// scrapeSource pulls headlines from a single source's search page.
func (p *ScrapeProvider) scrapeSource(ctx context.Context, source ScrapeSource, symbol string, maxItems int) ([]Item, error) {
	searchURL := source.BaseURL + strings.ReplaceAll(source.SearchPath, "{symbol}", strings.ToLower(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", searchURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d", source.Name, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s page: %w", source.Name, err)
	}

	return p.extractItems(doc, source, maxItems), nil
}

// extractItems walks the article containers and builds headline items.
func (p *ScrapeProvider) extractItems(doc *goquery.Document, source ScrapeSource, maxItems int) []Item {
	items := make([]Item, 0, maxItems)

	doc.Find(source.Selectors.ArticleContainer).EachWithBreak(func(i int, s *goquery.Selection) bool {
		if len(items) >= maxItems {
			return false
		}

		title := strings.TrimSpace(s.Find(source.Selectors.Title).First().Text())
		if title == "" {
			return true
		}

		href, _ := s.Find(source.Selectors.URL).First().Attr("href")
		if href == "" {
			href = "#"
		} else if !strings.HasPrefix(href, "http") {
			href = source.BaseURL + href
		}

		published := ""
		timeSel := s.Find(source.Selectors.PublishedAt).First()
		if dt, ok := timeSel.Attr("datetime"); ok {
			published = dt
		} else {
			published = strings.TrimSpace(timeSel.Text())
		}

		importance, _ := ClassifyImportance(title)
		items = append(items, Item{
			Title:       title,
			Source:      source.Name,
			PublishedAt: published,
			URL:         href,
			Domain:      source.Domain,
			Importance:  importance,
		})
		return true
	})

	return items
}
