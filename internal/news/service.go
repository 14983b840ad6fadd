package news

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/auspex/internal/common"
)

// Provider defines the interface for headline fetching.
type Provider interface {
	// Name returns the provider name (e.g., "CryptoPanic", "Scraper")
	Name() string

	// FetchHeadlines retrieves up to limit headlines for a symbol
	FetchHeadlines(ctx context.Context, symbol string, limit int) ([]Item, error)
}

// Service manages headline fetching across providers. Providers are tried in
// registration order; canned coverage backstops the chain so macro-scope
// requests never come back empty.
type Service struct {
	providers []Provider
	logger    arbor.ILogger
	retrieve  int
	display   int
	now       func() time.Time
}

// NewService creates a news service with the default provider chain from
// config: CryptoPanic first, HTML scraping second when enabled.
func NewService(logger arbor.ILogger, config *common.Config) *Service {
	s := &Service{
		providers: make([]Provider, 0),
		logger:    logger,
		retrieve:  config.Engine.NewsRetrieve,
		display:   config.Engine.NewsDisplay,
		now:       time.Now,
	}
	if s.retrieve <= 0 {
		s.retrieve = 10
	}
	if s.display <= 0 {
		s.display = 5
	}

	cp := config.News.CryptoPanic
	s.RegisterProvider(NewCryptoPanicProvider(logger, cp.BaseURL, cp.AuthToken, common.DurationOr(cp.Timeout, 0)))

	if config.News.Scraper.Enabled {
		s.RegisterProvider(NewScrapeProvider(logger, config.News.Scraper.UserAgent, common.DurationOr(config.News.Scraper.Timeout, 0)))
	}

	return s
}

// RegisterProvider adds a provider to the service.
// Providers are tried in the order they are registered.
func (s *Service) RegisterProvider(provider Provider) {
	s.providers = append(s.providers, provider)
	s.logger.Debug().
		Str("provider", provider.Name()).
		Msg("Registered headline provider")
}

// FetchHeadlines retrieves headlines for a symbol, capped at the display
// count. Provider errors fall back to canned coverage; an empty live result
// also falls back when the scope includes macro news.
func (s *Service) FetchHeadlines(ctx context.Context, symbol, scope string) []Item {
	items, err := s.fetchLive(ctx, symbol)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Msg("Headline providers failed, using canned coverage")
		return s.trim(CannedHeadlines(symbol, s.now()))
	}

	if len(items) == 0 && scope == ScopeSymbolMacro {
		s.logger.Debug().
			Str("symbol", symbol).
			Msg("No live headlines, using canned coverage")
		return s.trim(CannedHeadlines(symbol, s.now()))
	}

	return s.trim(items)
}

// fetchLive tries providers in order and returns the first non-empty result.
func (s *Service) fetchLive(ctx context.Context, symbol string) ([]Item, error) {
	var lastErr error
	for _, provider := range s.providers {
		items, err := provider.FetchHeadlines(ctx, symbol, s.retrieve)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Msg("Provider failed, trying next")
			lastErr = err
			continue
		}

		if len(items) > 0 {
			s.logger.Info().
				Str("provider", provider.Name()).
				Str("symbol", symbol).
				Int("count", len(items)).
				Msg("Fetched headlines successfully")
			return items, nil
		}

		s.logger.Debug().
			Str("provider", provider.Name()).
			Msg("Provider returned no headlines, trying next")
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, nil
}

// trim caps the list at the display count.
func (s *Service) trim(items []Item) []Item {
	if s.display > 0 && len(items) > s.display {
		return items[:s.display]
	}
	return items
}
