package marketdata

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/auspex/internal/chartmaster"
	"github.com/ternarybob/auspex/internal/common"
)

// CandleProvider defines the interface for market-specific candle fetching.
type CandleProvider interface {
	// Name returns the provider name (e.g., "ChartMaster", "Binance")
	Name() string

	// SupportsMarket returns true if this provider can handle the given market
	SupportsMarket(market string) bool

	// FetchCandles retrieves up to limit candles at the given timeframe, oldest first
	FetchCandles(ctx context.Context, symbol, timeframe string, limit int) ([]Candle, error)
}

// QuoteProvider defines the interface for spot quote fetching.
type QuoteProvider interface {
	// Name returns the provider name (e.g., "CoinGecko")
	Name() string

	// SupportsMarket returns true if this provider can handle the given market
	SupportsMarket(market string) bool

	// FetchQuote retrieves the current quote for a symbol
	FetchQuote(ctx context.Context, symbol, market string) (*Quote, error)
}

// Service manages candle and quote fetching across multiple providers.
// Providers are tried in registration order; the first one that supports the
// market and yields data wins.
type Service struct {
	candleProviders []CandleProvider
	quoteProviders  []QuoteProvider
	logger          arbor.ILogger
}

// NewService creates a market data service with the default provider chain
// from config: ChartMaster first for candles with Binance as crypto fallback,
// CoinGecko for quotes.
func NewService(logger arbor.ILogger, config *common.Config) *Service {
	s := &Service{
		candleProviders: make([]CandleProvider, 0),
		quoteProviders:  make([]QuoteProvider, 0),
		logger:          logger,
	}

	cm := config.Markets.ChartMaster
	opts := []chartmaster.ClientOption{
		chartmaster.WithLogger(logger),
		chartmaster.WithHTTPClient(&http.Client{
			Timeout: common.DurationOr(cm.Timeout, chartmaster.DefaultTimeout),
		}),
	}
	if cm.BaseURL != "" {
		opts = append(opts, chartmaster.WithBaseURL(cm.BaseURL))
	}
	if cm.RateLimit > 0 {
		opts = append(opts, chartmaster.WithRateLimit(cm.RateLimit))
	}
	s.RegisterCandleProvider(NewChartMasterProvider(logger, chartmaster.NewClient(opts...)))

	if config.Markets.Binance.Enabled {
		s.RegisterCandleProvider(NewBinanceProvider(logger, config.Markets.Binance.APIKey, config.Markets.Binance.SecretKey))
	}

	cg := config.Markets.CoinGecko
	s.RegisterQuoteProvider(NewCoinGeckoProvider(logger, cg.BaseURL, common.DurationOr(cg.Timeout, 0)))

	return s
}

// RegisterCandleProvider adds a candle provider to the service.
// Providers are tried in the order they are registered.
func (s *Service) RegisterCandleProvider(provider CandleProvider) {
	s.candleProviders = append(s.candleProviders, provider)
	s.logger.Debug().
		Str("provider", provider.Name()).
		Msg("Registered candle provider")
}

// RegisterQuoteProvider adds a quote provider to the service.
func (s *Service) RegisterQuoteProvider(provider QuoteProvider) {
	s.quoteProviders = append(s.quoteProviders, provider)
	s.logger.Debug().
		Str("provider", provider.Name()).
		Msg("Registered quote provider")
}

// FetchCandles retrieves candles for a symbol, routing through the provider
// chain. Returns an error when every provider fails or none supports the
// market; callers fall back to synthetic data.
func (s *Service) FetchCandles(ctx context.Context, symbol, market, timeframe string, limit int) ([]Candle, error) {
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}
	if limit <= 0 {
		limit = 500
	}

	s.logger.Debug().
		Str("symbol", symbol).
		Str("market", market).
		Str("timeframe", timeframe).
		Int("limit", limit).
		Msg("Fetching candles")

	var lastErr error
	for _, provider := range s.candleProviders {
		if !provider.SupportsMarket(market) {
			continue
		}

		s.logger.Debug().
			Str("provider", provider.Name()).
			Str("symbol", symbol).
			Msg("Trying candle provider")

		candles, err := provider.FetchCandles(ctx, symbol, timeframe, limit)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Msg("Provider failed, trying next")
			lastErr = err
			continue
		}

		if len(candles) > 0 {
			s.logger.Info().
				Str("provider", provider.Name()).
				Str("symbol", symbol).
				Int("count", len(candles)).
				Msg("Fetched candles successfully")
			return candles, nil
		}

		s.logger.Debug().
			Str("provider", provider.Name()).
			Msg("Provider returned no candles, trying next")
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all providers failed: %w", lastErr)
	}

	return nil, fmt.Errorf("no provider supports market: %s", market)
}

// FetchQuote retrieves the current quote for a symbol through the quote
// provider chain.
func (s *Service) FetchQuote(ctx context.Context, symbol, market string) (*Quote, error) {
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}

	var lastErr error
	for _, provider := range s.quoteProviders {
		if !provider.SupportsMarket(market) {
			continue
		}

		quote, err := provider.FetchQuote(ctx, symbol, market)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("provider", provider.Name()).
				Msg("Quote provider failed, trying next")
			lastErr = err
			continue
		}

		if quote != nil {
			s.logger.Info().
				Str("provider", provider.Name()).
				Str("symbol", symbol).
				Msg("Fetched quote successfully")
			return quote, nil
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all quote providers failed: %w", lastErr)
	}

	return nil, fmt.Errorf("no quote provider supports market: %s", market)
}
