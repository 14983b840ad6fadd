package snapshot

import (
	"context"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/auspex/internal/analysis"
	"github.com/ternarybob/auspex/internal/common"
	"github.com/ternarybob/auspex/internal/marketdata"
)

const (
	defaultCandleLimit = 500
	defaultTimezone    = "America/Los_Angeles"

	// dayWindow is the number of trailing candles aggregated into the
	// 24h high/low/volume figures.
	dayWindow = 24
)

// DataService is the slice of the market-data service the builder consumes.
type DataService interface {
	FetchCandles(ctx context.Context, symbol, market, timeframe string, limit int) ([]marketdata.Candle, error)
	FetchQuote(ctx context.Context, symbol, market string) (*marketdata.Quote, error)
}

// Builder produces market snapshots. Candle fetch failures are not surfaced
// to the caller; they switch the builder into synthetic generation so every
// request still yields a structurally valid snapshot.
type Builder struct {
	data     DataService
	logger   arbor.ILogger
	limit    int
	timezone string
	now      func() time.Time
}

// NewBuilder creates a snapshot builder on top of a market-data service.
func NewBuilder(logger arbor.ILogger, config *common.Config, data DataService) *Builder {
	limit := config.Engine.CandleLimit
	if limit <= 0 {
		limit = defaultCandleLimit
	}

	timezone := config.Engine.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}

	return &Builder{
		data:     data,
		logger:   logger,
		limit:    limit,
		timezone: timezone,
		now:      time.Now,
	}
}

// Build produces a snapshot for the request. A fetch error or an empty
// candle series falls back to synthetic generation.
func (b *Builder) Build(ctx context.Context, symbol, market, timeframe string) *MarketSnapshot {
	candles, err := b.data.FetchCandles(ctx, symbol, market, timeframe, b.limit)
	if err != nil || len(candles) == 0 {
		b.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Str("timeframe", timeframe).
			Msg("Live candles unavailable, generating synthetic snapshot")
		return b.Synthetic(symbol, market, timeframe)
	}

	return b.fromCandles(symbol, market, timeframe, candles)
}

// Quote returns the current spot quote, synthetic when no live provider can
// serve the market.
func (b *Builder) Quote(ctx context.Context, symbol, market string) *marketdata.Quote {
	quote, err := b.data.FetchQuote(ctx, symbol, market)
	if err != nil || quote == nil {
		b.logger.Warn().
			Err(err).
			Str("symbol", symbol).
			Str("market", market).
			Msg("Live quote unavailable, generating synthetic quote")
		return b.SyntheticQuote(symbol, market)
	}

	return quote
}

// fromCandles computes the live snapshot from a non-empty candle series.
func (b *Builder) fromCandles(symbol, market, timeframe string, candles []marketdata.Candle) *MarketSnapshot {
	closes := marketdata.Closes(candles)
	opens := marketdata.Opens(candles)
	highs := marketdata.Highs(candles)
	lows := marketdata.Lows(candles)
	volumes := marketdata.Volumes(candles)

	price := closes[len(closes)-1]

	// RSI reads only the most recent 14 closes; the EMAs run over the
	// full series.
	rsiWindow := closes
	if len(closes) > analysis.RSIPeriod {
		rsiWindow = closes[len(closes)-analysis.RSIPeriod:]
	}
	rsi := analysis.CalculateRSI(rsiWindow)

	ema20 := analysis.CalculateEMA(closes, 20)
	ema50 := analysis.CalculateEMA(closes, 50)
	ema200 := analysis.CalculateEMA(closes, 200)

	high24 := maxTail(highs, dayWindow)
	low24 := minTail(lows, dayWindow)
	volume24 := sumTail(volumes, dayWindow)

	open24 := opens[0]
	change := 0.0
	if len(opens) >= dayWindow {
		open24 = opens[len(opens)-dayWindow]
		if open24 != 0 {
			change = (price - open24) / open24 * 100
		}
	}

	return &MarketSnapshot{
		Symbol:      symbol,
		Market:      market,
		Timeframe:   timeframe,
		Price:       price,
		Open24h:     open24,
		High24h:     high24,
		Low24h:      low24,
		Volume24h:   volume24,
		Change24h:   change,
		RSI:         rsi,
		EMA20:       analysis.LastValue(ema20),
		EMA50:       analysis.LastValue(ema50),
		EMA200:      analysis.LastValue(ema200),
		ATR:         analysis.CalculateATR(highs, lows, closes, analysis.ATRPeriod),
		Trend:       analysis.ClassifyTrend(price, ema20, ema50, ema200),
		Levels:      analysis.DeriveLevels(price, high24, low24),
		CandleCount: len(candles),
		GeneratedAt: b.now(),
		Timezone:    b.timezone,
		Source:      SourceLive,
	}
}

// tail returns the last n values, or the whole series when it is shorter.
func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func maxTail(values []float64, n int) float64 {
	window := tail(values, n)
	if len(window) == 0 {
		return 0
	}
	max := window[0]
	for _, v := range window[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func minTail(values []float64, n int) float64 {
	window := tail(values, n)
	if len(window) == 0 {
		return 0
	}
	min := window[0]
	for _, v := range window[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func sumTail(values []float64, n int) float64 {
	total := 0.0
	for _, v := range tail(values, n) {
		total += v
	}
	return total
}
