package snapshot

import (
	"math/rand"
	"strings"

	"github.com/ternarybob/auspex/internal/analysis"
	"github.com/ternarybob/auspex/internal/marketdata"
)

// basePrice anchors synthetic values to a plausible magnitude for the
// instrument class the symbol suggests.
func basePrice(symbol string) float64 {
	upper := strings.ToUpper(symbol)
	switch {
	case strings.Contains(upper, "BTC"):
		return 50000
	case strings.Contains(upper, "ETH"):
		return 2000
	default:
		return 100
	}
}

// uniform draws a random value in [lo, hi).
func uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

// Synthetic generates a randomized but structurally valid snapshot. It keeps
// the formatters fed when the candle sources are down; the Source tag is the
// only marker distinguishing it from live data.
func (b *Builder) Synthetic(symbol, market, timeframe string) *MarketSnapshot {
	base := basePrice(symbol)
	price := base + uniform(-base*0.05, base*0.05)

	trend := analysis.TrendNeutral
	if rand.Float64() >= 0.5 {
		if rand.Float64() < 0.7 {
			trend = analysis.TrendBullish
		} else {
			trend = analysis.TrendBearish
		}
	}

	return &MarketSnapshot{
		Symbol:    symbol,
		Market:    market,
		Timeframe: timeframe,
		Price:     price,
		Open24h:   price * 0.98,
		High24h:   price * 1.02,
		Low24h:    price * 0.96,
		Volume24h: uniform(1_000_000, 10_000_000),
		Change24h: uniform(-5, 5),
		RSI:       uniform(30, 70),
		EMA20:     price * 0.99,
		EMA50:     price * 0.98,
		EMA200:    price * 0.95,
		Trend:     trend,
		Levels: analysis.KeyLevels{
			Pivot: price,
			S1:    price * 0.95,
			S2:    price * 0.90,
			R1:    price * 1.05,
			R2:    price * 1.10,
		},
		CandleCount: 50,
		GeneratedAt: b.now(),
		Timezone:    b.timezone,
		Source:      SourceSynthetic,
	}
}

// SyntheticQuote generates a randomized spot quote for markets no live
// provider covers.
func (b *Builder) SyntheticQuote(symbol, market string) *marketdata.Quote {
	base := basePrice(symbol)

	return &marketdata.Quote{
		Price:     base + uniform(-base*0.05, base*0.05),
		Change24h: uniform(-5, 5),
		Market:    market,
		Volume24h: uniform(1_000_000, 10_000_000),
		Spread:    uniform(0.1, 2.0),
		Source:    SourceSynthetic,
	}
}
