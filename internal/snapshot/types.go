// Package snapshot builds normalized market snapshots from the candle
// provider chain. A snapshot is computed fresh for every request and never
// mutated after construction; when live data is unavailable the builder
// degrades to a synthetic snapshot instead of failing.
package snapshot

import (
	"time"

	"github.com/ternarybob/auspex/internal/analysis"
)

// Source values stamped on a snapshot.
const (
	SourceLive      = "live"
	SourceSynthetic = "synthetic"
)

// MarketSnapshot is one fully computed market state for a (symbol, market,
// timeframe) request. It is the formatter's sole market-data input.
type MarketSnapshot struct {
	Symbol      string              `json:"symbol"`
	Market      string              `json:"market"`
	Timeframe   string              `json:"timeframe"`
	Price       float64             `json:"current_price"`
	Open24h     float64             `json:"open_24h"`
	High24h     float64             `json:"high_24h"`
	Low24h      float64             `json:"low_24h"`
	Volume24h   float64             `json:"volume_24h"`
	Change24h   float64             `json:"change_24h"`
	RSI         float64             `json:"rsi"`
	EMA20       float64             `json:"ema_20"`
	EMA50       float64             `json:"ema_50"`
	EMA200      float64             `json:"ema_200"`
	ATR         float64             `json:"atr"`
	Trend       analysis.TrendLabel `json:"trend"`
	Levels      analysis.KeyLevels  `json:"key_levels"`
	CandleCount int                 `json:"candle_count"`
	GeneratedAt time.Time           `json:"generated_at"`
	Timezone    string              `json:"timezone"`
	Source      string              `json:"source"`
}
