// Package marketdata provides candle and quote retrieval across multiple
// market data providers with ordered fallback.
package marketdata

// Candle is a single OHLCV bar. Series are ordered oldest first.
type Candle struct {
	Timestamp int64   `json:"timestamp"` // epoch seconds
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// Quote is a spot price reading with 24 hour change. Live quotes carry no
// volume or spread; synthetic quotes fill them in.
type Quote struct {
	Price     float64 `json:"current_price"`
	Change24h float64 `json:"change_24h"`
	Market    string  `json:"market"`
	Volume24h float64 `json:"volume_24h"`
	Spread    float64 `json:"spread"`
	Source    string  `json:"source"`
}

// Closes extracts the close series from candles.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Close
	}
	return out
}

// Opens extracts the open series from candles.
func Opens(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Open
	}
	return out
}

// Highs extracts the high series from candles.
func Highs(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low series from candles.
func Lows(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Low
	}
	return out
}

// Volumes extracts the volume series from candles.
func Volumes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i, c := range candles {
		out[i] = c.Volume
	}
	return out
}
