package analysis

// CalculateEMA computes an exponential moving average series for the given
// period, oldest first. The first value seeds from the simple average of the
// first period prices, so the result holds len(prices)-period+1 values.
// Returns nil when there are fewer prices than the period.
func CalculateEMA(prices []float64, period int) []float64 {
	if period <= 0 || len(prices) < period {
		return nil
	}

	multiplier := 2.0 / float64(period+1)
	ema := make([]float64, 0, len(prices)-period+1)
	ema = append(ema, avg(prices[:period]))

	for _, price := range prices[period:] {
		prev := ema[len(ema)-1]
		ema = append(ema, (price-prev)*multiplier+prev)
	}
	return ema
}

// LastValue returns the final value of a series, or 0 for an empty series.
func LastValue(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1]
}
