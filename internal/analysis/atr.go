package analysis

// ATRPeriod is the sample window for Wilder ATR smoothing.
const ATRPeriod = 14

// CalculateATR computes the Average True Range over OHLC series using Wilder
// smoothing. True range is the largest of high-low, |high-prevClose| and
// |low-prevClose|. Returns 0 when there are not enough candles for one
// full period of true ranges.
func CalculateATR(highs, lows, closes []float64, period int) float64 {
	n := len(closes)
	if period <= 0 || n < period+1 || len(highs) != n || len(lows) != n {
		return 0
	}

	trueRanges := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		tr := max3(
			highs[i]-lows[i],
			abs(highs[i]-closes[i-1]),
			abs(lows[i]-closes[i-1]),
		)
		trueRanges = append(trueRanges, tr)
	}

	atr := avg(trueRanges[:period])
	for i := period; i < len(trueRanges); i++ {
		atr = (atr*float64(period-1) + trueRanges[i]) / float64(period)
	}
	return atr
}
