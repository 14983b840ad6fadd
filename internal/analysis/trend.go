package analysis

// ClassifyTrend labels the trend from the current price against the latest
// value of each EMA series. Price strictly above every series is Bullish,
// strictly below every series is Bearish, anything mixed is Neutral. Empty
// series are ignored; with no usable series at all the trend is Neutral.
func ClassifyTrend(current float64, emaSeries ...[]float64) TrendLabel {
	latest := make([]float64, 0, len(emaSeries))
	for _, series := range emaSeries {
		if len(series) > 0 {
			latest = append(latest, series[len(series)-1])
		}
	}
	if len(latest) == 0 {
		return TrendNeutral
	}

	aboveAll := true
	belowAll := true
	for _, v := range latest {
		if current <= v {
			aboveAll = false
		}
		if current >= v {
			belowAll = false
		}
	}

	switch {
	case aboveAll:
		return TrendBullish
	case belowAll:
		return TrendBearish
	default:
		return TrendNeutral
	}
}
