package analysis

// RSIPeriod is the sample window for Wilder RSI smoothing.
const RSIPeriod = 14

// CalculateRSI computes the Relative Strength Index over a series of closes
// using Wilder smoothing with a 14 sample period.
//
// Fewer than 14 closes returns the neutral midpoint 50.0. A window with no
// losing moves returns 100.0.
func CalculateRSI(closes []float64) float64 {
	if len(closes) < RSIPeriod {
		return 50.0
	}

	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			gains = append(gains, diff)
			losses = append(losses, 0)
		} else {
			gains = append(gains, 0)
			losses = append(losses, -diff)
		}
	}

	// Seed averages always divide by the full period, even when the first
	// window holds fewer moves than that.
	seed := RSIPeriod
	if len(gains) < seed {
		seed = len(gains)
	}
	avgGain := sum(gains[:seed]) / float64(RSIPeriod)
	avgLoss := sum(losses[:seed]) / float64(RSIPeriod)

	for i := RSIPeriod; i < len(gains); i++ {
		avgGain = (avgGain*float64(RSIPeriod-1) + gains[i]) / float64(RSIPeriod)
		avgLoss = (avgLoss*float64(RSIPeriod-1) + losses[i]) / float64(RSIPeriod)
	}

	if avgLoss == 0 {
		return 100.0
	}

	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
