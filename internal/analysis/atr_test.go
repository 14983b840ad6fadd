package analysis

import "testing"

func TestCalculateATR(t *testing.T) {
	t.Run("Constant range gives the range itself", func(t *testing.T) {
		n := 15
		highs := make([]float64, n)
		lows := make([]float64, n)
		closes := make([]float64, n)
		for i := 0; i < n; i++ {
			highs[i] = 110
			lows[i] = 90
			closes[i] = 100
		}

		if got := CalculateATR(highs, lows, closes, ATRPeriod); got != 20 {
			t.Errorf("CalculateATR() = %v, want 20", got)
		}
	})

	t.Run("Gap widens the smoothed range", func(t *testing.T) {
		highs := []float64{10, 11, 12, 13, 20}
		lows := []float64{8, 9, 10, 11, 18}
		closes := []float64{9, 10, 11, 12, 19}

		// True ranges are 2, 2, 2, then the gap candle's max(2, 8, 6) = 8,
		// so Wilder smoothing gives (2*2 + 8) / 3 = 4.
		if got := CalculateATR(highs, lows, closes, 3); got != 4 {
			t.Errorf("CalculateATR() = %v, want 4", got)
		}
	})

	t.Run("Not enough candles returns zero", func(t *testing.T) {
		highs := []float64{10, 11, 12}
		lows := []float64{8, 9, 10}
		closes := []float64{9, 10, 11}

		if got := CalculateATR(highs, lows, closes, ATRPeriod); got != 0 {
			t.Errorf("CalculateATR() = %v, want 0", got)
		}
	})

	t.Run("Mismatched series lengths return zero", func(t *testing.T) {
		if got := CalculateATR([]float64{10, 11}, []float64{8}, []float64{9, 10}, 1); got != 0 {
			t.Errorf("CalculateATR() = %v, want 0", got)
		}
	})
}
