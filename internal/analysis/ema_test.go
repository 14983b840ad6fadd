package analysis

import "testing"

func TestCalculateEMA(t *testing.T) {
	tests := []struct {
		name    string
		prices  []float64
		period  int
		wantLen int
	}{
		{
			name:    "Too few prices returns nil",
			prices:  []float64{1, 2, 3, 4},
			period:  5,
			wantLen: 0,
		},
		{
			name:    "Exactly one period yields single seed value",
			prices:  []float64{1, 2, 3, 4, 5},
			period:  5,
			wantLen: 1,
		},
		{
			name:    "Series length is prices minus period plus one",
			prices:  []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			period:  3,
			wantLen: 8,
		},
		{
			name:    "Zero period returns nil",
			prices:  []float64{1, 2, 3},
			period:  0,
			wantLen: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateEMA(tt.prices, tt.period)
			if len(got) != tt.wantLen {
				t.Errorf("len(CalculateEMA()) = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestCalculateEMA_SeedAndSmoothing(t *testing.T) {
	// Seed is the simple average of the first period, then each price blends
	// in with multiplier 2/(period+1).
	got := CalculateEMA([]float64{2, 4, 6, 8}, 3)

	want := []float64{4, 6} // seed (2+4+6)/3 = 4, then (8-4)*0.5 + 4 = 6
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ema[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCalculateEMA_ConstantSeries(t *testing.T) {
	prices := []float64{50, 50, 50, 50, 50, 50, 50, 50}
	for _, v := range CalculateEMA(prices, 4) {
		if v != 50 {
			t.Errorf("constant series EMA = %v, want 50", v)
		}
	}
}

func TestLastValue(t *testing.T) {
	if got := LastValue(nil); got != 0 {
		t.Errorf("LastValue(nil) = %v, want 0", got)
	}
	if got := LastValue([]float64{1, 2, 3}); got != 3 {
		t.Errorf("LastValue = %v, want 3", got)
	}
}
