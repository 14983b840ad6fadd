package analysis

import "testing"

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		series  [][]float64
		want    TrendLabel
	}{
		{
			name:    "Above every EMA is bullish",
			current: 105,
			series:  [][]float64{{98, 100}, {101, 102}, {104, 103}},
			want:    TrendBullish,
		},
		{
			name:    "Below every EMA is bearish",
			current: 95,
			series:  [][]float64{{98, 100}, {101, 102}, {104, 103}},
			want:    TrendBearish,
		},
		{
			name:    "Between EMAs is neutral",
			current: 101.5,
			series:  [][]float64{{98, 100}, {101, 102}, {104, 103}},
			want:    TrendNeutral,
		},
		{
			name:    "Touching an EMA is not strictly above",
			current: 103,
			series:  [][]float64{{98, 100}, {101, 102}, {104, 103}},
			want:    TrendNeutral,
		},
		{
			name:    "No series at all is neutral",
			current: 100,
			series:  nil,
			want:    TrendNeutral,
		},
		{
			name:    "Empty series are skipped",
			current: 105,
			series:  [][]float64{{}, {100}},
			want:    TrendBullish,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrend(tt.current, tt.series...)
			if got != tt.want {
				t.Errorf("ClassifyTrend() = %v, want %v", got, tt.want)
			}
		})
	}
}
