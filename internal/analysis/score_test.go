package analysis

import (
	"strings"
	"testing"
)

func TestScoreConfidence(t *testing.T) {
	tests := []struct {
		name       string
		trend      TrendLabel
		rsi        float64
		newsCount  int
		wantLevel  ConfidenceLevel
		wantPoints int
	}{
		{
			name:       "All three checks pass",
			trend:      TrendBullish,
			rsi:        50,
			newsCount:  3,
			wantLevel:  ConfidenceHigh,
			wantPoints: 3,
		},
		{
			name:       "Trend and RSI without news",
			trend:      TrendBearish,
			rsi:        55,
			newsCount:  0,
			wantLevel:  ConfidenceMedium,
			wantPoints: 2,
		},
		{
			name:       "RSI band only",
			trend:      TrendNeutral,
			rsi:        45,
			newsCount:  0,
			wantLevel:  ConfidenceLow,
			wantPoints: 1,
		},
		{
			name:       "Nothing aligns",
			trend:      TrendNeutral,
			rsi:        65,
			newsCount:  0,
			wantLevel:  ConfidenceLow,
			wantPoints: 0,
		},
		{
			name:       "RSI band boundary is exclusive",
			trend:      TrendBullish,
			rsi:        40,
			newsCount:  1,
			wantLevel:  ConfidenceMedium,
			wantPoints: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreConfidence(tt.trend, tt.rsi, tt.newsCount)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %v, want %v", got.Level, tt.wantLevel)
			}
			if got.Points != tt.wantPoints {
				t.Errorf("Points = %d, want %d", got.Points, tt.wantPoints)
			}
			if !strings.Contains(got.Reasoning, "of 3 checks passed") {
				t.Errorf("Reasoning = %q, want check summary", got.Reasoning)
			}
		})
	}
}

func TestScoreRisk(t *testing.T) {
	tests := []struct {
		name      string
		rsi       float64
		wantLevel RiskLevel
	}{
		{name: "Midpoint is low risk", rsi: 50, wantLevel: RiskLow},
		{name: "Lower band edge is still low", rsi: 40, wantLevel: RiskLow},
		{name: "Upper band edge is still low", rsi: 60, wantLevel: RiskLow},
		{name: "Moderately extended is medium", rsi: 65, wantLevel: RiskMedium},
		{name: "Moderately depressed is medium", rsi: 35, wantLevel: RiskMedium},
		{name: "Overbought is high", rsi: 75, wantLevel: RiskHigh},
		{name: "Oversold is high", rsi: 25, wantLevel: RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreRisk(tt.rsi)
			if got.Level != tt.wantLevel {
				t.Errorf("ScoreRisk(%v).Level = %v, want %v", tt.rsi, got.Level, tt.wantLevel)
			}
		})
	}
}

func TestScoreRisk_Narrative(t *testing.T) {
	tests := []struct {
		rsi  float64
		want string
	}{
		{85, "Overbought/Oversold - reversal risk"},
		{15, "Overbought/Oversold - reversal risk"},
		{75, "Extended - caution"},
		{25, "Extended - caution"},
		{50, "Normal trading conditions"},
	}

	for _, tt := range tests {
		got := ScoreRisk(tt.rsi)
		if got.Narrative != tt.want {
			t.Errorf("ScoreRisk(%v).Narrative = %q, want %q", tt.rsi, got.Narrative, tt.want)
		}
	}
}
