// Package analysis provides pure indicator and scoring calculations for
// market snapshots. All functions are stateless and perform no I/O.
package analysis

// TrendLabel classifies price direction relative to the EMA stack
type TrendLabel string

const (
	TrendBullish TrendLabel = "Bullish"
	TrendBearish TrendLabel = "Bearish"
	TrendNeutral TrendLabel = "Neutral"
)

// ConfidenceLevel grades how much supporting evidence an analysis carries
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "High"
	ConfidenceMedium ConfidenceLevel = "Medium"
	ConfidenceLow    ConfidenceLevel = "Low"
)

// RiskLevel grades momentum extension risk
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// KeyLevels holds floor-trader pivot levels derived from the last close
// and the 24-candle range.
type KeyLevels struct {
	Pivot float64 `json:"pivot"`
	S1    float64 `json:"s1"`
	S2    float64 `json:"s2"`
	R1    float64 `json:"r1"`
	R2    float64 `json:"r2"`
}

// ConfidenceResult is the output of ScoreConfidence
type ConfidenceResult struct {
	Level     ConfidenceLevel `json:"level"`
	Points    int             `json:"points"` // 0 to 3
	Reasoning string          `json:"reasoning"`
}

// RiskResult is the output of ScoreRisk
type RiskResult struct {
	Level     RiskLevel `json:"level"`
	Narrative string    `json:"narrative"`
}
