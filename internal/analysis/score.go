package analysis

import (
	"fmt"
	"strings"
)

// ScoreConfidence grades analysis confidence from three evidence checks: a
// directional trend, RSI inside the open 40-60 band, and at least one news
// item. Three points grade High, two Medium, anything less Low.
func ScoreConfidence(trend TrendLabel, rsi float64, newsCount int) ConfidenceResult {
	points := 0
	var passed []string

	if trend != TrendNeutral {
		points++
		passed = append(passed, "directional trend")
	}
	if rsi > 40 && rsi < 60 {
		points++
		passed = append(passed, "RSI in tradeable band")
	}
	if newsCount > 0 {
		points++
		passed = append(passed, "news coverage")
	}

	level := ConfidenceLow
	switch points {
	case 3:
		level = ConfidenceHigh
	case 2:
		level = ConfidenceMedium
	}

	reasoning := fmt.Sprintf("%d of 3 checks passed", points)
	if len(passed) > 0 {
		reasoning += ": " + strings.Join(passed, ", ")
	}

	return ConfidenceResult{
		Level:     level,
		Points:    points,
		Reasoning: reasoning,
	}
}

// ScoreRisk grades trading risk from RSI extension. RSI inside the closed
// 40-60 band is Low, at or beyond the 30/70 extremes is High, anything
// between is Medium. The narrative sharpens with distance from the band.
func ScoreRisk(rsi float64) RiskResult {
	var level RiskLevel
	switch {
	case rsi >= 40 && rsi <= 60:
		level = RiskLow
	case rsi <= 30 || rsi >= 70:
		level = RiskHigh
	default:
		level = RiskMedium
	}

	narrative := "Normal trading conditions"
	switch {
	case rsi > 80 || rsi < 20:
		narrative = "Overbought/Oversold - reversal risk"
	case rsi > 70 || rsi < 30:
		narrative = "Extended - caution"
	}

	return RiskResult{
		Level:     level,
		Narrative: narrative,
	}
}
