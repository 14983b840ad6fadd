package report

import (
	"fmt"
	"strings"

	"github.com/ternarybob/auspex/internal/analysis"
	"github.com/ternarybob/auspex/internal/news"
	"github.com/ternarybob/auspex/internal/snapshot"
)

// timeLayout renders the snapshot timestamp with its zone abbreviation.
const timeLayout = "2006-01-02 15:04 MST"

// FullTradePlan is the default variant: a five-section plan covering the
// snapshot, the technical read, the news map, mechanical trade scenarios
// built from the key levels, and risk notes.
func FullTradePlan(snap *snapshot.MarketSnapshot, items []news.Item) []Section {
	trend := trendOr(snap.Trend)
	confidence := analysis.ScoreConfidence(trend, snap.RSI, len(items))
	risk := analysis.ScoreRisk(snap.RSI)

	return []Section{
		{
			Title: fmt.Sprintf("📈 %s Trade Plan", snap.Symbol),
			Rule:  22,
		},
		{Title: "1) SNAPSHOT (NOW)", Boxed: true, Lines: planSnapshotLines(snap)},
		{Title: "2) TECHNICAL READ", Boxed: true, Lines: planTechnicalLines(snap, trend)},
		{Title: "3) NEWS & CATALYST MAP", Boxed: true, Lines: planNewsLines(items)},
		{Title: "4) TRADE SCENARIOS", Boxed: true, Lines: planScenarioLines(snap.Levels)},
		{Title: "5) RISK NOTES", Boxed: true, Lines: planRiskLines(snap, trend, confidence, risk)},
	}
}

func planSnapshotLines(snap *snapshot.MarketSnapshot) []string {
	volume := snap.Volume24h
	if volume == 0 {
		volume = 1_000_000
	}

	return []string{
		"Symbol: " + snap.Symbol,
		"Market: " + snap.Market,
		"Timeframe: " + snap.Timeframe,
		"Time: " + snap.GeneratedAt.Format(timeLayout),
		"",
		fmt.Sprintf("Price: $%s", money(snap.Price)),
		fmt.Sprintf("24h Change: %+.2f%%", snap.Change24h),
		fmt.Sprintf("Volume: $%s", moneyWhole(volume)),
		"",
		"Key Levels:",
		fmt.Sprintf("  Support: $%s", money(snap.Levels.S1)),
		fmt.Sprintf("  Pivot: $%s", money(snap.Levels.Pivot)),
		fmt.Sprintf("  Resistance: $%s", money(snap.Levels.R1)),
	}
}

func planTechnicalLines(snap *snapshot.MarketSnapshot, trend analysis.TrendLabel) []string {
	ema200State := "near"
	if snap.EMA200 != 0 {
		if snap.Price > snap.EMA200 {
			ema200State = "above"
		} else {
			ema200State = "below"
		}
	}

	return []string{
		"Trend: " + string(trend),
		"",
		"Indicators:",
		fmt.Sprintf("  RSI: %.1f", snap.RSI),
		fmt.Sprintf("  EMA 20: $%s", money(snap.EMA20)),
		fmt.Sprintf("  EMA 50: $%s", money(snap.EMA50)),
		fmt.Sprintf("  EMA 200: $%s", money(snap.EMA200)),
		"",
		fmt.Sprintf("Trend Analysis: Price %s 200 EMA", ema200State),
	}
}

func planNewsLines(items []news.Item) []string {
	lines := []string{
		fmt.Sprintf("Found %d relevant items:", len(items)),
		"",
	}

	shown := 0
	for _, item := range items {
		if shown >= 3 {
			break
		}
		lines = append(lines,
			fmt.Sprintf("   ➜ %s", truncate(item.Title, 80)),
			fmt.Sprintf("     %s | %s", item.Source, truncate(item.PublishedAt, 16)),
		)
		shown++
	}
	if shown == 0 {
		lines = append(lines, "")
	}

	return lines
}

func planScenarioLines(levels analysis.KeyLevels) []string {
	return []string{
		"",
		"🐂 BULL CASE:",
		fmt.Sprintf("   Trigger: Break above $%s", money(levels.R1)),
		fmt.Sprintf("   Target: $%s", money(levels.R2)),
		fmt.Sprintf("   Invalidation: Close below $%s", money(levels.S1)),
		"",
		"🐻 BEAR CASE:",
		fmt.Sprintf("   Trigger: Break below $%s", money(levels.S1)),
		fmt.Sprintf("   Target: $%s", money(levels.S2)),
		fmt.Sprintf("   Invalidation: Close above $%s", money(levels.R1)),
		"",
		"😐 CHOP CASE:",
		fmt.Sprintf("   Range: $%s - $%s", money(levels.S1), money(levels.R1)),
		"   Action: Wait for breakout, avoid middle",
	}
}

func planRiskLines(snap *snapshot.MarketSnapshot, trend analysis.TrendLabel, confidence analysis.ConfidenceResult, risk analysis.RiskResult) []string {
	return []string{
		"Confidence: " + string(confidence.Level),
		fmt.Sprintf("Volatility: Medium (ATR %s)", moneyWhole(snap.Levels.R1*0.02)),
		"Liquidity: Good",
		"Region: " + timezoneRegion(snap.Timezone),
		"Bias: " + string(trend),
		"",
		"Invalidation: Break of key level",
		"Caution: " + risk.Narrative,
	}
}

// timezoneRegion extracts the city segment of an "Area/City" zone name.
func timezoneRegion(tz string) string {
	parts := strings.Split(tz, "/")
	if len(parts) > 1 {
		return parts[1]
	}
	return tz
}
