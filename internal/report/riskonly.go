package report

import (
	"fmt"

	"github.com/ternarybob/auspex/internal/analysis"
	"github.com/ternarybob/auspex/internal/marketdata"
	"github.com/ternarybob/auspex/internal/snapshot"
)

// RiskOnly is the risk assessment variant: a volatility proxy, liquidity
// figures from the spot quote, the key levels, and the risk call with its
// narrative.
func RiskOnly(snap *snapshot.MarketSnapshot, quote *marketdata.Quote) []Section {
	q := quoteOr(quote)

	// Price 0 would blow up the ATR percentage on a degenerate snapshot
	price := snap.Price
	if price == 0 {
		price = 1
	}
	atrPct := snap.ATR / price * 100

	risk := analysis.ScoreRisk(snap.RSI)

	return []Section{
		{
			Title: fmt.Sprintf("⚠️  %s Risk Assessment", snap.Symbol),
			Rule:  24,
		},
		{
			Lines: []string{
				fmt.Sprintf("📊 Volatility (ATR): %.2f%%", atrPct),
				fmt.Sprintf("💰 Volume (24h): $%s", moneyWhole(q.Volume24h)),
				fmt.Sprintf("📏 Spread: $%.2f", q.Spread),
			},
		},
		{
			Title: "🎯 Key Levels:",
			Lines: []string{
				fmt.Sprintf("   Support: $%s", money(snap.Levels.S1)),
				fmt.Sprintf("   Resistance: $%s", money(snap.Levels.R1)),
			},
		},
		{
			Lines: []string{
				fmt.Sprintf("🚨 Risk Level: %s", risk.Level),
				fmt.Sprintf("   Caution: %s", risk.Narrative),
			},
		},
	}
}
