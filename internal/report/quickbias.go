package report

import (
	"fmt"

	"github.com/ternarybob/auspex/internal/news"
	"github.com/ternarybob/auspex/internal/snapshot"
)

// QuickBias is the one-screen summary: price, directional bias, RSI, and
// the latest headline when one is available.
func QuickBias(snap *snapshot.MarketSnapshot, items []news.Item) []Section {
	lines := []string{
		fmt.Sprintf("📊 %s / %s / %s", snap.Symbol, snap.Market, snap.Timeframe),
		fmt.Sprintf("💵 Price: $%s", money(snap.Price)),
		fmt.Sprintf("📈 Bias: %s", trendOr(snap.Trend)),
		fmt.Sprintf("📊 RSI: %.1f", snap.RSI),
	}

	if len(items) > 0 {
		lines = append(lines, fmt.Sprintf("📰 Latest: %s...", truncate(items[0].Title, 100)))
	}

	return []Section{{Lines: lines}}
}
