package news

import (
	"fmt"
	"time"
)

// publishedAtLayout is the timestamp text layout carried on headlines.
const publishedAtLayout = "2006-01-02T15:04:05"

// CannedHeadlines returns placeholder coverage for a symbol, stamped relative
// to now. Used whenever live providers fail or return nothing in macro scope.
func CannedHeadlines(symbol string, now time.Time) []Item {
	return []Item{
		{
			Title:       fmt.Sprintf("%s shows resilience amid market volatility", symbol),
			Source:      "MarketWatch",
			PublishedAt: now.Add(-2 * time.Hour).Format(publishedAtLayout),
			URL:         "https://example.com/news/article",
			Domain:      "marketwatch.com",
			Importance:  2,
		},
		{
			Title:       fmt.Sprintf("Federal Reserve hints at policy shift affecting %s", symbol),
			Source:      "Forexlive",
			PublishedAt: now.Add(-8 * time.Hour).Format(publishedAtLayout),
			URL:         "https://example.com/news/fed",
			Domain:      "forexlive.com",
			Importance:  3,
		},
		{
			Title:       fmt.Sprintf("Technical analysis: %s breakout above key resistance", symbol),
			Source:      "TradingView",
			PublishedAt: now.AddDate(0, 0, -1).Format(publishedAtLayout),
			URL:         "https://example.com/news/tech",
			Domain:      "tradingview.com",
			Importance:  1,
		},
	}
}
