package report

import (
	"fmt"
	"unicode/utf8"

	"github.com/ternarybob/auspex/internal/marketdata"
	"github.com/ternarybob/auspex/internal/news"
)

// NewsBriefing is the headline digest: a one-line market status from the
// spot quote followed by up to five numbered headlines.
func NewsBriefing(symbol string, quote *marketdata.Quote, items []news.Item) []Section {
	q := quoteOr(quote)

	sections := []Section{
		{
			Title: fmt.Sprintf("📰 %s News Briefing", symbol),
			Rule:  19,
		},
		{
			Lines: []string{
				fmt.Sprintf("Market Status: $%s (%+.2f%%)", money(q.Price), q.Change24h),
			},
		},
		{
			Title: "📄 Latest Headlines:",
		},
	}

	var lines []string
	for i, item := range items {
		if i >= 5 {
			break
		}
		title := truncate(item.Title, 120)
		if utf8.RuneCountInString(item.Title) > 120 {
			title += "..."
		}
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, title),
			fmt.Sprintf("   %s - %s", item.Source, truncate(item.PublishedAt, 16)),
		)
	}
	if len(lines) > 0 {
		sections = append(sections, Section{Lines: lines})
	}

	return sections
}
