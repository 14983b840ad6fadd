package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/auspex/internal/news"
)

func TestNewsBriefing_Sections(t *testing.T) {
	sections := NewsBriefing("BTCUSDT", testQuote(), testHeadlines())

	require.Len(t, sections, 4)
	assert.Equal(t, "📰 BTCUSDT News Briefing", sections[0].Title)
	assert.Equal(t, 19, sections[0].Rule)

	assert.Equal(t, []string{"Market Status: $64,100.00 (+1.50%)"}, sections[1].Lines)
	assert.Equal(t, "📄 Latest Headlines:", sections[2].Title)

	assert.Equal(t, []string{
		"1. Bitcoin breaks key resistance as ETF inflows surge",
		"   CoinDesk - 2025-06-15T10:30",
		"2. Fed holds rates steady",
		"   Forexlive - 2025-06-15T08:00",
		"3. Miners expand capacity",
		"   TheBlock - 2025-06-14T22:15",
	}, sections[3].Lines)
}

func TestNewsBriefing_LongTitleGetsEllipsis(t *testing.T) {
	long := strings.Repeat("y", 130)
	sections := NewsBriefing("ETH", testQuote(), []news.Item{{Title: long, Source: "Wire", PublishedAt: "2025-06-15T08:00:00"}})

	lines := sections[len(sections)-1].Lines
	assert.Equal(t, "1. "+strings.Repeat("y", 120)+"...", lines[0])
}

func TestNewsBriefing_CapsAtFive(t *testing.T) {
	items := make([]news.Item, 7)
	for i := range items {
		items[i] = news.Item{Title: "headline", Source: "Wire", PublishedAt: "2025-06-15T08:00:00"}
	}

	sections := NewsBriefing("BTC", testQuote(), items)

	lines := sections[len(sections)-1].Lines
	assert.Len(t, lines, 10, "five numbered items, two lines each")
	assert.True(t, strings.HasPrefix(lines[8], "5. "))
}

func TestNewsBriefing_NoNews(t *testing.T) {
	sections := NewsBriefing("BTC", testQuote(), nil)

	require.Len(t, sections, 3)
	assert.Equal(t, "📄 Latest Headlines:", sections[2].Title)
	assert.Empty(t, sections[2].Lines)
}

func TestNewsBriefing_Render(t *testing.T) {
	got := Render(NewsBriefing("BTCUSDT", testQuote(), testHeadlines()))

	want := "📰 BTCUSDT News Briefing\n" +
		"===================\n" +
		"\n" +
		"Market Status: $64,100.00 (+1.50%)\n" +
		"\n" +
		"📄 Latest Headlines:\n" +
		"\n" +
		"1. Bitcoin breaks key resistance as ETF inflows surge\n" +
		"   CoinDesk - 2025-06-15T10:30\n" +
		"2. Fed holds rates steady\n" +
		"   Forexlive - 2025-06-15T08:00\n" +
		"3. Miners expand capacity\n" +
		"   TheBlock - 2025-06-14T22:15\n"
	assert.Equal(t, want, got)
}
