package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/auspex/internal/news"
)

func TestQuickBias_Sections(t *testing.T) {
	sections := QuickBias(testSnapshot(), testHeadlines())

	require.Len(t, sections, 1)
	assert.Equal(t, []string{
		"📊 BTCUSDT / crypto / 1h",
		"💵 Price: $64,000.00",
		"📈 Bias: Bullish",
		"📊 RSI: 55.4",
		"📰 Latest: Bitcoin breaks key resistance as ETF inflows surge...",
	}, sections[0].Lines)
}

func TestQuickBias_NoNews(t *testing.T) {
	sections := QuickBias(testSnapshot(), nil)

	require.Len(t, sections, 1)
	assert.Len(t, sections[0].Lines, 4)
	assert.NotContains(t, strings.Join(sections[0].Lines, "\n"), "Latest")
}

func TestQuickBias_TruncatesLongHeadline(t *testing.T) {
	long := strings.Repeat("x", 150)
	sections := QuickBias(testSnapshot(), []news.Item{{Title: long}})

	last := sections[0].Lines[len(sections[0].Lines)-1]
	assert.Equal(t, "📰 Latest: "+strings.Repeat("x", 100)+"...", last)
}

func TestQuickBias_Render(t *testing.T) {
	got := Render(QuickBias(testSnapshot(), testHeadlines()))

	want := "📊 BTCUSDT / crypto / 1h\n" +
		"💵 Price: $64,000.00\n" +
		"📈 Bias: Bullish\n" +
		"📊 RSI: 55.4\n" +
		"📰 Latest: Bitcoin breaks key resistance as ETF inflows surge...\n"
	assert.Equal(t, want, got)
}
