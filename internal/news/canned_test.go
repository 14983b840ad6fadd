package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCannedHeadlines(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	items := CannedHeadlines("BTC", now)
	require.Len(t, items, 3)

	assert.Equal(t, "BTC shows resilience amid market volatility", items[0].Title)
	assert.Equal(t, "MarketWatch", items[0].Source)
	assert.Equal(t, "2025-06-15T10:00:00", items[0].PublishedAt)
	assert.Equal(t, 2, items[0].Importance)

	assert.Equal(t, "Federal Reserve hints at policy shift affecting BTC", items[1].Title)
	assert.Equal(t, "2025-06-15T04:00:00", items[1].PublishedAt)
	assert.Equal(t, 3, items[1].Importance)

	assert.Equal(t, "Technical analysis: BTC breakout above key resistance", items[2].Title)
	assert.Equal(t, "2025-06-14T12:00:00", items[2].PublishedAt)
	assert.Equal(t, 1, items[2].Importance)

	for _, item := range items {
		assert.NotEmpty(t, item.URL)
		assert.NotEmpty(t, item.Domain)
	}
}
