package news

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/auspex/internal/common"
)

type fakeProvider struct {
	name  string
	items []Item
	err   error
	calls int
	limit int
}

func (f *fakeProvider) Name() string {
	return f.name
}

func (f *fakeProvider) FetchHeadlines(ctx context.Context, symbol string, limit int) ([]Item, error) {
	f.calls++
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func fakeItems(n int) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, Item{
			Title:  fmt.Sprintf("Headline %d", i+1),
			Source: "FakeWire",
		})
	}
	return items
}

func newTestNewsService() *Service {
	return &Service{
		logger:   arbor.NewLogger(),
		retrieve: 10,
		display:  5,
		now: func() time.Time {
			return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func TestService_FetchHeadlines_Live(t *testing.T) {
	service := newTestNewsService()
	provider := &fakeProvider{name: "live", items: fakeItems(3)}
	service.RegisterProvider(provider)

	items := service.FetchHeadlines(context.Background(), "BTC", ScopeSymbolMacro)

	require.Len(t, items, 3)
	assert.Equal(t, "Headline 1", items[0].Title)
	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, 10, provider.limit, "providers should be asked for the retrieve count")
}

func TestService_FetchHeadlines_TrimsToDisplay(t *testing.T) {
	service := newTestNewsService()
	service.RegisterProvider(&fakeProvider{name: "live", items: fakeItems(8)})

	items := service.FetchHeadlines(context.Background(), "BTC", ScopeSymbolMacro)

	require.Len(t, items, 5)
	assert.Equal(t, "Headline 5", items[4].Title)
}

func TestService_FetchHeadlines_ErrorFallsBackToCanned(t *testing.T) {
	service := newTestNewsService()
	service.RegisterProvider(&fakeProvider{name: "broken", err: errors.New("api down")})

	items := service.FetchHeadlines(context.Background(), "BTC", ScopeSymbolOnly)

	require.Len(t, items, 3)
	assert.Contains(t, items[0].Title, "BTC")
	assert.Equal(t, "2025-06-15T10:00:00", items[0].PublishedAt)
}

func TestService_FetchHeadlines_EmptyMacroScopeFallsBackToCanned(t *testing.T) {
	service := newTestNewsService()
	service.RegisterProvider(&fakeProvider{name: "quiet", items: nil})

	items := service.FetchHeadlines(context.Background(), "ETH", ScopeSymbolMacro)

	require.Len(t, items, 3)
	assert.Contains(t, items[1].Title, "Federal Reserve")
}

func TestService_FetchHeadlines_EmptySymbolScopeStaysEmpty(t *testing.T) {
	service := newTestNewsService()
	service.RegisterProvider(&fakeProvider{name: "quiet", items: nil})

	items := service.FetchHeadlines(context.Background(), "ETH", ScopeSymbolOnly)

	assert.Empty(t, items)
}

func TestService_FetchHeadlines_FallsThroughOnError(t *testing.T) {
	service := newTestNewsService()
	broken := &fakeProvider{name: "broken", err: errors.New("api down")}
	working := &fakeProvider{name: "working", items: fakeItems(2)}
	service.RegisterProvider(broken)
	service.RegisterProvider(working)

	items := service.FetchHeadlines(context.Background(), "BTC", ScopeSymbolMacro)

	require.Len(t, items, 2)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, working.calls)
}

func TestService_FetchHeadlines_SkipsEmptyProvider(t *testing.T) {
	service := newTestNewsService()
	quiet := &fakeProvider{name: "quiet"}
	working := &fakeProvider{name: "working", items: fakeItems(1)}
	service.RegisterProvider(quiet)
	service.RegisterProvider(working)

	items := service.FetchHeadlines(context.Background(), "BTC", ScopeSymbolMacro)

	require.Len(t, items, 1)
	assert.Equal(t, "Headline 1", items[0].Title)
	assert.Equal(t, 1, quiet.calls)
}

func TestNewService_RegistersProvidersFromConfig(t *testing.T) {
	config := common.NewDefaultConfig()

	service := NewService(arbor.NewLogger(), config)
	assert.Len(t, service.providers, 1, "scraper is disabled by default")

	config.News.Scraper.Enabled = true
	service = NewService(arbor.NewLogger(), config)
	assert.Len(t, service.providers, 2)
}
