package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func TestCryptoPanicProvider_FetchHeadlines(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/", r.URL.Path)
		assert.Equal(t, "btc", r.URL.Query().Get("filter"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"title":"BTC rallies past resistance","source":{"title":"CoinDesk"},"published_at":"2025-06-15T08:30:00Z","url":"https://example.com/1","domain":"coindesk.com","importance":2},
			{"title":"Miners accumulate ahead of halving","published_at":"2025-06-15T07:00:00Z","domain":"cryptopanic.com"}
		]}`))
	}))
	defer server.Close()

	provider := NewCryptoPanicProvider(arbor.NewLogger(), server.URL, "", 2*time.Second)

	items, err := provider.FetchHeadlines(context.Background(), "BTC", 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "BTC rallies past resistance", items[0].Title)
	assert.Equal(t, "CoinDesk", items[0].Source)
	assert.Equal(t, 2, items[0].Importance)

	// Missing fields get placeholder values
	assert.Equal(t, "Unknown", items[1].Source)
	assert.Equal(t, "#", items[1].URL)
	assert.Equal(t, 0, items[1].Importance)
}

func TestCryptoPanicProvider_LimitCap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"title":"one"},{"title":"two"},{"title":"three"},{"title":"four"}
		]}`))
	}))
	defer server.Close()

	provider := NewCryptoPanicProvider(arbor.NewLogger(), server.URL, "", 2*time.Second)

	items, err := provider.FetchHeadlines(context.Background(), "eth", 2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCryptoPanicProvider_AuthToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("auth_token"))
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	provider := NewCryptoPanicProvider(arbor.NewLogger(), server.URL, "secret", 2*time.Second)

	items, err := provider.FetchHeadlines(context.Background(), "btc", 10)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCryptoPanicProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	provider := NewCryptoPanicProvider(arbor.NewLogger(), server.URL, "", 2*time.Second)

	_, err := provider.FetchHeadlines(context.Background(), "btc", 10)
	require.Error(t, err)
}
