// Package news provides headline retrieval for market analysis. Providers are
// tried in order with canned fallback coverage so reports always have
// something to cite.
package news

// Scope controls how far headline coverage reaches.
const (
	// ScopeSymbolMacro includes macro coverage; empty live results fall back
	// to canned headlines.
	ScopeSymbolMacro = "symbol+macro"

	// ScopeSymbolOnly sticks to symbol coverage; empty live results stay empty.
	ScopeSymbolOnly = "symbol-only"
)

// Item is a single news headline.
type Item struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"` // timestamp text, RFC 3339 style
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	Importance  int    `json:"importance"` // 0 unknown, 1 low to 3 high
}
