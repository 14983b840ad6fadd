package news

import (
	"fmt"
	"strings"
)

// ClassifyImportance grades a headline by keyword materiality.
// Returns importance (1 low to 3 high) and a reason string.
func ClassifyImportance(title string) (importance int, reason string) {
	titleUpper := strings.ToUpper(title)

	// HIGH: regulatory and structural events
	highKeywords := []string{
		"FEDERAL RESERVE", "FED", "SEC", "ETF", "REGULATION", "REGULATORY",
		"BAN", "LAWSUIT", "HACK", "EXPLOIT", "BANKRUPTCY", "INSOLVENCY",
		"HALT", "DELISTING", "LISTING", "APPROVAL",
	}
	for _, kw := range highKeywords {
		if strings.Contains(titleUpper, kw) {
			return 3, fmt.Sprintf("Contains '%s'", kw)
		}
	}

	// MEDIUM: price action and market structure
	mediumKeywords := []string{
		"BREAKOUT", "RESISTANCE", "SUPPORT", "RALLY", "SURGE", "CRASH",
		"PLUNGE", "ALL-TIME HIGH", "ATH", "WHALE", "LIQUIDATION",
		"UPGRADE", "DOWNGRADE", "PARTNERSHIP",
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(titleUpper, kw) {
			return 2, fmt.Sprintf("Contains '%s'", kw)
		}
	}

	return 1, "No material indicators found"
}
