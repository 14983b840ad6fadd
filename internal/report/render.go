package report

import (
	"fmt"
	"strings"

	"github.com/ternarybob/auspex/internal/analysis"
	"github.com/ternarybob/auspex/internal/marketdata"
	"github.com/ternarybob/auspex/internal/news"
	"github.com/ternarybob/auspex/internal/snapshot"
)

const (
	boxTop    = "┌───────────────────┐"
	boxBottom = "└───────────────────┘"
)

// Format renders the inputs into the requested output mode. Unrecognized
// modes fall back to the full trade plan.
func Format(mode OutputMode, snap *snapshot.MarketSnapshot, quote *marketdata.Quote, items []news.Item) string {
	switch mode {
	case ModeQuickBias:
		return Render(QuickBias(snap, items))
	case ModeRiskOnly:
		return Render(RiskOnly(snap, quote))
	case ModeNewsBriefing:
		return Render(NewsBriefing(snap.Symbol, quote, items))
	default:
		return Render(FullTradePlan(snap, items))
	}
}

// Render joins sections into the final report text. Sections are separated
// by a blank line; titles, rules, and box rails are added here.
func Render(sections []Section) string {
	blocks := make([]string, 0, len(sections))

	for _, section := range sections {
		lines := make([]string, 0, len(section.Lines)+4)
		if section.Title != "" {
			lines = append(lines, section.Title)
			if section.Rule > 0 {
				lines = append(lines, strings.Repeat("=", section.Rule))
			}
		}
		if section.Boxed {
			lines = append(lines, boxTop)
			lines = append(lines, section.Lines...)
			lines = append(lines, boxBottom)
		} else {
			lines = append(lines, section.Lines...)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n") + "\n"
}

// money renders a value with grouped thousands and cents, e.g. 64,250.50.
func money(v float64) string {
	return groupThousands(fmt.Sprintf("%.2f", v))
}

// moneyWhole renders a value with grouped thousands and no cents.
func moneyWhole(v float64) string {
	return groupThousands(fmt.Sprintf("%.0f", v))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var sb strings.Builder
	sb.WriteString(sign)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(intPart[i])
	}
	if hasFrac {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}

// truncate caps a string at n characters without splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// trendOr maps an unset trend to Neutral so formatters never print a blank
// label.
func trendOr(t analysis.TrendLabel) analysis.TrendLabel {
	if t == "" {
		return analysis.TrendNeutral
	}
	return t
}

// quoteOr guards against a missing quote record.
func quoteOr(q *marketdata.Quote) *marketdata.Quote {
	if q == nil {
		return &marketdata.Quote{}
	}
	return q
}
