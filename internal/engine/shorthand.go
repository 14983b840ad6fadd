package engine

import (
	"context"

	"github.com/ternarybob/auspex/internal/news"
	"github.com/ternarybob/auspex/internal/report"
)

// QuickBias runs the quick bias variant, defaulting to the 1h timeframe
// with symbol-only news.
func (e *Engine) QuickBias(ctx context.Context, symbol, timeframe string) string {
	if timeframe == "" {
		timeframe = "1h"
	}
	return e.Analyze(ctx, Request{
		Symbol:    symbol,
		Market:    defaultMarket,
		Timeframe: timeframe,
		Mode:      report.ModeQuickBias,
		NewsScope: news.ScopeSymbolOnly,
	})
}

// FullPlan runs the full trade plan variant, defaulting to the 4h timeframe
// with symbol and macro news.
func (e *Engine) FullPlan(ctx context.Context, symbol, timeframe string) string {
	if timeframe == "" {
		timeframe = "4h"
	}
	return e.Analyze(ctx, Request{
		Symbol:    symbol,
		Market:    defaultMarket,
		Timeframe: timeframe,
		Mode:      report.ModeFullTradePlan,
		NewsScope: news.ScopeSymbolMacro,
	})
}

// RiskAssessment runs the risk-only variant, defaulting to the 1h timeframe
// with symbol-only news.
func (e *Engine) RiskAssessment(ctx context.Context, symbol, timeframe string) string {
	if timeframe == "" {
		timeframe = "1h"
	}
	return e.Analyze(ctx, Request{
		Symbol:    symbol,
		Market:    defaultMarket,
		Timeframe: timeframe,
		Mode:      report.ModeRiskOnly,
		NewsScope: news.ScopeSymbolOnly,
	})
}

// NewsBriefing runs the news briefing variant on the 1h timeframe with
// symbol and macro news.
func (e *Engine) NewsBriefing(ctx context.Context, symbol string) string {
	return e.Analyze(ctx, Request{
		Symbol:    symbol,
		Market:    defaultMarket,
		Timeframe: "1h",
		Mode:      report.ModeNewsBriefing,
		NewsScope: news.ScopeSymbolMacro,
	})
}
