// Package engine exposes the public analysis entry point. One call
// sequences snapshot building, quote and headline retrieval, and report
// formatting; every path returns a renderable string.
package engine

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/auspex/internal/common"
	"github.com/ternarybob/auspex/internal/marketdata"
	"github.com/ternarybob/auspex/internal/news"
	"github.com/ternarybob/auspex/internal/report"
	"github.com/ternarybob/auspex/internal/snapshot"
)

const (
	defaultMarket    = "crypto"
	defaultTimeframe = "1h"
)

// SnapshotService is the market-state dependency of the engine.
type SnapshotService interface {
	Build(ctx context.Context, symbol, market, timeframe string) *snapshot.MarketSnapshot
	Quote(ctx context.Context, symbol, market string) *marketdata.Quote
}

// NewsService is the headline dependency of the engine.
type NewsService interface {
	FetchHeadlines(ctx context.Context, symbol, scope string) []news.Item
}

// Request describes one analysis call. Empty fields other than Symbol fall
// back to the engine defaults.
type Request struct {
	Symbol    string
	Market    string
	Timeframe string
	Mode      report.OutputMode
	NewsScope string
}

// Engine runs analysis requests. Collaborator failures degrade inside the
// services; a panic anywhere in the pipeline is converted into an
// error-marked message rather than propagated.
type Engine struct {
	snapshots SnapshotService
	headlines NewsService
	logger    arbor.ILogger
	market    string
	timeframe string
}

// New creates an engine with the full service stack from config.
func New(logger arbor.ILogger, config *common.Config) *Engine {
	data := marketdata.NewService(logger, config)
	builder := snapshot.NewBuilder(logger, config, data)
	headlines := news.NewService(logger, config)

	return NewWithServices(logger, config, builder, headlines)
}

// NewWithServices creates an engine over explicit collaborators.
func NewWithServices(logger arbor.ILogger, config *common.Config, snapshots SnapshotService, headlines NewsService) *Engine {
	market := config.Engine.DefaultMarket
	if market == "" {
		market = defaultMarket
	}
	timeframe := config.Engine.DefaultTimeframe
	if timeframe == "" {
		timeframe = defaultTimeframe
	}

	return &Engine{
		snapshots: snapshots,
		headlines: headlines,
		logger:    logger,
		market:    market,
		timeframe: timeframe,
	}
}

// Analyze runs one request end to end and returns the rendered report. It
// never returns an empty string.
func (e *Engine) Analyze(ctx context.Context, req Request) (result string) {
	requestID := common.NewRequestID()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().
				Str("request_id", requestID).
				Str("symbol", req.Symbol).
				Str("panic", fmt.Sprint(r)).
				Msg("Analysis failed unexpectedly")
			result = fmt.Sprintf("❌ analysis error: %v", r)
		}
	}()

	req = e.withDefaults(req)

	e.logger.Info().
		Str("request_id", requestID).
		Str("symbol", req.Symbol).
		Str("market", req.Market).
		Str("timeframe", req.Timeframe).
		Str("mode", string(req.Mode)).
		Msg("Starting analysis")

	snap := e.snapshots.Build(ctx, req.Symbol, req.Market, req.Timeframe)
	quote := e.snapshots.Quote(ctx, req.Symbol, req.Market)
	items := e.headlines.FetchHeadlines(ctx, req.Symbol, req.NewsScope)

	result = report.Format(req.Mode, snap, quote, items)

	e.logger.Info().
		Str("request_id", requestID).
		Str("symbol", req.Symbol).
		Str("source", snap.Source).
		Int("news_count", len(items)).
		Msg("Analysis complete")

	return result
}

func (e *Engine) withDefaults(req Request) Request {
	if req.Market == "" {
		req.Market = e.market
	}
	if req.Timeframe == "" {
		req.Timeframe = e.timeframe
	}
	if req.Mode == "" {
		req.Mode = report.ModeFullTradePlan
	}
	if req.NewsScope == "" {
		req.NewsScope = news.ScopeSymbolMacro
	}
	return req
}
