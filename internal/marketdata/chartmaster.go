package marketdata

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/auspex/internal/chartmaster"
)

// ChartMasterProvider serves candles from the ChartMaster TradingView gateway.
// It is market-agnostic and sits first in the provider order.
type ChartMasterProvider struct {
	client *chartmaster.Client
	logger arbor.ILogger
}

// NewChartMasterProvider creates a ChartMaster-backed candle provider.
func NewChartMasterProvider(logger arbor.ILogger, client *chartmaster.Client) *ChartMasterProvider {
	return &ChartMasterProvider{
		client: client,
		logger: logger,
	}
}

// Name returns the provider name.
func (p *ChartMasterProvider) Name() string {
	return "ChartMaster"
}

// SupportsMarket returns true for every market; the gateway serves crypto,
// stocks and forex symbols alike.
func (p *ChartMasterProvider) SupportsMarket(market string) bool {
	return true
}

// FetchCandles retrieves OHLCV bars and converts them to candles.
func (p *ChartMasterProvider) FetchCandles(ctx context.Context, symbol, timeframe string, limit int) ([]Candle, error) {
	bars, err := p.client.GetOHLC(ctx, symbol, timeframe, limit)
	if err != nil {
		return nil, err
	}

	candles := make([]Candle, 0, len(bars))
	for i, bar := range bars {
		if len(bar) < chartmaster.FieldCount {
			return nil, fmt.Errorf("malformed bar at index %d: got %d fields", i, len(bar))
		}
		candles = append(candles, Candle{
			Timestamp: int64(bar[chartmaster.FieldTimestamp]),
			Open:      bar[chartmaster.FieldOpen],
			High:      bar[chartmaster.FieldHigh],
			Low:       bar[chartmaster.FieldLow],
			Close:     bar[chartmaster.FieldClose],
			Volume:    bar[chartmaster.FieldVolume],
		})
	}

	return candles, nil
}
