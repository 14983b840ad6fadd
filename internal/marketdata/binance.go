package marketdata

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adshao/go-binance/v2"
	"github.com/ternarybob/arbor"
)

// BinanceProvider serves candles from the Binance spot klines endpoint.
// Klines are public; keys only raise the rate limit tier.
type BinanceProvider struct {
	client *binance.Client
	logger arbor.ILogger
}

// NewBinanceProvider creates a Binance-backed candle provider.
func NewBinanceProvider(logger arbor.ILogger, apiKey, secretKey string) *BinanceProvider {
	return &BinanceProvider{
		client: binance.NewClient(apiKey, secretKey),
		logger: logger,
	}
}

// Name returns the provider name.
func (p *BinanceProvider) Name() string {
	return "Binance"
}

// SupportsMarket returns true only for crypto markets.
func (p *BinanceProvider) SupportsMarket(market string) bool {
	return market == "crypto"
}

// FetchCandles retrieves spot klines and converts them to candles.
func (p *BinanceProvider) FetchCandles(ctx context.Context, symbol, timeframe string, limit int) ([]Candle, error) {
	pair := BinanceSymbol(symbol)

	klines, err := p.client.NewKlinesService().
		Symbol(pair).
		Interval(timeframe).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("binance klines for %s: %w", pair, err)
	}

	candles := make([]Candle, 0, len(klines))
	for _, k := range klines {
		candle, err := translateKline(k)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}

	return candles, nil
}

// translateKline converts a Binance kline, which carries prices as strings,
// into a Candle.
func translateKline(k *binance.Kline) (Candle, error) {
	if k == nil {
		return Candle{}, fmt.Errorf("received nil kline")
	}

	open, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return Candle{}, fmt.Errorf("parsing open price %q: %w", k.Open, err)
	}
	high, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return Candle{}, fmt.Errorf("parsing high price %q: %w", k.High, err)
	}
	low, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return Candle{}, fmt.Errorf("parsing low price %q: %w", k.Low, err)
	}
	cls, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return Candle{}, fmt.Errorf("parsing close price %q: %w", k.Close, err)
	}
	vol, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return Candle{}, fmt.Errorf("parsing volume %q: %w", k.Volume, err)
	}

	return Candle{
		Timestamp: k.OpenTime / 1000, // Binance reports milliseconds
		Open:      open,
		High:      high,
		Low:       low,
		Close:     cls,
		Volume:    vol,
	}, nil
}
