package marketdata

import "strings"

// BinanceSymbol converts a display symbol to Binance spot pair notation.
// "BTC" and "BTC/USD" both become "BTCUSDT"; an explicit stable-quote
// suffix is kept as-is.
func BinanceSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))

	// Split off a quote currency written as BTC/USD or BTC-USD
	for _, sep := range []string{"/", "-"} {
		if i := strings.Index(s, sep); i > 0 {
			quote := s[i+1:]
			s = s[:i]
			if quote == "USDT" || quote == "BUSD" {
				return s + quote
			}
			break
		}
	}

	if strings.HasSuffix(s, "USDT") || strings.HasSuffix(s, "BUSD") {
		return s
	}
	return s + "USDT"
}
