package marketdata

import "testing"

func TestBinanceSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BTC", "BTCUSDT"},
		{"btc", "BTCUSDT"},
		{"BTC/USD", "BTCUSDT"},
		{"ETH-USD", "ETHUSDT"},
		{"BTC/USDT", "BTCUSDT"},
		{"SOL-BUSD", "SOLBUSD"},
		{"BTCUSDT", "BTCUSDT"},
		{" doge ", "DOGEUSDT"},
	}

	for _, tt := range tests {
		if got := BinanceSymbol(tt.in); got != tt.want {
			t.Errorf("BinanceSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
