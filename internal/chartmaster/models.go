package chartmaster

// OHLCResponse is the bar list returned by the OHLC endpoint, oldest first.
// Each bar is a fixed-position numeric array.
type OHLCResponse [][]float64

// Field positions within an OHLC bar.
const (
	FieldTimestamp = 0
	FieldOpen      = 1
	FieldHigh      = 2
	FieldLow       = 3
	FieldClose     = 4
	FieldVolume    = 5

	// FieldCount is the minimum row width for a usable bar.
	FieldCount = 6
)
