package analysis

// DeriveLevels computes floor-trader pivot levels from the current price and
// the 24-candle high and low:
//
//	pivot = (high + low + current) / 3
//	s1    = 2*current - high
//	s2    = current - (high - low)
//	r1    = 2*current - low
//	r2    = current + (high - low)
//
// When the current price sits far from the range midpoint the supports and
// resistances can land out of order; callers render them as-is.
func DeriveLevels(current, high24, low24 float64) KeyLevels {
	spread := high24 - low24
	return KeyLevels{
		Pivot: (high24 + low24 + current) / 3.0,
		S1:    2.0*current - high24,
		S2:    current - spread,
		R1:    2.0*current - low24,
		R2:    current + spread,
	}
}
