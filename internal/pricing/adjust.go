package pricing

import "math"

// Adjust computes the next price from the current one and a market snapshot:
// demand scales the price, a rising/falling trend nudges it ±10%, and the
// result is clamped to [0.9, 1.1] × competitor price, then rounded to two
// decimals. Requires m.CompetitorPrice > 0, which the Simulator guarantees,
// so the clamp window is never degenerate and the result is non-negative.
func Adjust(current float64, m Snapshot) float64 {
	p := current * m.Demand

	switch m.Trend {
	case TrendRising:
		p *= 1.1
	case TrendFalling:
		p *= 0.9
	}

	p = math.Max(m.CompetitorPrice*0.9, math.Min(p, m.CompetitorPrice*1.1))
	return Round2(p)
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
