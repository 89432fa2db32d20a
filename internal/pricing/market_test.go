package pricing_test

import (
	"testing"

	"DynamicPricing/internal/pricing"
)

func TestSimulator_SnapshotRanges(t *testing.T) {
	sim := pricing.NewSimulator()
	seen := map[string]bool{}

	for i := 0; i < 5000; i++ {
		snap := sim.Snapshot()

		if snap.Demand < 0.5 || snap.Demand >= 2.0 {
			t.Fatalf("demand %v out of [0.5, 2.0)", snap.Demand)
		}
		if snap.CompetitorPrice < 80 || snap.CompetitorPrice >= 120 {
			t.Fatalf("competitor_price %v out of [80, 120)", snap.CompetitorPrice)
		}

		switch snap.Trend {
		case pricing.TrendRising, pricing.TrendFalling, pricing.TrendStable:
			seen[snap.Trend] = true
		default:
			t.Fatalf("unexpected trend %q", snap.Trend)
		}
	}

	if len(seen) != 3 {
		t.Fatalf("trends seen=%v, want all three", seen)
	}
}
