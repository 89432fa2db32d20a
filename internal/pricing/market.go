package pricing

import (
	"math/rand/v2"
	"sync"
)

const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// Snapshot is one ephemeral reading of simulated market conditions. It is
// generated per update request and never stored.
type Snapshot struct {
	Demand          float64 `json:"demand"`
	CompetitorPrice float64 `json:"competitor_price"`
	Trend           string  `json:"trend"`
}

// Source produces market snapshots. The production source is random; tests
// plug in fixed snapshots.
type Source interface {
	Snapshot() Snapshot
}

type Simulator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSimulator() *Simulator {
	return &Simulator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

var trends = [...]string{TrendRising, TrendFalling, TrendStable}

// Snapshot draws demand from [0.5, 2.0), competitor price from [80, 120) and
// a uniform trend. Competitor price is always positive, which Adjust relies on.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Demand:          0.5 + s.rng.Float64()*1.5,
		CompetitorPrice: 80 + s.rng.Float64()*40,
		Trend:           trends[s.rng.IntN(len(trends))],
	}
}
