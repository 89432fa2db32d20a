package pricing

import (
	"context"
	"time"
)

// Record is the stored pricing state for one product.
type Record struct {
	Price       float64   `json:"price"`
	LastUpdated time.Time `json:"last_updated"`
}

// PriceUpdate reports one committed price change.
type PriceUpdate struct {
	Old float64
	New float64
	At  time.Time
}

type Store interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, productID string) (Record, bool, error)
	All(ctx context.Context) (map[string]Record, error)

	// AdjustPrice applies fn to the product's current price and commits the
	// result together with a fresh timestamp. The read-compute-write cycle is
	// atomic: no other update to the same product can interleave. Returns
	// found=false when productID is not in the store; the product set is
	// fixed at construction, so no write happens in that case.
	AdjustPrice(ctx context.Context, productID string, fn func(current float64) float64) (upd PriceUpdate, found bool, err error)
}
