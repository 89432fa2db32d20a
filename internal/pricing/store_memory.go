package pricing

import (
	"context"
	"sync"
	"time"
)

// MemStore keeps all pricing records in one mutex-guarded map. The product
// set is fixed at construction; records live for the process lifetime.
type MemStore struct {
	mu sync.RWMutex
	m  map[string]Record
}

func NewMemStore(now time.Time) *MemStore {
	s := &MemStore{m: map[string]Record{}}
	s.m["product1"] = Record{Price: 100.0, LastUpdated: now}
	s.m["product2"] = Record{Price: 50.0, LastUpdated: now}
	return s
}

func NewStore() Store {
	return NewMemStore(time.Now().UTC())
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Get(ctx context.Context, productID string) (Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.m[productID]
	return rec, ok, nil
}

func (s *MemStore) All(ctx context.Context) (map[string]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Record, len(s.m))
	for id, rec := range s.m {
		out[id] = rec
	}
	return out, nil
}

func (s *MemStore) AdjustPrice(ctx context.Context, productID string, fn func(current float64) float64) (PriceUpdate, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.m[productID]
	if !ok {
		return PriceUpdate{}, false, nil
	}

	now := time.Now().UTC()
	upd := PriceUpdate{Old: rec.Price, New: fn(rec.Price), At: now}
	s.m[productID] = Record{Price: upd.New, LastUpdated: now}
	return upd, true, nil
}
