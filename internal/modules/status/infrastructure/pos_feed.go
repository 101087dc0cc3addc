package infrastructure

import (
	"context"
	"sync"
	"time"

	"natureVillageApi/internal/modules/status/application/port"
	"natureVillageApi/internal/modules/status/domain"
)

// POSFeed holds the latest occupancy reading pushed by the point-of-sale,
// whether it arrived over Kafka or the webhook endpoint.
type POSFeed struct {
	mu   sync.RWMutex
	last *domain.Observation
}

func NewPOSFeed() *POSFeed {
	return &POSFeed{}
}

func (f *POSFeed) Name() string { return "pos" }

// Record stores a new occupancy reading. Capacity must be positive; the
// percentage is clamped to [0,100].
func (f *POSFeed) Record(occupied, capacity int, at time.Time) {
	if capacity <= 0 {
		return
	}
	pct := occupied * 100 / capacity
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if at.IsZero() {
		at = time.Now()
	}
	f.mu.Lock()
	f.last = &domain.Observation{OccupancyPct: pct, At: at}
	f.mu.Unlock()
}

// Observe returns the latest reading, or ErrNoObservation before any arrive.
func (f *POSFeed) Observe(_ context.Context) (domain.Observation, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.last == nil {
		return domain.Observation{}, port.ErrNoObservation
	}
	return *f.last, nil
}

var _ port.Source = (*POSFeed)(nil)
