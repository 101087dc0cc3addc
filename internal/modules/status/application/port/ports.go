package port

import (
	"context"
	"errors"
	"time"

	"natureVillageApi/internal/modules/status/domain"
)

var (
	ErrNoObservation = errors.New("no observation available")
	ErrNotConfigured = errors.New("source not configured")
)

// Source is one upstream the status cascade can consult.
type Source interface {
	Name() string
	Observe(ctx context.Context) (domain.Observation, error)
}

// SourceEntry pairs a source with its staleness bound: observations older
// than MaxAge are ignored and the cascade falls through.
type SourceEntry struct {
	Source Source
	MaxAge time.Duration
}

// Events publishes status changes to realtime subscribers.
type Events interface {
	StatusUpdated(ctx context.Context, report domain.Report)
}
