package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"natureVillageApi/internal/modules/status/application/port"
	"natureVillageApi/internal/modules/status/domain"
)

// StatusUseCase resolves the live restaurant status through an ordered
// cascade of sources, falling back to the schedule heuristic when every
// upstream is unavailable or stale.
type StatusUseCase struct {
	sources  []port.SourceEntry
	schedule domain.Weekly
	events   port.Events
	now      func() time.Time

	mu   sync.Mutex
	last *domain.Report
}

func NewStatusUseCase(sources []port.SourceEntry, schedule domain.Weekly, events port.Events, now func() time.Time) *StatusUseCase {
	if now == nil {
		now = time.Now
	}
	return &StatusUseCase{sources: sources, schedule: schedule, events: events, now: now}
}

// Current evaluates the cascade and returns the freshest eligible report.
func (uc *StatusUseCase) Current(ctx context.Context) domain.Report {
	at := uc.now()
	for _, entry := range uc.sources {
		obs, err := entry.Source.Observe(ctx)
		if err != nil {
			slog.Debug("status source unavailable", slog.String("source", entry.Source.Name()), slog.Any("error", err))
			continue
		}
		if entry.MaxAge > 0 && at.Sub(obs.At) > entry.MaxAge {
			slog.Debug("status source stale",
				slog.String("source", entry.Source.Name()),
				slog.Time("observedAt", obs.At),
			)
			continue
		}
		return uc.buildReport(entry.Source.Name(), obs, at)
	}
	return uc.schedule.HeuristicReport(at)
}

func (uc *StatusUseCase) buildReport(source string, obs domain.Observation, at time.Time) domain.Report {
	report := domain.Report{
		Open:         uc.schedule.IsOpenAt(at),
		OccupancyPct: domain.OccupancyUnknown,
		Source:       source,
		ObservedAt:   obs.At.UTC(),
	}
	if obs.HasOpen {
		report.Open = obs.Open
	}
	if obs.OccupancyPct >= 0 {
		report.OccupancyPct = obs.OccupancyPct
		report.BusyLevel = domain.BusyLevelFromOccupancy(obs.OccupancyPct)
	} else {
		report.BusyLevel = uc.schedule.HeuristicReport(at).BusyLevel
	}
	if !report.Open {
		report.BusyLevel = domain.BusyQuiet
	}
	return report
}

// Refresh evaluates the cascade once and broadcasts when the published state
// changed since the previous refresh.
func (uc *StatusUseCase) Refresh(ctx context.Context) domain.Report {
	report := uc.Current(ctx)

	uc.mu.Lock()
	changed := uc.last == nil ||
		uc.last.Open != report.Open ||
		uc.last.BusyLevel != report.BusyLevel ||
		uc.last.Source != report.Source
	uc.last = &report
	uc.mu.Unlock()

	if changed && uc.events != nil {
		slog.Info("status updated",
			slog.Bool("open", report.Open),
			slog.String("busyLevel", string(report.BusyLevel)),
			slog.String("source", report.Source),
		)
		uc.events.StatusUpdated(ctx, report)
	}
	return report
}

// RunRefresher re-evaluates the cascade on the given interval until the
// context is cancelled.
func (uc *StatusUseCase) RunRefresher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	uc.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.Refresh(ctx)
		}
	}
}
