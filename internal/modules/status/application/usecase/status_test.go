package usecase

import (
	"context"
	"testing"
	"time"

	"natureVillageApi/internal/modules/status/application/port"
	"natureVillageApi/internal/modules/status/domain"
)

type fakeSource struct {
	name string
	obs  domain.Observation
	err  error
}

func (s *fakeSource) Name() string { return s.name }

func (s *fakeSource) Observe(_ context.Context) (domain.Observation, error) {
	if s.err != nil {
		return domain.Observation{}, s.err
	}
	return s.obs, nil
}

type fakeEvents struct {
	reports []domain.Report
}

func (e *fakeEvents) StatusUpdated(_ context.Context, report domain.Report) {
	e.reports = append(e.reports, report)
}

func openWeekly(t *testing.T) domain.Weekly {
	t.Helper()
	day, ok := domain.BuildSchedule("11:30", "21:30")
	if !ok {
		t.Fatal("failed to build schedule")
	}
	return domain.Weekly{time.Tuesday: day}
}

// 2026-09-01 is a Tuesday.
var testNow = time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)

func TestCurrentPrefersFirstFreshSource(t *testing.T) {
	pos := &fakeSource{name: "pos", obs: domain.Observation{OccupancyPct: 60, At: testNow.Add(-time.Minute)}}
	places := &fakeSource{name: "places", obs: domain.Observation{Open: true, HasOpen: true, OccupancyPct: domain.OccupancyUnknown, At: testNow}}

	uc := NewStatusUseCase([]port.SourceEntry{
		{Source: pos, MaxAge: 5 * time.Minute},
		{Source: places, MaxAge: 15 * time.Minute},
	}, openWeekly(t), nil, func() time.Time { return testNow })

	report := uc.Current(context.Background())
	if report.Source != "pos" {
		t.Fatalf("expected the pos source, got %q", report.Source)
	}
	if report.BusyLevel != domain.BusyBusy {
		t.Fatalf("expected %q from 60%% occupancy, got %q", domain.BusyBusy, report.BusyLevel)
	}
	if !report.Open {
		t.Fatal("expected open from the schedule during service hours")
	}
}

func TestCurrentSkipsStaleAndFailedSources(t *testing.T) {
	pos := &fakeSource{name: "pos", obs: domain.Observation{OccupancyPct: 90, At: testNow.Add(-time.Hour)}}
	places := &fakeSource{name: "places", err: context.DeadlineExceeded}
	yelp := &fakeSource{name: "yelp", obs: domain.Observation{Open: false, HasOpen: true, OccupancyPct: domain.OccupancyUnknown, At: testNow}}

	uc := NewStatusUseCase([]port.SourceEntry{
		{Source: pos, MaxAge: 5 * time.Minute},
		{Source: places, MaxAge: 15 * time.Minute},
		{Source: yelp, MaxAge: 15 * time.Minute},
	}, openWeekly(t), nil, func() time.Time { return testNow })

	report := uc.Current(context.Background())
	if report.Source != "yelp" {
		t.Fatalf("expected the cascade to fall through to yelp, got %q", report.Source)
	}
	if report.Open {
		t.Fatal("expected the source's closed verdict to win over the schedule")
	}
	if report.BusyLevel != domain.BusyQuiet {
		t.Fatalf("expected quiet when closed, got %q", report.BusyLevel)
	}
}

func TestCurrentFallsBackToHeuristic(t *testing.T) {
	uc := NewStatusUseCase([]port.SourceEntry{
		{Source: &fakeSource{name: "pos", err: port.ErrNoObservation}, MaxAge: 5 * time.Minute},
		{Source: &fakeSource{name: "places", err: port.ErrNotConfigured}, MaxAge: 15 * time.Minute},
	}, openWeekly(t), nil, func() time.Time { return testNow })

	report := uc.Current(context.Background())
	if report.Source != "heuristic" {
		t.Fatalf("expected the heuristic fallback, got %q", report.Source)
	}
	if !report.Open || report.BusyLevel != domain.BusyPacked {
		t.Fatalf("expected a packed dinner-rush report, got %+v", report)
	}
}

func TestRefreshBroadcastsOnlyOnChange(t *testing.T) {
	pos := &fakeSource{name: "pos", obs: domain.Observation{OccupancyPct: 10, At: testNow}}
	events := &fakeEvents{}
	uc := NewStatusUseCase([]port.SourceEntry{
		{Source: pos, MaxAge: 5 * time.Minute},
	}, openWeekly(t), events, func() time.Time { return testNow })

	ctx := context.Background()
	uc.Refresh(ctx)
	uc.Refresh(ctx)
	if len(events.reports) != 1 {
		t.Fatalf("expected one broadcast for an unchanged status, got %d", len(events.reports))
	}

	pos.obs.OccupancyPct = 90
	uc.Refresh(ctx)
	if len(events.reports) != 2 {
		t.Fatalf("expected a broadcast after the busy level changed, got %d", len(events.reports))
	}
	if events.reports[1].BusyLevel != domain.BusyPacked {
		t.Fatalf("expected %q, got %q", domain.BusyPacked, events.reports[1].BusyLevel)
	}
}
