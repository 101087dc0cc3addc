package infrastructure

import (
	"context"
	"errors"
	"testing"
	"time"

	"natureVillageApi/internal/modules/status/application/port"
)

func TestPOSFeedObserveBeforeAnyReading(t *testing.T) {
	feed := NewPOSFeed()
	if _, err := feed.Observe(context.Background()); !errors.Is(err, port.ErrNoObservation) {
		t.Fatalf("expected %v, got %v", port.ErrNoObservation, err)
	}
}

func TestPOSFeedRecord(t *testing.T) {
	at := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		occupied int
		capacity int
		expected int
	}{
		{name: "half full", occupied: 40, capacity: 80, expected: 50},
		{name: "empty", occupied: 0, capacity: 80, expected: 0},
		{name: "overbooked clamps", occupied: 120, capacity: 80, expected: 100},
		{name: "negative clamps", occupied: -5, capacity: 80, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			feed := NewPOSFeed()
			feed.Record(tc.occupied, tc.capacity, at)
			obs, err := feed.Observe(context.Background())
			if err != nil {
				t.Fatalf("observe: %v", err)
			}
			if obs.OccupancyPct != tc.expected {
				t.Fatalf("expected %d%%, got %d%%", tc.expected, obs.OccupancyPct)
			}
			if !obs.At.Equal(at) {
				t.Fatalf("expected the reading timestamp, got %v", obs.At)
			}
		})
	}
}

func TestPOSFeedIgnoresInvalidCapacity(t *testing.T) {
	feed := NewPOSFeed()
	feed.Record(10, 0, time.Now())
	if _, err := feed.Observe(context.Background()); !errors.Is(err, port.ErrNoObservation) {
		t.Fatalf("expected the reading to be dropped, got %v", err)
	}
}

func TestPOSFeedKeepsLatestReading(t *testing.T) {
	feed := NewPOSFeed()
	at := time.Date(2026, 9, 1, 19, 0, 0, 0, time.UTC)
	feed.Record(10, 80, at)
	feed.Record(60, 80, at.Add(time.Minute))

	obs, err := feed.Observe(context.Background())
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if obs.OccupancyPct != 75 {
		t.Fatalf("expected the newer reading, got %d%%", obs.OccupancyPct)
	}
}
