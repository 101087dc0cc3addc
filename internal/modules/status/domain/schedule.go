package domain

import (
	"strings"
	"time"
)

// Schedule represents the operating hours for a single day.
type Schedule struct {
	Open  time.Time
	Close time.Time
}

// IsZero returns true when both open and close times are unspecified.
func (s Schedule) IsZero() bool {
	return s.Open.IsZero() && s.Close.IsZero()
}

// HasBothTimes indicates whether the schedule has explicit open and close times.
func (s Schedule) HasBothTimes() bool {
	return !s.Open.IsZero() && !s.Close.IsZero()
}

// BuildSchedule constructs a day schedule enforcing domain invariants.
//   - Accepts values in "HH:MM" format.
//   - Returns false when either value is missing or invalid.
//   - The close time must occur after the open time within the same day.
func BuildSchedule(openRaw, closeRaw string) (Schedule, bool) {
	open, openOK := parseScheduleComponent(openRaw)
	close, closeOK := parseScheduleComponent(closeRaw)
	if !openOK || !closeOK {
		return Schedule{}, false
	}
	if !close.After(open) {
		return Schedule{}, false
	}
	return Schedule{Open: open, Close: close}, true
}

func parseScheduleComponent(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse("15:04", trimmed)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Weekly maps weekdays to operating hours; a missing or zero entry means the
// restaurant is closed that day.
type Weekly map[time.Weekday]Schedule

// IsOpenAt reports whether the clock time of t falls inside that day's hours.
func (w Weekly) IsOpenAt(t time.Time) bool {
	day, ok := w[t.Weekday()]
	if !ok || !day.HasBothTimes() {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	openMin := day.Open.Hour()*60 + day.Open.Minute()
	closeMin := day.Close.Hour()*60 + day.Close.Minute()
	return minute >= openMin && minute < closeMin
}

// HeuristicReport derives a deterministic status from the weekly hours alone.
// It is the cascade's terminal fallback and always succeeds: meal rushes map
// to the busier buckets, shoulder hours to the quieter ones.
func (w Weekly) HeuristicReport(t time.Time) Report {
	report := Report{
		OccupancyPct: OccupancyUnknown,
		Source:       "heuristic",
		ObservedAt:   t.UTC(),
	}
	if !w.IsOpenAt(t) {
		report.BusyLevel = BusyQuiet
		return report
	}
	report.Open = true
	report.BusyLevel = busyAtHour(t.Hour())
	return report
}

func busyAtHour(hour int) BusyLevel {
	switch {
	case hour >= 19 && hour < 21:
		return BusyPacked
	case hour >= 12 && hour < 14, hour >= 18 && hour < 19:
		return BusyBusy
	case hour >= 11 && hour < 12, hour >= 21:
		return BusyQuiet
	default:
		return BusyModerate
	}
}
