package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"

// DefaultWindowDays bounds how far ahead a reservation may be placed.
const DefaultWindowDays = 60

// DefaultTimeSlots is the fixed set of bookable times the restaurant offers,
// independent of real-time availability until checked.
var DefaultTimeSlots = []string{
	"11:30", "12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
	"17:00", "17:30", "18:00", "18:30", "19:00", "19:30",
	"20:00", "20:30", "21:00", "21:30",
}

// IsTimeSlot reports whether value is one of the offered slots.
func IsTimeSlot(value string, slots []string) bool {
	trimmed := strings.TrimSpace(value)
	for _, slot := range slots {
		if slot == trimmed {
			return true
		}
	}
	return false
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, bool) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// InBookingWindow reports whether date falls within [today, today+windowDays].
// Both boundary days are bookable.
func InBookingWindow(date, today time.Time, windowDays int) bool {
	day := truncateToDay(date)
	start := truncateToDay(today)
	end := start.AddDate(0, 0, windowDays)
	return !day.Before(start) && !day.After(end)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
