package domain

import "time"

// BusyLevel buckets how crowded the dining room is.
type BusyLevel string

const (
	BusyQuiet    BusyLevel = "quiet"
	BusyModerate BusyLevel = "moderate"
	BusyBusy     BusyLevel = "busy"
	BusyPacked   BusyLevel = "packed"
)

// OccupancyUnknown marks reports whose source has no seat-level data.
const OccupancyUnknown = -1

// Observation is a raw reading from one status source.
type Observation struct {
	// Open is the source's open/closed verdict. Sources without one leave
	// HasOpen false and the weekly schedule decides.
	Open    bool
	HasOpen bool
	// OccupancyPct is seated covers as a percentage, or OccupancyUnknown.
	OccupancyPct int
	At           time.Time
}

// Report is the published restaurant status.
type Report struct {
	Open         bool      `json:"open"`
	BusyLevel    BusyLevel `json:"busyLevel"`
	OccupancyPct int       `json:"occupancyPct"`
	Source       string    `json:"source"`
	ObservedAt   time.Time `json:"observedAt"`
}

// BusyLevelFromOccupancy maps a percentage to a bucket.
func BusyLevelFromOccupancy(pct int) BusyLevel {
	switch {
	case pct < 25:
		return BusyQuiet
	case pct < 55:
		return BusyModerate
	case pct < 85:
		return BusyBusy
	default:
		return BusyPacked
	}
}
