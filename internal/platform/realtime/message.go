package realtime

import "time"

// Message is the envelope broadcast to websocket subscribers.
type Message struct {
	Topic     string            `json:"topic"`
	Entity    string            `json:"entity"`
	Action    string            `json:"action"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Data      any               `json:"data,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// Topics published by this service.
const (
	TopicStatusUpdated         = "status.updated"
	TopicReservationsCreated   = "reservations.created"
	TopicReservationsCancelled = "reservations.cancelled"
)
