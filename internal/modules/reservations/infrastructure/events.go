package infrastructure

import (
	"context"
	"time"

	"natureVillageApi/internal/modules/reservations/application/port"
	"natureVillageApi/internal/modules/reservations/domain"
	"natureVillageApi/internal/platform/realtime"
)

// HubEvents publishes booking activity to websocket subscribers through the
// shared hub.
type HubEvents struct {
	hub *realtime.Hub
}

func NewHubEvents(hub *realtime.Hub) *HubEvents {
	return &HubEvents{hub: hub}
}

func (e *HubEvents) ReservationCreated(ctx context.Context, r *domain.Reservation) {
	e.broadcast(ctx, realtime.TopicReservationsCreated, "created", r)
}

func (e *HubEvents) ReservationCancelled(ctx context.Context, r *domain.Reservation) {
	e.broadcast(ctx, realtime.TopicReservationsCancelled, "cancelled", r)
}

func (e *HubEvents) broadcast(ctx context.Context, topic, action string, r *domain.Reservation) {
	e.hub.Broadcast(ctx, &realtime.Message{
		Topic:  topic,
		Entity: "reservations",
		Action: action,
		Metadata: map[string]string{
			"confirmationCode": r.ConfirmationCode,
			"date":             r.Date,
		},
		Data:      r,
		Timestamp: time.Now().UTC(),
	})
}

var _ port.Events = (*HubEvents)(nil)
