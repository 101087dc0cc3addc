package infrastructure

import (
	"context"
	"time"

	"natureVillageApi/internal/modules/status/application/port"
	"natureVillageApi/internal/modules/status/domain"
	"natureVillageApi/internal/platform/realtime"
)

// HubEvents broadcasts status reports to websocket subscribers.
type HubEvents struct {
	hub *realtime.Hub
}

func NewHubEvents(hub *realtime.Hub) *HubEvents {
	return &HubEvents{hub: hub}
}

func (e *HubEvents) StatusUpdated(ctx context.Context, report domain.Report) {
	e.hub.Broadcast(ctx, &realtime.Message{
		Topic:     realtime.TopicStatusUpdated,
		Entity:    "status",
		Action:    "updated",
		Data:      report,
		Timestamp: time.Now().UTC(),
	})
}

var _ port.Events = (*HubEvents)(nil)
