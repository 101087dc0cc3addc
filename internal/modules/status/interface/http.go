package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"natureVillageApi/internal/modules/status/application/usecase"
	"natureVillageApi/internal/modules/status/infrastructure"
	"natureVillageApi/internal/platform/realtime"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler serves the live restaurant status over HTTP and websocket, and
// accepts POS occupancy webhooks.
type Handler struct {
	status *usecase.StatusUseCase
	hub    *realtime.Hub
	feed   *infrastructure.POSFeed
}

func NewHandler(status *usecase.StatusUseCase, hub *realtime.Hub, feed *infrastructure.POSFeed) *Handler {
	return &Handler{status: status, hub: hub, feed: feed}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/status", h.GetStatus)
	e.GET("/ws/status", h.StreamStatus)
	e.POST("/api/webhooks/pos", h.POSWebhook)
}

// GetStatus handles GET /api/status.
func (h *Handler) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status.Current(c.Request().Context()))
}

// StreamStatus upgrades to a websocket that receives status.updated events,
// starting with the current report.
func (h *Handler) StreamStatus(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error("status ws upgrade failed", slog.Any("error", err))
		return err
	}

	client := realtime.NewClient(h.hub, conn, 8)
	h.hub.AttachClient(client, []string{realtime.TopicStatusUpdated})

	go client.WritePump()
	go client.ReadPump()

	client.SendMessage(&realtime.Message{
		Topic:     realtime.TopicStatusUpdated,
		Entity:    "status",
		Action:    "snapshot",
		Data:      h.status.Current(c.Request().Context()),
		Timestamp: time.Now().UTC(),
	})
	return nil
}

type posWebhookRequest struct {
	Occupied   int       `json:"occupied"`
	Capacity   int       `json:"capacity"`
	ObservedAt time.Time `json:"observedAt"`
}

// POSWebhook handles POST /api/webhooks/pos for installations where the
// point-of-sale pushes occupancy over HTTP instead of Kafka.
func (h *Handler) POSWebhook(c echo.Context) error {
	var req posWebhookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Capacity <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "capacity must be positive")
	}
	if req.Occupied < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "occupied must not be negative")
	}
	h.feed.Record(req.Occupied, req.Capacity, req.ObservedAt)
	h.status.Refresh(c.Request().Context())
	return c.NoContent(http.StatusAccepted)
}
