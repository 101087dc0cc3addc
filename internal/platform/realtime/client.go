package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	pingInterval  = 30 * time.Second
	pongWait      = 60 * time.Second
	writeDeadline = 5 * time.Second
	readLimit     = 1 << 16
)

// Client wraps a websocket connection with a buffered outbound queue.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	id         string
	subscribed map[string]struct{}
	closeOnce  sync.Once

	// mu guards closed so no send races the channel close during detach.
	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, buf int) *Client {
	if buf <= 0 {
		buf = 8
	}
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, buf),
		id:         uuid.NewString(),
		subscribed: make(map[string]struct{}),
	}
}

// ID returns the client's connection identifier.
func (c *Client) ID() string { return c.id }

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}

// trySend queues raw bytes unless the client is closed. A false return means
// the buffer is full and the client should be detached.
func (c *Client) trySend(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return true
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// SendMessage queues an envelope for delivery, detaching the client when the
// buffer is full.
func (c *Client) SendMessage(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("ws marshal error", slog.Any("error", err))
		return
	}
	if !c.trySend(data) {
		slog.Warn("ws send buffer full", slog.String("clientId", c.id))
		go c.hub.DetachClient(c)
	}
}

// WritePump drains the send queue and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				slog.Warn("ws write error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		case <-ping.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
				slog.Warn("ws ping error", slog.String("clientId", c.id), slog.Any("error", err))
				return
			}
		}
	}
}

// ReadPump consumes inbound frames to service pong handling and detects
// disconnects. The stream endpoints are publish-only, so payloads are dropped.
func (c *Client) ReadPump() {
	c.conn.SetReadLimit(readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	defer c.hub.DetachClient(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("ws read closed", slog.String("clientId", c.id), slog.Any("error", err))
			}
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}
