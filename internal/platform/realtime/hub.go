package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
)

// Hub fans broadcast messages out to websocket clients by topic.
type Hub struct {
	topics map[string]map[*Client]struct{}
	mu     sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[*Client]struct{})}
}

// AttachClient registers the client for the given topics.
func (h *Hub) AttachClient(c *Client, topics []string) {
	h.mu.Lock()
	for _, topic := range topics {
		trimmed := strings.TrimSpace(topic)
		if trimmed == "" {
			continue
		}
		if h.topics[trimmed] == nil {
			h.topics[trimmed] = make(map[*Client]struct{})
		}
		h.topics[trimmed][c] = struct{}{}
		c.subscribed[trimmed] = struct{}{}
	}
	h.mu.Unlock()
	slog.Info("ws client attached", slog.String("clientId", c.id), slog.Any("topics", topics))
}

// DetachClient removes the client from every topic and closes it.
func (h *Hub) DetachClient(c *Client) {
	h.mu.Lock()
	h.detachLocked(c)
	h.mu.Unlock()
}

func (h *Hub) detachLocked(c *Client) {
	if c == nil {
		return
	}
	for topic := range c.subscribed {
		if subs, ok := h.topics[topic]; ok {
			delete(subs, c)
			if len(subs) == 0 {
				delete(h.topics, topic)
			}
		}
	}
	c.close()
	slog.Info("ws client detached", slog.String("clientId", c.id))
}

// Broadcast delivers the message to every client subscribed to its topic.
// Slow clients whose send buffer is full are detached rather than blocking
// the broadcast.
func (h *Hub) Broadcast(_ context.Context, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("broadcast marshal error", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	subs := h.topics[msg.Topic]
	clients := make([]*Client, 0, len(subs))
	for c := range subs {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.trySend(data) {
			slog.Warn("ws send buffer full", slog.String("clientId", c.id), slog.String("topic", msg.Topic))
			go h.DetachClient(c)
		}
	}
}

// SubscriberCount reports how many clients follow a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
