package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// OccupancyEvent is the payload the POS publishes whenever seated covers change.
type OccupancyEvent struct {
	Occupied   int       `json:"occupied"`
	Capacity   int       `json:"capacity"`
	ObservedAt time.Time `json:"observedAt"`
}

// OccupancyHandler receives decoded occupancy events.
type OccupancyHandler func(OccupancyEvent)

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

// Consume reads occupancy events until the context is cancelled. Messages
// that fail to decode are logged and skipped.
func (c *KafkaConsumer) Consume(ctx context.Context, handler OccupancyHandler) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			continue
		}
		event, err := DecodeOccupancyEvent(m.Value)
		if err != nil {
			slog.Warn("kafka occupancy decode failed",
				slog.String("topic", m.Topic),
				slog.Int64("offset", m.Offset),
				slog.Any("error", err),
			)
			continue
		}
		slog.Info("kafka occupancy consumed",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.Int("occupied", event.Occupied),
			slog.Int("capacity", event.Capacity),
		)
		handler(event)
	}
}

// DecodeOccupancyEvent parses and sanity-checks an occupancy payload.
func DecodeOccupancyEvent(raw []byte) (OccupancyEvent, error) {
	var event OccupancyEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return OccupancyEvent{}, err
	}
	if event.Capacity <= 0 {
		return OccupancyEvent{}, errors.New("occupancy event missing capacity")
	}
	if event.Occupied < 0 {
		event.Occupied = 0
	}
	if event.ObservedAt.IsZero() {
		event.ObservedAt = time.Now().UTC()
	}
	return event, nil
}

// StartOccupancyConsumer launches a consumer goroutine when brokers are
// configured; with no brokers the POS source simply never reports.
func StartOccupancyConsumer(ctx context.Context, brokers []string, groupID, topic string, handler OccupancyHandler) {
	if len(brokers) == 0 {
		slog.Info("kafka brokers not configured, occupancy consumer disabled")
		return
	}
	go func() {
		consumer := NewKafkaConsumer(brokers, groupID, topic)
		if err := consumer.Consume(ctx, handler); err != nil {
			slog.Error("kafka consumer stopped", slog.Any("error", err))
		}
	}()
}
