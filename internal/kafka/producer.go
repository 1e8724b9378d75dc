package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"ms-dashboard/internal/models"

	"github.com/segmentio/kafka-go"
)

// ChangeEvent is the message shape on the change topic. Every message
// means "the upstream collections moved, drop your snapshot".
type ChangeEvent struct {
	Kind    string       `json:"kind"`
	EventID string       `json:"event_id,omitempty"`
	Event   models.Event `json:"event,omitempty"`
}

type Producer struct {
	Writer *kafka.Writer
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers: brokers,
		Topic:   topic,
	})
	return &Producer{Writer: writer}
}

// PublishEventCreated announces an event created through the dashboard,
// so every instance (this one included) invalidates its snapshot.
func (p *Producer) PublishEventCreated(event models.Event) error {
	change := ChangeEvent{Kind: "event.created", EventID: event.ID, Event: event}

	msgBytes, err := json.Marshal(change)
	if err != nil {
		return err
	}

	fmt.Printf("Publishing to Kafka [event.created]: %s\n", event.ID)

	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Key:   []byte(event.ID),
			Value: msgBytes,
		},
	)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
