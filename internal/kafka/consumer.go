package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

// NewConsumer creates a new Kafka consumer for the given topic and group
func NewConsumer(brokers []string, topic, groupID string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{reader: reader}
}

// Start begins consuming change notifications from Kafka
func (c *Consumer) Start(handler func(change ChangeEvent)) {
	fmt.Println("🔄 Kafka consumer started...")

	for {
		msg, err := c.reader.ReadMessage(context.Background())
		if err != nil {
			log.Printf("❌ Error reading message: %v\n", err)
			continue
		}

		var change ChangeEvent
		if err := json.Unmarshal(msg.Value, &change); err != nil {
			log.Printf("⚠️ Failed to unmarshal message: %v\n", err)
			continue
		}

		log.Printf("📩 Received change notification: kind=%s event=%s", change.Kind, change.EventID)
		handler(change)
	}
}

// Close gracefully shuts down the Kafka reader
func (c *Consumer) Close() error {
	return c.reader.Close()
}
