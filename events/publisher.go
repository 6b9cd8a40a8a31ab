// Package events publishes order lifecycle events to Kafka. Publishing
// is optional: with no broker configured the publisher is nil and every
// method is a nil-safe no-op.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	kafkaGo "github.com/segmentio/kafka-go"

	"merch-store-backend/models"
)

const defaultOrdersTopic = "orders.placed"

// Publisher writes order-placed events to a Kafka topic.
type Publisher struct {
	writer *kafkaGo.Writer
}

// NewPublisherFromEnv builds a Publisher from KAFKA_BROKERS (comma
// separated) and KAFKA_ORDERS_TOPIC. Returns nil when no brokers are
// configured.
func NewPublisherFromEnv() *Publisher {
	brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))
	if brokers == "" {
		return nil
	}
	topic := os.Getenv("KAFKA_ORDERS_TOPIC")
	if topic == "" {
		topic = defaultOrdersTopic
	}
	return &Publisher{
		writer: &kafkaGo.Writer{
			Addr:     kafkaGo.TCP(strings.Split(brokers, ",")...),
			Topic:    topic,
			Balancer: &kafkaGo.LeastBytes{},
		},
	}
}

// OrderPlaced publishes the committed order, keyed by the first cart
// line's product id so events for one product land on one partition.
func (p *Publisher) OrderPlaced(ctx context.Context, order models.Order) error {
	if p == nil {
		return nil
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	var key []byte
	if len(order.Cart) > 0 {
		line := order.Cart[0]
		if line.ID != "" {
			key = []byte(line.ID)
		} else if line.ProductID != "" {
			key = []byte(line.ProductID)
		}
	}

	return p.writer.WriteMessages(ctx, kafkaGo.Message{
		Key:   key,
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
