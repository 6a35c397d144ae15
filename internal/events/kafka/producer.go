// File: internal/events/kafka/producer.go
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
)

// CloudEvent is the CloudEvents v1.0 envelope used on the auth topic.
type CloudEvent struct {
	SpecVersion     string      `json:"specversion"`
	Type            string      `json:"type"`
	Source          string      `json:"source"`
	Subject         string      `json:"subject,omitempty"`
	ID              string      `json:"id"`
	Time            time.Time   `json:"time"`
	DataContentType string      `json:"datacontenttype"`
	Data            interface{} `json:"data,omitempty"`
}

const (
	cloudEventSpecVersion     = "1.0"
	cloudEventDataContentType = "application/json"
)

// Producer publishes auth lifecycle events as CloudEvents.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	source   string
	logger   *zap.Logger
}

// NewProducer creates a Kafka producer. source identifies this service in
// the CloudEvent envelope, e.g. "/auth-service".
func NewProducer(brokers []string, topic string, source string, logger *zap.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    topic,
		source:   source,
		logger:   logger,
	}, nil
}

// Publish wraps payload in a CloudEvent and sends it to the auth topic,
// keyed by subject so events for one user stay ordered.
func (p *Producer) Publish(ctx context.Context, eventType string, subject string, payload interface{}) error {
	event := CloudEvent{
		SpecVersion:     cloudEventSpecVersion,
		Type:            eventType,
		Source:          p.source,
		Subject:         subject,
		ID:              uuid.NewString(),
		Time:            time.Now().UTC(),
		DataContentType: cloudEventDataContentType,
		Data:            payload,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal CloudEvent: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(subject),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send event %s: %w", eventType, err)
	}

	p.logger.Debug("Published auth event",
		zap.String("event_type", eventType),
		zap.String("subject", subject),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

// Close shuts down the underlying producer.
func (p *Producer) Close() error {
	return p.producer.Close()
}

var _ interfaces.EventPublisher = (*Producer)(nil)
