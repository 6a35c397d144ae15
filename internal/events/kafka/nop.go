// File: internal/events/kafka/nop.go
package kafka

import (
	"context"

	"github.com/overskilled/backend-movie-api/internal/domain/interfaces"
)

// NopPublisher discards events. Used when Kafka is disabled and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, eventType string, subject string, payload interface{}) error {
	return nil
}

var _ interfaces.EventPublisher = NopPublisher{}
