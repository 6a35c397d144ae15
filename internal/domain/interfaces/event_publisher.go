// File: internal/domain/interfaces/event_publisher.go
package interfaces

import "context"

// EventPublisher emits auth lifecycle events to the platform event bus.
// Publishing is best-effort from the caller's point of view: a failed
// publish is logged, never surfaced to the end user.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, subject string, payload interface{}) error
}
