package contracts

import "context"

// EventPublisher delivers schedule change events to downstream consumers.
// Delivery is best-effort; publish failures never fail the originating
// request.
type EventPublisher interface {
	Publish(ctx context.Context, action string, payload interface{}) error
}
