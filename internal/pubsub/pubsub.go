// Package pubsub is the in-process event bus of the site. Handlers publish
// typed events (see Event) and background subscribers such as telemetry
// consume them.
package pubsub

import (
	"context"
)

// MetaRequestID is the metadata key carrying the originating request ID.
const MetaRequestID = "request_id"

// Message is what travels on the bus: a topic, a JSON payload and string metadata.
type Message struct {
	Topic    string
	Payload  []byte
	Metadata map[string]string
}

// Handler processes one delivered message.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber receives messages.
type Subscriber interface {
	// Subscribe returns once the subscription is active; messages are handled
	// on another goroutine until ctx is canceled or the bus is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

type requestIDKey struct{}

// WithRequestID returns a copy of ctx whose published events carry id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored by WithRequestID, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
