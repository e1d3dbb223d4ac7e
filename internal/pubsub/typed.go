package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Event[T] binds a topic name to a payload type and provides type-safe
// publishing and decoding.
type Event[T any] struct {
	name        string
	description string
}

// EventInfo describes a defined event for listings.
type EventInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var (
	definedMu sync.Mutex
	defined   = map[string]EventInfo{}
)

// NewEvent creates a typed event and records it in the list returned by Events.
// Events are usually defined at package level, so defining the same topic
// twice is a programming error and panics.
func NewEvent[T any](name, description string) Event[T] {
	definedMu.Lock()
	defer definedMu.Unlock()

	if _, ok := defined[name]; ok {
		panic(fmt.Sprintf("pubsub: event %q defined twice", name))
	}
	defined[name] = EventInfo{Name: name, Description: description}

	return Event[T]{name: name, description: description}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.name
}

// Description returns the human-readable purpose of the event.
func (e Event[T]) Description() string {
	return e.description
}

// Decode unmarshals a message payload into T.
func (e Event[T]) Decode(msg Message) (T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("failed to decode %s payload: %w", e.name, err)
	}
	return payload, nil
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", event.Name(), err)
	}

	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		Payload: data,
	})
}

// Events lists every defined event, sorted by name.
func Events() []EventInfo {
	definedMu.Lock()
	defer definedMu.Unlock()

	out := make([]EventInfo, 0, len(defined))
	for _, info := range defined {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
