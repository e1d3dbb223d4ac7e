// Package telemetry logs the site events published on the bus.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/sifiratik/fidan/internal/events"
	"github.com/sifiratik/fidan/internal/pubsub"
)

// Subscriber listens for site events and writes one structured log record per
// event. It also keeps per-topic counters for diagnostics.
type Subscriber struct {
	subscriber pubsub.Subscriber
	logger     *slog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// NewSubscriber creates a telemetry subscriber reading from sub.
func NewSubscriber(sub pubsub.Subscriber, logger *slog.Logger) *Subscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &Subscriber{
		subscriber: sub,
		logger:     logger.With("component", "telemetry"),
		counts:     make(map[string]int),
	}
}

// Start subscribes to every site event. Messages are handled in the
// background until ctx is canceled.
func (s *Subscriber) Start(ctx context.Context) error {
	handlers := map[string]pubsub.Handler{
		events.NewsletterSubscribed.Name(): s.handleNewsletter,
		events.DonationIntent.Name():       s.handleDonationIntent,
		events.DonationExplore.Name():      s.handleDonationExplore,
	}
	for topic, handler := range handlers {
		if err := s.subscriber.Subscribe(ctx, topic, handler); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
	}
	s.logger.Info("Telemetry subscriber started", "topics", len(handlers))
	return nil
}

// Run starts the subscriber and blocks until ctx is canceled.
func (s *Subscriber) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.logger.Info("Telemetry subscriber stopped")
	return nil
}

// Counts returns how many events of each topic have been handled.
func (s *Subscriber) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

func (s *Subscriber) count(topic string) {
	s.mu.Lock()
	s.counts[topic]++
	s.mu.Unlock()
}

func (s *Subscriber) handleNewsletter(ctx context.Context, msg pubsub.Message) error {
	sub, err := events.NewsletterSubscribed.Decode(msg)
	if err != nil {
		return err
	}
	s.count(msg.Topic)
	s.logger.InfoContext(ctx, "Newsletter subscription received",
		"topic", msg.Topic,
		"request_id", msg.Metadata[pubsub.MetaRequestID],
		"subscription_id", sub.ID,
		"email", sub.Email,
		"at", sub.At,
	)
	return nil
}

func (s *Subscriber) handleDonationIntent(ctx context.Context, msg pubsub.Message) error {
	intent, err := events.DonationIntent.Decode(msg)
	if err != nil {
		return err
	}
	s.count(msg.Topic)
	s.logger.InfoContext(ctx, "Donation intent",
		"topic", msg.Topic,
		"request_id", msg.Metadata[pubsub.MetaRequestID],
		"intent_id", intent.ID,
		"trees", intent.Amount,
		"at", intent.At,
	)
	return nil
}

func (s *Subscriber) handleDonationExplore(ctx context.Context, msg pubsub.Message) error {
	req, err := events.DonationExplore.Decode(msg)
	if err != nil {
		return err
	}
	s.count(msg.Topic)
	s.logger.InfoContext(ctx, "Programme explore requested",
		"topic", msg.Topic,
		"request_id", msg.Metadata[pubsub.MetaRequestID],
		"at", req.At,
	)
	return nil
}
