package newsletter

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sifiratik/fidan/internal/domain"
	"github.com/sifiratik/fidan/internal/events"
	"github.com/sifiratik/fidan/internal/middleware"
	"github.com/sifiratik/fidan/internal/pubsub"
)

// LogSink writes each subscription as a structured log record.
type LogSink struct{}

// Record implements domain.NewsletterSink.
func (LogSink) Record(ctx context.Context, sub domain.Subscription) error {
	middleware.FromContext(ctx).Info("Newsletter subscription",
		"subscription_id", sub.ID,
		"email", sub.Email,
	)
	return nil
}

// PublisherSink publishes each subscription as a newsletter.subscribed event.
type PublisherSink struct {
	publisher pubsub.Publisher
}

// NewPublisherSink creates a sink publishing on p.
func NewPublisherSink(p pubsub.Publisher) *PublisherSink {
	return &PublisherSink{publisher: p}
}

// Record implements domain.NewsletterSink.
func (s *PublisherSink) Record(ctx context.Context, sub domain.Subscription) error {
	return pubsub.Publish(ctx, s.publisher, events.NewsletterSubscribed, sub)
}

// MemorySink keeps subscriptions in memory. It backs the CLI and tests.
type MemorySink struct {
	mu     sync.Mutex
	subs   []domain.Subscription
	closed bool
}

// Record implements domain.NewsletterSink.
func (s *MemorySink) Record(_ context.Context, sub domain.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrSinkClosed
	}
	s.subs = append(s.subs, sub)
	return nil
}

// Subscriptions returns a copy of everything recorded so far.
func (s *MemorySink) Subscriptions() []domain.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Subscription(nil), s.subs...)
}

// Close makes further Record calls fail with domain.ErrSinkClosed.
func (s *MemorySink) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

// NewSink returns the sink named by NEWSLETTER_SINK.
func NewSink(name string, p pubsub.Publisher) domain.NewsletterSink {
	if name == "log" {
		return LogSink{}
	}
	if p == nil {
		slog.Warn("No publisher for newsletter bus sink, falling back to log sink")
		return LogSink{}
	}
	return NewPublisherSink(p)
}
