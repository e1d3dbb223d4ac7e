// Package newsletter accepts footer newsletter sign-ups and hands each
// accepted address to a sink.
package newsletter

import (
	"context"
	"fmt"
	"time"

	"github.com/sifiratik/fidan/internal/domain"
)

// Service validates newsletter submissions and records them.
type Service struct {
	sink domain.NewsletterSink
	now  func() time.Time
}

// NewService creates a Service writing to sink.
func NewService(sink domain.NewsletterSink) *Service {
	return &Service{sink: sink, now: time.Now}
}

// Subscribe validates the address and hands it to the sink exactly once.
// Invalid addresses return an error wrapping domain.ErrInvalidEmail and never
// reach the sink.
func (s *Service) Subscribe(ctx context.Context, email string) (domain.Subscription, error) {
	sub, err := domain.NewSubscription(email, s.now())
	if err != nil {
		return domain.Subscription{}, err
	}
	if err := s.sink.Record(ctx, sub); err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to record subscription: %w", err)
	}
	return sub, nil
}
