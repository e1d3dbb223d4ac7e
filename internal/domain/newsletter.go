package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validatorInstance is a package-level validator instance.
// Using a single instance is more efficient as it caches struct information.
var validatorInstance = validator.New()

// Subscription is an accepted newsletter sign-up.
type Subscription struct {
	ID    string    `json:"id"`
	Email string    `json:"email" validate:"required,email"`
	At    time.Time `json:"at"`
}

// NewSubscription trims and validates the address and stamps a new ID.
func NewSubscription(email string, now time.Time) (Subscription, error) {
	sub := Subscription{
		ID:    uuid.NewString(),
		Email: strings.TrimSpace(email),
		At:    now.UTC(),
	}
	if err := validatorInstance.Struct(sub); err != nil {
		return Subscription{}, fmt.Errorf("%w: %q", ErrInvalidEmail, sub.Email)
	}
	return sub, nil
}

// NewsletterSink receives accepted newsletter addresses. This allows for
// different implementations (e.g., a log record, an event on the bus).
type NewsletterSink interface {
	Record(ctx context.Context, sub Subscription) error
}
