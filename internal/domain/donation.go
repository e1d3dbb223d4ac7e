package domain

import "time"

// DonationIntent records that a visitor pressed the donate button.
// No payment is taken; the intent is only reported to telemetry.
type DonationIntent struct {
	ID     string    `json:"id"`
	Amount int       `json:"amount"`
	At     time.Time `json:"at"`
}

// ExploreRequest records that a visitor asked to learn more about the programme.
type ExploreRequest struct {
	At time.Time `json:"at"`
}
