// Package events defines the site events carried on the in-memory bus.
package events

import (
	"github.com/sifiratik/fidan/internal/domain"
	"github.com/sifiratik/fidan/internal/pubsub"
)

var (
	// NewsletterSubscribed is published once per accepted newsletter address.
	NewsletterSubscribed = pubsub.NewEvent[domain.Subscription](
		"newsletter.subscribed",
		"A visitor submitted a valid address through the footer newsletter form",
	)

	// DonationIntent is published when the hero donate button is pressed.
	DonationIntent = pubsub.NewEvent[domain.DonationIntent](
		"donation.intent",
		"A visitor pressed the donate button with the selected tree count",
	)

	// DonationExplore is published when the visitor asks to explore the programme.
	DonationExplore = pubsub.NewEvent[domain.ExploreRequest](
		"donation.explore",
		"A visitor pressed the explore-the-programme button",
	)
)
