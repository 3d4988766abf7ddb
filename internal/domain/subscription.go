package domain

import "time"

// Subscription is a newsletter sign-up for an event series.
type Subscription struct {
	ID        string
	EventSlug string
	Email     string
	CreatedAt time.Time
}
