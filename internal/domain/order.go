package domain

import "time"

// PurchaseIntent is a validated request to buy tickets. It is not a ticket:
// the actual transaction belongs to an external ticketing service.
type PurchaseIntent struct {
	ID             string
	EventSlug      string
	TierID         string
	Name           string
	Email          string
	Quantity       int
	IdempotencyKey string
	CreatedAt      time.Time
}

// Confirmation is what the buyer is shown after a successful submit.
type Confirmation struct {
	IntentID string
	TierName string
	Quantity int
	Message  string
	// Recorded is true when the intent was written to a repository.
	Recorded bool
}
