package ui

import (
	"context"
	"strings"

	"github.com/SafalBhandari12/event/internal/domain"
)

// Subscriber records a newsletter sign-up.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) (domain.Subscription, error)
}

// Newsletter is the footer sign-up form.
type Newsletter struct {
	eventName string
	email     string
	errs      *domain.ValidationError
	notice    string
}

func NewNewsletter(eventName string) *Newsletter {
	return &Newsletter{eventName: eventName}
}

func (n *Newsletter) SetEmail(email string) {
	n.email = email
}

func (n *Newsletter) Email() string {
	return n.email
}

func (n *Newsletter) Errors() *domain.ValidationError {
	return n.errs
}

func (n *Newsletter) Notice() string {
	return n.notice
}

// Submit validates the address and hands it to sub. On success the field is
// cleared and a thank-you notice is set; on failure the address is kept.
func (n *Newsletter) Submit(ctx context.Context, sub Subscriber) error {
	email := strings.TrimSpace(n.email)
	if err := domain.ValidateSubscription(email); err != nil {
		n.errs, _ = err.(*domain.ValidationError)
		return err
	}
	if _, err := sub.Subscribe(ctx, email); err != nil {
		return err
	}
	n.errs = nil
	n.notice = SubscribedMessage(email, n.eventName)
	n.email = ""
	return nil
}

// SubscribedMessage is the thank-you text after a sign-up.
func SubscribedMessage(email, eventName string) string {
	return "Thank you for subscribing with " + email + "! We'll keep you updated on future " + eventName + " events."
}
