package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/SafalBhandari12/event/internal/domain"
)

// Buyer is the transient checkout form.
type Buyer struct {
	Name     string
	Email    string
	Quantity int
}

// OrderSubmitter hands a validated order to whatever sits behind the page.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, tier domain.TicketTier, buyer Buyer) (domain.Confirmation, error)
}

// Checkout is the ticket selector plus its modal form. At most one tier is
// open at a time.
type Checkout struct {
	tiers   []domain.TicketTier
	open    int
	hovered string
	form    Buyer
	errs    *domain.ValidationError
	notice  string
}

func NewCheckout(tiers []domain.TicketTier) *Checkout {
	return &Checkout{tiers: tiers, open: -1}
}

func (c *Checkout) Tiers() []domain.TicketTier {
	return c.tiers
}

// Hover records the tier under the pointer. It only affects styling.
func (c *Checkout) Hover(id string) {
	c.hovered = id
}

func (c *Checkout) Hovered() string {
	return c.hovered
}

// OpenCheckout opens the modal for a tier with a fresh form.
func (c *Checkout) OpenCheckout(id string) error {
	for i, t := range c.tiers {
		if t.ID != id {
			continue
		}
		if !t.Available {
			return domain.ErrTierUnavailable
		}
		c.open = i
		c.form = Buyer{Quantity: 1}
		c.errs = nil
		return nil
	}
	return domain.ErrTierNotFound
}

func (c *Checkout) IsOpen() bool {
	return c.open >= 0
}

func (c *Checkout) OpenTier() (domain.TicketTier, bool) {
	if !c.IsOpen() {
		return domain.TicketTier{}, false
	}
	return c.tiers[c.open], true
}

func (c *Checkout) Form() Buyer {
	return c.form
}

func (c *Checkout) SetName(name string) {
	c.form.Name = name
}

func (c *Checkout) SetEmail(email string) {
	c.form.Email = email
}

func (c *Checkout) SetQuantity(q int) {
	c.form.Quantity = q
}

// Errors returns the field messages from the last rejected submit.
func (c *Checkout) Errors() *domain.ValidationError {
	return c.errs
}

// Notice is the confirmation shown after a successful submit.
func (c *Checkout) Notice() string {
	return c.notice
}

// Close dismisses the modal and discards the form.
func (c *Checkout) Close() {
	c.open = -1
	c.form = Buyer{}
	c.errs = nil
}

// Submit validates the form and passes it to sub. A validation failure keeps
// the modal open with field errors. Any other submitter error also keeps the
// form so the buyer can retry.
func (c *Checkout) Submit(ctx context.Context, sub OrderSubmitter) (domain.Confirmation, error) {
	tier, ok := c.OpenTier()
	if !ok {
		return domain.Confirmation{}, domain.ErrCheckoutClosed
	}

	c.form.Name = strings.TrimSpace(c.form.Name)
	c.form.Email = strings.TrimSpace(c.form.Email)
	if err := domain.ValidatePurchase(tier, c.form.Name, c.form.Email, c.form.Quantity); err != nil {
		c.errs, _ = err.(*domain.ValidationError)
		return domain.Confirmation{}, err
	}

	conf, err := sub.SubmitOrder(ctx, tier, c.form)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.errs = verr
		}
		return domain.Confirmation{}, err
	}

	c.Close()
	c.notice = conf.Message
	if c.notice == "" {
		c.notice = ReservationMessage(tier.Name)
	}
	return conf, nil
}

// ReservationMessage is the buyer-facing confirmation text for a tier.
func ReservationMessage(tierName string) string {
	return "Thank you! Your " + tierName + " ticket(s) have been reserved. Check your email for confirmation."
}
