package domain

import (
	"regexp"
	"strconv"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the basic shape check used by the site forms.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidatePurchase checks buyer details against a tier.
func ValidatePurchase(tier TicketTier, name, email string, quantity int) error {
	verr := &ValidationError{}
	if strings.TrimSpace(name) == "" {
		verr.Add(FieldName, "Please enter your full name")
	}
	if !ValidEmail(email) {
		verr.Add(FieldEmail, "Please enter a valid email address")
	}
	if quantity < 1 || quantity > tier.QuantityLimit() {
		verr.Add(FieldQuantity, "Please choose between 1 and "+strconv.Itoa(tier.QuantityLimit())+" tickets")
	}
	return verr.OrNil()
}

// ValidateSubscription checks a newsletter sign-up address.
func ValidateSubscription(email string) error {
	verr := &ValidationError{}
	if !ValidEmail(email) {
		verr.Add(FieldEmail, "Please enter a valid email address")
	}
	return verr.OrNil()
}
