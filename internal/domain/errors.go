package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrTierNotFound      = errors.New("ticket tier not found")
	ErrTierUnavailable   = errors.New("ticket tier unavailable")
	ErrUnknownCategory   = errors.New("unknown gallery category")
	ErrUnknownDay        = errors.New("unknown schedule day")
	ErrUnknownSection    = errors.New("unknown page section")
	ErrCheckoutClosed    = errors.New("checkout is not open")
	ErrInvalidID         = errors.New("invalid id")
	ErrIdempotencyReused = errors.New("idempotency key reused with different order")
	ErrDuplicateIntent   = errors.New("purchase intent already recorded")
	ErrAlreadySubscribed = errors.New("already subscribed")
)

// Field names used in ValidationError.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldQuantity = "quantity"
)

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a message for field, keeping the first one.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = msg
}

// Field returns the message for field, or "".
func (e *ValidationError) Field(field string) string {
	if e == nil {
		return ""
	}
	return e.Fields[field]
}

// OrNil returns nil when no field failed so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
