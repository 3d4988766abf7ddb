// Package ui holds the interaction state of the event landing page: reveal
// latches, the navigation bar, gallery and lightbox, schedule viewer, ticket
// checkout, newsletter form and the pointer-driven decorative widgets.
//
// Every type here is a plain state machine driven by discrete events. None of
// them are safe for concurrent mutation; each instance belongs to a single
// owner (one request or one mounted widget). Signal and Lifetime are the
// exceptions and may be shared.
package ui
