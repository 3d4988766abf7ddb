package content

import (
	"sort"
	"sync/atomic"

	"github.com/SafalBhandari12/event/internal/domain"
)

// Catalog is an immutable set of events keyed by slug.
type Catalog struct {
	events map[string]domain.Event
	order  []string
}

// NewCatalog builds a catalog from already validated events.
func NewCatalog(events []domain.Event) *Catalog {
	c := &Catalog{events: make(map[string]domain.Event, len(events))}
	for _, ev := range events {
		c.events[ev.Slug] = ev
		c.order = append(c.order, ev.Slug)
	}
	sort.Strings(c.order)
	return c
}

// Event returns the event for slug or domain.ErrEventNotFound.
func (c *Catalog) Event(slug string) (domain.Event, error) {
	if c == nil {
		return domain.Event{}, domain.ErrEventNotFound
	}
	ev, ok := c.events[slug]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return ev, nil
}

// Events lists every event ordered by slug.
func (c *Catalog) Events() []domain.Event {
	if c == nil {
		return nil
	}
	out := make([]domain.Event, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.events[slug])
	}
	return out
}

// Slugs lists event slugs in order.
func (c *Catalog) Slugs() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Source hands out the current catalog snapshot.
type Source interface {
	Current() *Catalog
}

// Static is a Source that never changes.
type Static struct {
	catalog *Catalog
}

func NewStatic(c *Catalog) *Static {
	return &Static{catalog: c}
}

func (s *Static) Current() *Catalog {
	return s.catalog
}

// Swappable is a Source whose catalog can be replaced atomically.
type Swappable struct {
	current atomic.Pointer[Catalog]
}

func NewSwappable(c *Catalog) *Swappable {
	s := &Swappable{}
	s.current.Store(c)
	return s
}

func (s *Swappable) Current() *Catalog {
	return s.current.Load()
}

// Swap installs c and returns the previous catalog.
func (s *Swappable) Swap(c *Catalog) *Catalog {
	return s.current.Swap(c)
}
