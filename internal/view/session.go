package view

import (
	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/ui"
)

// Session is one request's interaction state for an event page. The state
// machines are rebuilt from the URL on every request, and Query is rewritten
// to what they actually accepted so stale parameters drop out of every link.
type Session struct {
	Event      domain.Event
	Query      Query
	Nav        *ui.NavBar
	Gallery    *ui.Gallery
	Schedule   *ui.Schedule
	Checkout   *ui.Checkout
	Newsletter *ui.Newsletter
}

func Restore(ev domain.Event, q Query, opts ...ui.GalleryOption) *Session {
	s := &Session{
		Event:      ev,
		Nav:        ui.NewNavBar(ev.Sections),
		Gallery:    ui.NewGallery(ev.Gallery, ev.GalleryCategories, opts...),
		Schedule:   ui.NewSchedule(ev.Schedule, ev.ScheduleDays),
		Checkout:   ui.NewCheckout(ev.Tickets),
		Newsletter: ui.NewNewsletter(ev.Name),
	}

	if q.Menu {
		s.Nav.ToggleMenu()
	}

	s.Gallery.Restore(q.Category, q.Photo)
	q.Category = ""
	if sel := s.Gallery.Selected(); sel != domain.AllCategories {
		q.Category = sel
	}
	q.Photo = -1
	if i, ok := s.Gallery.OpenIndex(); ok {
		q.Photo = i
	}

	// An unknown day keeps the first declared one.
	_ = s.Schedule.SelectDay(q.Day)
	q.Day = s.Schedule.SelectedDay()
	for _, id := range q.Expand {
		if !s.Schedule.Expanded(id) {
			s.Schedule.ToggleExpand(id)
		}
	}
	q.Expand = s.Schedule.ExpandedIDs()

	s.Query = q
	return s
}

// Path is the canonical page URL of the session's event.
func (s *Session) Path() string {
	return EventPath(s.Event.Slug)
}

func EventPath(slug string) string {
	return "/events/" + slug
}
