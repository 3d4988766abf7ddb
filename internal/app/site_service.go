package app

import (
	"context"

	"github.com/SafalBhandari12/event/internal/content"
	"github.com/SafalBhandari12/event/internal/domain"
)

// SiteService answers event lookups from the current content catalog.
type SiteService struct {
	source      content.Source
	defaultSlug string
}

func NewSiteService(source content.Source, defaultSlug string) *SiteService {
	return &SiteService{source: source, defaultSlug: defaultSlug}
}

func (s *SiteService) ListEvents(_ context.Context) ([]domain.Event, error) {
	return s.source.Current().Events(), nil
}

func (s *SiteService) GetEvent(_ context.Context, slug string) (domain.Event, error) {
	if slug == "" {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return s.source.Current().Event(slug)
}

// DefaultEvent is the event served at the site root. When the configured
// slug is missing the first event in the catalog is used.
func (s *SiteService) DefaultEvent(ctx context.Context) (domain.Event, error) {
	ev, err := s.GetEvent(ctx, s.defaultSlug)
	if err == nil {
		return ev, nil
	}
	events := s.source.Current().Events()
	if len(events) == 0 {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return events[0], nil
}

func (s *SiteService) DefaultSlug() string {
	return s.defaultSlug
}
