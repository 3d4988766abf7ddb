package app

import (
	"context"
	"testing"

	"github.com/SafalBhandari12/event/internal/content"
	"github.com/SafalBhandari12/event/internal/domain"
)

func testSource() content.Source {
	return content.NewStatic(content.NewCatalog([]domain.Event{
		{Slug: "flow-party", Name: "Flow Party"},
		{Slug: "afro-vibes", Name: "Afro Vibes Festival"},
	}))
}

func TestSiteService_GetEvent(t *testing.T) {
	t.Parallel()

	svc := NewSiteService(testSource(), "flow-party")

	ev, err := svc.GetEvent(context.Background(), "afro-vibes")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if ev.Name != "Afro Vibes Festival" {
		t.Fatalf("expected Afro Vibes Festival, got %q", ev.Name)
	}

	if _, err := svc.GetEvent(context.Background(), "missing"); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
	if _, err := svc.GetEvent(context.Background(), ""); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestSiteService_ListEvents(t *testing.T) {
	t.Parallel()

	svc := NewSiteService(testSource(), "flow-party")
	events, err := svc.ListEvents(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(events) != 2 || events[0].Slug != "afro-vibes" {
		t.Fatalf("expected slug-ordered events, got %+v", events)
	}
}

func TestSiteService_DefaultEvent(t *testing.T) {
	t.Parallel()

	ev, err := NewSiteService(testSource(), "flow-party").DefaultEvent(context.Background())
	if err != nil || ev.Slug != "flow-party" {
		t.Fatalf("expected flow-party, got %q (%v)", ev.Slug, err)
	}

	ev, err = NewSiteService(testSource(), "gone").DefaultEvent(context.Background())
	if err != nil || ev.Slug != "afro-vibes" {
		t.Fatalf("expected fallback to first event, got %q (%v)", ev.Slug, err)
	}

	empty := content.NewStatic(content.NewCatalog(nil))
	if _, err := NewSiteService(empty, "flow-party").DefaultEvent(context.Background()); err != domain.ErrEventNotFound {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
