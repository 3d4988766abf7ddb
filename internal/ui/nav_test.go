package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SafalBhandari12/event/internal/domain"
)

var testSections = []domain.Section{
	{ID: "hero", Label: "Home"},
	{ID: "about", Label: "About"},
	{ID: "lineup", Label: "Lineup"},
	{ID: "tickets", Label: "Tickets"},
}

func TestDensityFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		offset float64
		want   Density
	}{
		{offset: 0, want: Expanded},
		{offset: 40, want: Expanded},
		{offset: 40.5, want: Compact},
		{offset: 900, want: Compact},
	}
	for _, tt := range tests {
		if got := DensityFor(tt.offset, DefaultScrollThreshold); got != tt.want {
			t.Fatalf("offset %v: expected %v, got %v", tt.offset, tt.want, got)
		}
	}
}

func TestNavBar_ScrollSignal(t *testing.T) {
	t.Parallel()

	scroll := NewSignal(0.0)
	n := NewNavBar(testSections)
	release := n.Mount(scroll)
	defer release()

	assert.False(t, n.Scrolled())
	scroll.Set(120)
	assert.True(t, n.Scrolled())
	assert.Equal(t, "compact", n.Density().String())
	scroll.Set(10)
	assert.False(t, n.Scrolled())
}

func TestNavBar_OnIntersect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fractions map[string]float64
		want      string
	}{
		{name: "largest qualifying wins", fractions: map[string]float64{"about": 0.7, "lineup": 0.9}, want: "lineup"},
		{name: "tie goes to earlier section", fractions: map[string]float64{"tickets": 0.8, "about": 0.8}, want: "about"},
		{name: "below threshold keeps previous", fractions: map[string]float64{"about": 0.59, "lineup": 0.3}, want: "hero"},
		{name: "unregistered ignored", fractions: map[string]float64{"secret": 1}, want: "hero"},
		{name: "threshold is inclusive", fractions: map[string]float64{"tickets": 0.6}, want: "tickets"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := NewNavBar(testSections)
			assert.Equal(t, tt.want, n.OnIntersect(tt.fractions))
			assert.Equal(t, tt.want, n.Active())
		})
	}
}

func TestNavBar_ActiveSurvivesEmptyUpdate(t *testing.T) {
	t.Parallel()

	n := NewNavBar(testSections)
	n.OnIntersect(map[string]float64{"lineup": 0.95})
	n.OnIntersect(map[string]float64{})
	assert.Equal(t, "lineup", n.Active())
}

func TestNavBar_MenuAndLinks(t *testing.T) {
	t.Parallel()

	n := NewNavBar(testSections)
	n.ToggleMenu()
	require.True(t, n.MenuOpen())

	require.NoError(t, n.ActivateLink("tickets"))
	assert.False(t, n.MenuOpen())
	assert.Equal(t, "tickets", n.Active())

	n.ToggleMenu()
	assert.ErrorIs(t, n.ActivateLink("nowhere"), domain.ErrUnknownSection)
	assert.True(t, n.MenuOpen(), "failed activation leaves the menu alone")
	n.CloseMenu()
	assert.False(t, n.MenuOpen())

	want := []NavLink{
		{ID: "hero", Label: "Home", Href: "#hero"},
		{ID: "about", Label: "About", Href: "#about"},
		{ID: "lineup", Label: "Lineup", Href: "#lineup"},
		{ID: "tickets", Label: "Tickets", Href: "#tickets", Active: true},
	}
	if diff := cmp.Diff(want, n.Links()); diff != "" {
		t.Fatalf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestNavBar_Options(t *testing.T) {
	t.Parallel()

	n := NewNavBar(testSections, WithScrollThreshold(100), WithSectionThreshold(0.3))
	n.OnScroll(80)
	assert.False(t, n.Scrolled())
	assert.Equal(t, "about", n.OnIntersect(map[string]float64{"about": 0.35}))
}

func TestNavBar_NoSections(t *testing.T) {
	t.Parallel()

	n := NewNavBar(nil)
	assert.Equal(t, "", n.Active())
	assert.Equal(t, "", n.OnIntersect(map[string]float64{"hero": 1}))
	assert.Empty(t, n.Links())
}
