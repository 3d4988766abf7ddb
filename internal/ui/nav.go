package ui

import "github.com/SafalBhandari12/event/internal/domain"

// Density is the visual mode of the navigation bar.
type Density int

const (
	Expanded Density = iota
	Compact
)

func (d Density) String() string {
	if d == Compact {
		return "compact"
	}
	return "expanded"
}

const (
	DefaultScrollThreshold  = 40.0
	DefaultSectionThreshold = 0.6
)

// DensityFor returns Compact once the page is scrolled past threshold pixels.
func DensityFor(offset, threshold float64) Density {
	if offset > threshold {
		return Compact
	}
	return Expanded
}

type NavOption func(*NavBar)

func WithScrollThreshold(px float64) NavOption {
	return func(n *NavBar) { n.scrollThreshold = px }
}

func WithSectionThreshold(fraction float64) NavOption {
	return func(n *NavBar) { n.sectionThreshold = fraction }
}

// NavBar tracks scroll density, the section currently in view and the
// mobile menu.
type NavBar struct {
	sections         []domain.Section
	scrollThreshold  float64
	sectionThreshold float64

	offset   float64
	active   string
	menuOpen bool
}

// NewNavBar registers sections in page order. The first one starts active.
func NewNavBar(sections []domain.Section, opts ...NavOption) *NavBar {
	n := &NavBar{
		sections:         sections,
		scrollThreshold:  DefaultScrollThreshold,
		sectionThreshold: DefaultSectionThreshold,
	}
	for _, opt := range opts {
		opt(n)
	}
	if len(sections) > 0 {
		n.active = sections[0].ID
	}
	return n
}

func (n *NavBar) OnScroll(offset float64) {
	n.offset = offset
}

func (n *NavBar) Density() Density {
	return DensityFor(n.offset, n.scrollThreshold)
}

func (n *NavBar) Scrolled() bool {
	return n.Density() == Compact
}

// OnIntersect takes the visible fraction of each section and makes the most
// visible qualifying one active. Ties go to the section registered first.
// When nothing qualifies the active section is kept.
func (n *NavBar) OnIntersect(fractions map[string]float64) string {
	best, bestFraction := "", 0.0
	for _, s := range n.sections {
		f, ok := fractions[s.ID]
		if !ok || f < n.sectionThreshold {
			continue
		}
		if best == "" || f > bestFraction {
			best, bestFraction = s.ID, f
		}
	}
	if best != "" {
		n.active = best
	}
	return n.active
}

func (n *NavBar) Active() string {
	return n.active
}

// SetActive marks id as the active section, as when a page is requested
// with a fragment.
func (n *NavBar) SetActive(id string) error {
	if !n.known(id) {
		return domain.ErrUnknownSection
	}
	n.active = id
	return nil
}

func (n *NavBar) MenuOpen() bool {
	return n.menuOpen
}

func (n *NavBar) ToggleMenu() {
	n.menuOpen = !n.menuOpen
}

func (n *NavBar) CloseMenu() {
	n.menuOpen = false
}

// ActivateLink handles a click on a section link: the section becomes
// active and the menu closes.
func (n *NavBar) ActivateLink(id string) error {
	if err := n.SetActive(id); err != nil {
		return err
	}
	n.CloseMenu()
	return nil
}

// NavLink is one rendered navigation entry.
type NavLink struct {
	ID     string
	Label  string
	Href   string
	Active bool
}

func (n *NavBar) Links() []NavLink {
	links := make([]NavLink, 0, len(n.sections))
	for _, s := range n.sections {
		links = append(links, NavLink{
			ID:     s.ID,
			Label:  s.Label,
			Href:   "#" + s.ID,
			Active: s.ID == n.active,
		})
	}
	return links
}

// Mount follows a scroll offset signal until released.
func (n *NavBar) Mount(scroll Readable[float64]) (release func()) {
	n.OnScroll(scroll.Get())
	return scroll.Subscribe(n.OnScroll)
}

func (n *NavBar) known(id string) bool {
	for _, s := range n.sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
