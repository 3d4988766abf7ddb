package ui

import "github.com/SafalBhandari12/event/internal/domain"

// NavigationScope decides which images Next and Prev walk through.
type NavigationScope int

const (
	// ScopeMaster walks the full image list regardless of the filter.
	ScopeMaster NavigationScope = iota
	// ScopeFiltered stays inside the selected category.
	ScopeFiltered
)

type GalleryOption func(*Gallery)

func WithNavigationScope(scope NavigationScope) GalleryOption {
	return func(g *Gallery) { g.scope = scope }
}

const lightboxClosed = -1

// Gallery is a category-filtered image grid with a lightbox. The open index
// always refers to the master list, never to the filtered view.
type Gallery struct {
	images     []domain.GalleryImage
	categories []string
	scope      NavigationScope

	selected string
	open     int
}

// NewGallery builds a gallery over images. categories is the filter bar;
// "All" is added in front when missing.
func NewGallery(images []domain.GalleryImage, categories []string, opts ...GalleryOption) *Gallery {
	cats := make([]string, 0, len(categories)+1)
	cats = append(cats, domain.AllCategories)
	for _, c := range categories {
		if c != domain.AllCategories {
			cats = append(cats, c)
		}
	}
	g := &Gallery{
		images:     images,
		categories: cats,
		selected:   domain.AllCategories,
		open:       lightboxClosed,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gallery) Categories() []string {
	return g.categories
}

func (g *Gallery) Selected() string {
	return g.selected
}

func (g *Gallery) Images() []domain.GalleryImage {
	return g.images
}

// SetCategory replaces the filter and closes the lightbox.
func (g *Gallery) SetCategory(category string) error {
	for _, c := range g.categories {
		if c == category {
			g.selected = category
			g.open = lightboxClosed
			return nil
		}
	}
	return domain.ErrUnknownCategory
}

// VisibleIndices returns the master indices shown under the current filter.
func (g *Gallery) VisibleIndices() []int {
	idx := make([]int, 0, len(g.images))
	for i, img := range g.images {
		if g.selected == domain.AllCategories || img.Category == g.selected {
			idx = append(idx, i)
		}
	}
	return idx
}

func (g *Gallery) Visible() []domain.GalleryImage {
	idx := g.VisibleIndices()
	out := make([]domain.GalleryImage, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.images[i])
	}
	return out
}

// Open opens the lightbox on the displayIndex-th visible image. It reports
// false, leaving the lightbox closed, when the index is out of range.
func (g *Gallery) Open(displayIndex int) bool {
	idx := g.VisibleIndices()
	if displayIndex < 0 || displayIndex >= len(idx) {
		return false
	}
	g.open = idx[displayIndex]
	return true
}

// OpenMaster opens the lightbox directly on a master index.
func (g *Gallery) OpenMaster(index int) bool {
	if index < 0 || index >= len(g.images) {
		return false
	}
	if g.scope == ScopeFiltered && !g.visible(index) {
		return false
	}
	g.open = index
	return true
}

func (g *Gallery) Close() {
	g.open = lightboxClosed
}

func (g *Gallery) IsOpen() bool {
	return g.open != lightboxClosed
}

// OpenIndex returns the master index shown in the lightbox.
func (g *Gallery) OpenIndex() (int, bool) {
	return g.open, g.IsOpen()
}

func (g *Gallery) Current() (domain.GalleryImage, bool) {
	if !g.IsOpen() {
		return domain.GalleryImage{}, false
	}
	return g.images[g.open], true
}

func (g *Gallery) Next() {
	if next, ok := g.step(1); ok {
		g.open = next
	}
}

func (g *Gallery) Prev() {
	if prev, ok := g.step(-1); ok {
		g.open = prev
	}
}

// Neighbors returns the indices Prev and Next would move to without moving.
func (g *Gallery) Neighbors() (prev, next int, ok bool) {
	prev, ok = g.step(-1)
	if !ok {
		return 0, 0, false
	}
	next, _ = g.step(1)
	return prev, next, true
}

// HandleKey applies the lightbox keyboard shortcuts. It reports whether the
// key did anything.
func (g *Gallery) HandleKey(key string) bool {
	if !g.IsOpen() {
		return false
	}
	switch key {
	case "Escape":
		g.Close()
	case "ArrowRight":
		g.Next()
	case "ArrowLeft":
		g.Prev()
	default:
		return false
	}
	return true
}

// Restore rebuilds state from request parameters. An unknown category falls
// back to "All"; a stale or out-of-range index leaves the lightbox closed.
func (g *Gallery) Restore(category string, open int) {
	if category == "" || g.SetCategory(category) != nil {
		_ = g.SetCategory(domain.AllCategories)
	}
	g.open = lightboxClosed
	if open >= 0 {
		g.OpenMaster(open)
	}
}

func (g *Gallery) step(delta int) (int, bool) {
	if !g.IsOpen() || len(g.images) == 0 {
		return 0, false
	}
	if g.scope == ScopeFiltered {
		idx := g.VisibleIndices()
		pos := 0
		for i, m := range idx {
			if m == g.open {
				pos = i
				break
			}
		}
		if len(idx) == 0 {
			return g.open, true
		}
		return idx[mod(pos+delta, len(idx))], true
	}
	return mod(g.open+delta, len(g.images)), true
}

func (g *Gallery) visible(index int) bool {
	return g.selected == domain.AllCategories || g.images[index].Category == g.selected
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
