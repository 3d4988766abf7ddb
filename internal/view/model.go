package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SafalBhandari12/event/internal/clock"
	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/ui"
)

// Action is a link that works both as a plain navigation and as an htmx
// fragment swap. Fragment is empty for links that always load a full page.
type Action struct {
	Href     string
	Fragment string
}

type PageModel struct {
	Title      string
	Event      domain.Event
	Path       string
	Notice     string
	Dismiss    string
	Sections   map[string]bool
	Reveal     RevealModel
	Nav        NavModel
	Stats      []StatModel
	Schedule   ScheduleModel
	Tickets    TicketsModel
	Checkout   *CheckoutModel
	Gallery    GalleryModel
	MapSrc     string
	Sponsors   SponsorsModel
	Newsletter NewsletterModel
	Widgets    WidgetsModel
	Year       int
}

// RevealModel describes how sections fade in. Pages are rendered without a
// viewport, so every reveal takes the immediate path.
type RevealModel struct {
	Threshold string
	Revealed  bool
}

type NavModel struct {
	Brand    string
	Links    []NavLinkModel
	MenuOpen bool
	Toggle   string
	Density  string
}

type NavLinkModel struct {
	Label  string
	Href   string
	Active bool
}

type StatModel struct {
	Label   string
	Display string
	Value   int
	Suffix  string
	Delay   int
}

type ScheduleModel struct {
	MultiDay bool
	Days     []DayModel
	Rows     []RowModel
	Timeline []domain.ScheduleItem
}

type DayModel struct {
	Label  string
	Active bool
	Action Action
}

type RowModel struct {
	Item     domain.ScheduleItem
	Expanded bool
	Toggle   Action
}

type TicketsModel struct {
	Tiers []TierModel
}

type TierModel struct {
	Tier domain.TicketTier
	Buy  Action
}

type CheckoutModel struct {
	Tier       domain.TicketTier
	Form       ui.Buyer
	Errors     map[string]string
	Action     string
	Close      string
	Quantities []int
}

type GalleryModel struct {
	Tabs     []TabModel
	Items    []GalleryItemModel
	Lightbox *LightboxModel
}

type TabModel struct {
	Label  string
	Active bool
	Action Action
}

type GalleryItemModel struct {
	Image domain.GalleryImage
	Index int
	Open  Action
}

type LightboxModel struct {
	Image    domain.GalleryImage
	Position string
	Close    Action
	Prev     Action
	Next     Action
}

type SponsorsModel struct {
	Tiers   []SponsorTier
	Marquee []domain.Sponsor
}

type SponsorTier struct {
	Name     string
	Sponsors []domain.Sponsor
}

type NewsletterModel struct {
	Action string
	Email  string
	Error  string
	Notice string
}

// WidgetsModel holds the resting CSS transforms of the decorative widgets.
type WidgetsModel struct {
	EyeFace  string
	EyePupil string
	Disco    string
	Cube     string
}

// NewPage flattens a session into what the page template renders.
func NewPage(s *Session) PageModel {
	ev := s.Event
	m := PageModel{
		Title:      ev.Name,
		Event:      ev,
		Path:       s.Path(),
		Notice:     s.Query.Notice,
		Sections:   make(map[string]bool, len(ev.Sections)),
		Reveal:     newReveal(),
		Nav:        newNav(s),
		Stats:      newStats(ev.Stats),
		Schedule:   NewScheduleModel(s),
		Tickets:    newTickets(s),
		Checkout:   NewCheckoutModel(s),
		Gallery:    NewGalleryModel(s),
		MapSrc:     mapSrc(ev.Venue),
		Sponsors:   newSponsors(ev.Sponsors),
		Newsletter: NewNewsletterModel(s),
		Widgets:    newWidgets(),
		Year:       time.Now().Year(),
	}
	if m.Notice == "" {
		m.Notice = s.Checkout.Notice()
	}
	m.Dismiss = s.Path() + s.Query.Encode()
	for _, sec := range ev.Sections {
		m.Sections[sec.ID] = true
	}
	return m
}

func newReveal() RevealModel {
	r := ui.NewReveal(ui.DefaultRevealThreshold)
	r.Mount(nil)
	return RevealModel{
		Threshold: strconv.FormatFloat(r.Threshold(), 'f', -1, 64),
		Revealed:  r.Revealed(),
	}
}

func newNav(s *Session) NavModel {
	base := s.Path() + s.Query.WithMenu(false).Encode()
	links := s.Nav.Links()
	m := NavModel{
		Brand:    s.Event.Name,
		Links:    make([]NavLinkModel, 0, len(links)),
		MenuOpen: s.Nav.MenuOpen(),
		Toggle:   s.Path() + s.Query.WithMenu(!s.Nav.MenuOpen()).Encode(),
		Density:  s.Nav.Density().String(),
	}
	for _, l := range links {
		m.Links = append(m.Links, NavLinkModel{Label: l.Label, Href: base + l.Href, Active: l.Active})
	}
	return m
}

// Stats are rendered at their final values; the count-up runs client side.
func newStats(stats []domain.Stat) []StatModel {
	out := make([]StatModel, 0, len(stats))
	for _, st := range stats {
		final := ui.CountUpValue(st, time.Duration(st.Delay)*time.Millisecond+ui.CountUpDuration, ui.CountUpDuration)
		out = append(out, StatModel{
			Label:   st.Label,
			Display: ui.FormatStat(final, st.Suffix),
			Value:   st.Value,
			Suffix:  st.Suffix,
			Delay:   st.Delay,
		})
	}
	return out
}

func NewScheduleModel(s *Session) ScheduleModel {
	sch := s.Schedule
	m := ScheduleModel{MultiDay: len(sch.Days()) > 1, Timeline: sch.Timeline()}
	for _, d := range sch.Days() {
		m.Days = append(m.Days, DayModel{
			Label:  d.Label,
			Active: d.Number == sch.SelectedDay(),
			Action: s.action(s.Query.WithDay(d.Number), "schedule"),
		})
	}
	for _, it := range sch.Rows() {
		m.Rows = append(m.Rows, RowModel{
			Item:     it,
			Expanded: sch.Expanded(it.ID),
			Toggle:   s.action(s.Query.WithExpand(sch.ToggledIDs(it.ID)), "schedule"),
		})
	}
	return m
}

func newTickets(s *Session) TicketsModel {
	tiers := s.Checkout.Tiers()
	m := TicketsModel{Tiers: make([]TierModel, 0, len(tiers))}
	for _, t := range tiers {
		tm := TierModel{Tier: t}
		if t.Available {
			href := CheckoutPath(s.Event.Slug, t.ID)
			tm.Buy = Action{Href: href, Fragment: href}
		}
		m.Tiers = append(m.Tiers, tm)
	}
	return m
}

// NewCheckoutModel returns nil while no checkout is open.
func NewCheckoutModel(s *Session) *CheckoutModel {
	tier, ok := s.Checkout.OpenTier()
	if !ok {
		return nil
	}
	m := &CheckoutModel{
		Tier:   tier,
		Form:   s.Checkout.Form(),
		Errors: map[string]string{},
		Action: CheckoutPath(s.Event.Slug, tier.ID),
		Close:  s.Path() + s.Query.Encode() + "#tickets",
	}
	if errs := s.Checkout.Errors(); errs != nil {
		for k, v := range errs.Fields {
			m.Errors[k] = v
		}
	}
	for q := 1; q <= tier.QuantityLimit(); q++ {
		m.Quantities = append(m.Quantities, q)
	}
	return m
}

func CheckoutPath(slug, tierID string) string {
	return EventPath(slug) + "/checkout/" + tierID
}

func NewGalleryModel(s *Session) GalleryModel {
	g := s.Gallery
	var m GalleryModel
	for _, c := range g.Categories() {
		cat := c
		if cat == domain.AllCategories {
			cat = ""
		}
		m.Tabs = append(m.Tabs, TabModel{
			Label:  c,
			Active: c == g.Selected(),
			Action: s.action(s.Query.WithCategory(cat), "gallery"),
		})
	}
	images := g.Images()
	for _, i := range g.VisibleIndices() {
		m.Items = append(m.Items, GalleryItemModel{
			Image: images[i],
			Index: i,
			Open:  s.action(s.Query.WithPhoto(i), "gallery"),
		})
	}
	cur, ok := g.Current()
	if !ok {
		return m
	}
	open, _ := g.OpenIndex()
	prev, next, _ := g.Neighbors()
	m.Lightbox = &LightboxModel{
		Image:    cur,
		Position: fmt.Sprintf("%d / %d", open+1, len(images)),
		Close:    s.action(s.Query.WithPhoto(-1), "gallery"),
		Prev:     s.action(s.Query.WithPhoto(prev), "gallery"),
		Next:     s.action(s.Query.WithPhoto(next), "gallery"),
	}
	return m
}

func NewNewsletterModel(s *Session) NewsletterModel {
	m := NewsletterModel{
		Action: EventPath(s.Event.Slug) + "/newsletter",
		Email:  s.Newsletter.Email(),
		Notice: s.Newsletter.Notice(),
	}
	if errs := s.Newsletter.Errors(); errs != nil {
		m.Error = errs.Field(domain.FieldEmail)
	}
	return m
}

func newWidgets() WidgetsModel {
	unmeasured := func() (ui.Rect, bool) { return ui.Rect{}, false }
	clk := clock.NewSystem()
	eye := ui.NewEyeFollower(unmeasured, nil, clk)
	eye.Update(ui.Point{})
	disco := ui.NewDiscoBall(unmeasured, clk, nil)
	disco.Update(ui.Point{})
	cube := ui.NewCube(unmeasured, clk)
	cube.Update(ui.Point{})
	return WidgetsModel{
		EyeFace:  eye.Face().CSS(),
		EyePupil: eye.Pupil().CSS(),
		Disco:    disco.Transform().CSS(),
		Cube:     cube.Transform().CSS(),
	}
}

func mapSrc(v domain.Venue) string {
	if v.Lat == 0 && v.Lng == 0 {
		return v.MapEmbedURL
	}
	zoom := v.Zoom
	if zoom == 0 {
		zoom = 14
	}
	return fmt.Sprintf("https://maps.google.com/maps?q=%s,%s&z=%d&output=embed",
		strconv.FormatFloat(v.Lat, 'f', -1, 64), strconv.FormatFloat(v.Lng, 'f', -1, 64), zoom)
}

// newSponsors groups tiered sponsors in first-seen tier order. Sponsors
// without a tier scroll in the marquee.
func newSponsors(sponsors []domain.Sponsor) SponsorsModel {
	var m SponsorsModel
	index := map[string]int{}
	for _, sp := range sponsors {
		if sp.Tier == "" {
			m.Marquee = append(m.Marquee, sp)
			continue
		}
		i, ok := index[sp.Tier]
		if !ok {
			i = len(m.Tiers)
			index[sp.Tier] = i
			m.Tiers = append(m.Tiers, SponsorTier{Name: sp.Tier})
		}
		m.Tiers[i].Sponsors = append(m.Tiers[i].Sponsors, sp)
	}
	return m
}

func (s *Session) action(q Query, fragment string) Action {
	anchor := "#" + fragment
	return Action{
		Href:     s.Path() + q.Encode() + anchor,
		Fragment: s.Path() + "/" + fragment + q.Encode(),
	}
}
