package domain

// Event is the full content configuration for one landing page.
// Everything here is static: the UI only selects and filters it.
type Event struct {
	Slug              string
	Name              string
	Tagline           string
	Dates             string
	About             []string
	Venue             Venue
	Sections          []Section
	Artists           []Artist
	ScheduleDays      []ScheduleDay
	Schedule          []ScheduleItem
	GalleryCategories []string
	Gallery           []GalleryImage
	Tickets           []TicketTier
	Sponsors          []Sponsor
	Stats             []Stat
	Socials           []SocialLink
	QuickLinks        []Link
	LegalLinks        []Link
}

// Section is a named in-page anchor the navigation bar links to.
type Section struct {
	ID    string
	Label string
}

// Venue describes where the event happens, including the embedded map.
type Venue struct {
	Name        string
	Address     string
	MapEmbedURL string
	Lat         float64
	Lng         float64
	Zoom        int
}

// Tier returns the ticket tier with the given id.
func (e Event) Tier(id string) (TicketTier, bool) {
	for _, t := range e.Tickets {
		if t.ID == id {
			return t, true
		}
	}
	return TicketTier{}, false
}

// MultiDay reports whether the schedule is split into selectable days.
func (e Event) MultiDay() bool {
	return len(e.ScheduleDays) > 1
}
