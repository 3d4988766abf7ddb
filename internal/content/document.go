package content

import (
	"strconv"
	"strings"

	"github.com/SafalBhandari12/event/internal/domain"
)

// eventDoc mirrors one events/*.yaml file.
type eventDoc struct {
	Slug              string        `yaml:"slug"`
	Name              string        `yaml:"name"`
	Tagline           string        `yaml:"tagline"`
	Dates             string        `yaml:"dates"`
	Locale            string        `yaml:"locale"`
	About             []string      `yaml:"about"`
	Venue             venueDoc      `yaml:"venue"`
	Sections          []sectionDoc  `yaml:"sections"`
	Artists           []artistDoc   `yaml:"artists"`
	ScheduleDays      []dayDoc      `yaml:"schedule_days"`
	Schedule          []scheduleDoc `yaml:"schedule"`
	GalleryCategories []string      `yaml:"gallery_categories"`
	Gallery           []imageDoc    `yaml:"gallery"`
	Tickets           []tierDoc     `yaml:"tickets"`
	Sponsors          []sponsorDoc  `yaml:"sponsors"`
	Stats             []statDoc     `yaml:"stats"`
	Socials           []socialDoc   `yaml:"socials"`
	QuickLinks        []linkDoc     `yaml:"quick_links"`
	LegalLinks        []linkDoc     `yaml:"legal_links"`
}

type venueDoc struct {
	Name        string  `yaml:"name"`
	Address     string  `yaml:"address"`
	MapEmbedURL string  `yaml:"map_embed_url"`
	Lat         float64 `yaml:"lat"`
	Lng         float64 `yaml:"lng"`
	Zoom        int     `yaml:"zoom"`
}

type sectionDoc struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type artistDoc struct {
	Name  string `yaml:"name"`
	Genre string `yaml:"genre"`
	Time  string `yaml:"time"`
	Bio   string `yaml:"bio"`
	Image string `yaml:"image"`
}

type dayDoc struct {
	Number int    `yaml:"number"`
	Label  string `yaml:"label"`
}

type scheduleDoc struct {
	Day         int    `yaml:"day"`
	Time        string `yaml:"time"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

type imageDoc struct {
	Src          string `yaml:"src"`
	Alt          string `yaml:"alt"`
	Photographer string `yaml:"photographer"`
	Category     string `yaml:"category"`
}

type tierDoc struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Amount      int64    `yaml:"amount"`
	Currency    string   `yaml:"currency"`
	Symbol      string   `yaml:"symbol"`
	Features    []string `yaml:"features"`
	Highlighted bool     `yaml:"highlighted"`
	Available   bool     `yaml:"available"`
	MaxQuantity int      `yaml:"max_quantity"`
}

type sponsorDoc struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
	Tier string `yaml:"tier"`
}

type statDoc struct {
	Label  string `yaml:"label"`
	Value  int    `yaml:"value"`
	Suffix string `yaml:"suffix"`
	Delay  int    `yaml:"delay"`
}

type socialDoc struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`
}

type linkDoc struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

func (d eventDoc) toDomain() domain.Event {
	ev := domain.Event{
		Slug:    strings.TrimSpace(d.Slug),
		Name:    d.Name,
		Tagline: d.Tagline,
		Dates:   d.Dates,
		About:   d.About,
		Venue: domain.Venue{
			Name:        d.Venue.Name,
			Address:     d.Venue.Address,
			MapEmbedURL: d.Venue.MapEmbedURL,
			Lat:         d.Venue.Lat,
			Lng:         d.Venue.Lng,
			Zoom:        d.Venue.Zoom,
		},
	}
	for _, s := range d.Sections {
		ev.Sections = append(ev.Sections, domain.Section{ID: s.ID, Label: s.Label})
	}
	for _, a := range d.Artists {
		ev.Artists = append(ev.Artists, domain.Artist{
			Name:       a.Name,
			Genre:      a.Genre,
			TimeWindow: a.Time,
			Bio:        a.Bio,
			Image:      a.Image,
		})
	}
	for _, day := range d.ScheduleDays {
		ev.ScheduleDays = append(ev.ScheduleDays, domain.ScheduleDay{Number: day.Number, Label: day.Label})
	}
	for _, s := range d.Schedule {
		ev.Schedule = append(ev.Schedule, domain.ScheduleItem{
			ID:          rowID(s.Day, s.Time, s.Title),
			Time:        s.Time,
			Title:       s.Title,
			Description: s.Description,
			Category:    domain.ScheduleCategory(strings.ToLower(strings.TrimSpace(s.Category))),
			Day:         s.Day,
		})
	}
	for _, img := range d.Gallery {
		ev.Gallery = append(ev.Gallery, domain.GalleryImage{
			Src:          img.Src,
			Alt:          img.Alt,
			Photographer: img.Photographer,
			Category:     img.Category,
		})
	}
	ev.GalleryCategories = galleryCategories(d.GalleryCategories, ev.Gallery)
	for _, t := range d.Tickets {
		price := t.Price
		if price == "" {
			price = FormatPrice(d.Locale, t.Symbol, t.Amount)
		}
		ev.Tickets = append(ev.Tickets, domain.TicketTier{
			ID:          strings.TrimSpace(t.ID),
			Name:        t.Name,
			Price:       price,
			Amount:      t.Amount,
			Currency:    strings.ToUpper(t.Currency),
			Features:    t.Features,
			Highlighted: t.Highlighted,
			Available:   t.Available,
			MaxQuantity: t.MaxQuantity,
		})
	}
	for _, s := range d.Sponsors {
		ev.Sponsors = append(ev.Sponsors, domain.Sponsor{Name: s.Name, Logo: s.Logo, Tier: s.Tier})
	}
	for _, s := range d.Stats {
		ev.Stats = append(ev.Stats, domain.Stat{Label: s.Label, Value: s.Value, Suffix: s.Suffix, Delay: s.Delay})
	}
	for _, s := range d.Socials {
		ev.Socials = append(ev.Socials, domain.SocialLink{Name: s.Name, Icon: s.Icon, URL: s.URL})
	}
	for _, l := range d.QuickLinks {
		ev.QuickLinks = append(ev.QuickLinks, domain.Link{Label: l.Label, Href: l.Href})
	}
	for _, l := range d.LegalLinks {
		ev.LegalLinks = append(ev.LegalLinks, domain.Link{Label: l.Label, Href: l.Href})
	}
	return ev
}

// galleryCategories puts the All sentinel first. Without an explicit list the
// categories are derived from the images in declaration order.
func galleryCategories(declared []string, images []domain.GalleryImage) []string {
	out := []string{domain.AllCategories}
	seen := map[string]struct{}{domain.AllCategories: {}}
	add := func(c string) {
		c = strings.TrimSpace(c)
		if c == "" {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(declared) > 0 {
		for _, c := range declared {
			add(c)
		}
		return out
	}
	for _, img := range images {
		add(img.Category)
	}
	return out
}

func rowID(day int, time, title string) string {
	var b strings.Builder
	if day > 0 {
		b.WriteString("d")
		b.WriteString(strconv.Itoa(day))
		b.WriteByte('-')
	}
	b.WriteString(slugify(time))
	b.WriteByte('-')
	b.WriteString(slugify(title))
	return b.String()
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
