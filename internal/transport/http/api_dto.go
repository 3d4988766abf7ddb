package http

import (
	"time"

	"github.com/SafalBhandari12/event/internal/domain"
	"github.com/SafalBhandari12/event/internal/ui"
)

type eventSummary struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
	Dates   string `json:"dates"`
}

func newEventSummary(ev domain.Event) eventSummary {
	return eventSummary{Slug: ev.Slug, Name: ev.Name, Tagline: ev.Tagline, Dates: ev.Dates}
}

type eventResponse struct {
	eventSummary
	About             []string      `json:"about"`
	Venue             venueResponse `json:"venue"`
	Sections          []sectionDTO  `json:"sections"`
	Artists           []artistDTO   `json:"artists"`
	ScheduleDays      []scheduleDay `json:"schedule_days"`
	GalleryCategories []string      `json:"gallery_categories"`
	Tickets           []tierDTO     `json:"tickets"`
	Sponsors          []sponsorDTO  `json:"sponsors"`
	Stats             []statDTO     `json:"stats"`
	Socials           []socialDTO   `json:"socials"`
}

type venueResponse struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	MapEmbedURL string  `json:"map_embed_url,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Zoom        int     `json:"zoom"`
}

type sectionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type artistDTO struct {
	Name       string `json:"name"`
	Genre      string `json:"genre"`
	TimeWindow string `json:"time"`
	Bio        string `json:"bio"`
	Image      string `json:"image"`
}

type scheduleDay struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
}

type tierDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Amount      int64    `json:"amount,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
	Available   bool     `json:"available"`
	MaxQuantity int      `json:"max_quantity"`
}

type sponsorDTO struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
	Tier string `json:"tier,omitempty"`
}

type statDTO struct {
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Suffix string `json:"suffix,omitempty"`
	Delay  int    `json:"delay_ms"`
}

type socialDTO struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

func newEventResponse(ev domain.Event) eventResponse {
	resp := eventResponse{
		eventSummary:      newEventSummary(ev),
		About:             ev.About,
		GalleryCategories: ev.GalleryCategories,
		Venue: venueResponse{
			Name:        ev.Venue.Name,
			Address:     ev.Venue.Address,
			MapEmbedURL: ev.Venue.MapEmbedURL,
			Lat:         ev.Venue.Lat,
			Lng:         ev.Venue.Lng,
			Zoom:        ev.Venue.Zoom,
		},
	}
	for _, s := range ev.Sections {
		resp.Sections = append(resp.Sections, sectionDTO{ID: s.ID, Label: s.Label})
	}
	for _, a := range ev.Artists {
		resp.Artists = append(resp.Artists, artistDTO(a))
	}
	for _, d := range ev.ScheduleDays {
		resp.ScheduleDays = append(resp.ScheduleDays, scheduleDay{Number: d.Number, Label: d.Label})
	}
	for _, t := range ev.Tickets {
		resp.Tickets = append(resp.Tickets, tierDTO{
			ID:          t.ID,
			Name:        t.Name,
			Price:       t.Price,
			Amount:      t.Amount,
			Currency:    t.Currency,
			Features:    t.Features,
			Highlighted: t.Highlighted,
			Available:   t.Available,
			MaxQuantity: t.QuantityLimit(),
		})
	}
	for _, s := range ev.Sponsors {
		resp.Sponsors = append(resp.Sponsors, sponsorDTO(s))
	}
	for _, s := range ev.Stats {
		resp.Stats = append(resp.Stats, statDTO(s))
	}
	for _, s := range ev.Socials {
		resp.Socials = append(resp.Socials, socialDTO(s))
	}
	return resp
}

type galleryImageDTO struct {
	Index        int    `json:"index"`
	Src          string `json:"src"`
	Alt          string `json:"alt"`
	Photographer string `json:"photographer,omitempty"`
	Category     string `json:"category"`
}

type galleryResponse struct {
	Categories []string          `json:"categories"`
	Category   string            `json:"category"`
	Visible    []galleryImageDTO `json:"visible"`
	Open       *galleryImageDTO  `json:"open"`
	Prev       *int              `json:"prev"`
	Next       *int              `json:"next"`
}

func newGalleryResponse(g *ui.Gallery) galleryResponse {
	images := g.Images()
	resp := galleryResponse{
		Categories: g.Categories(),
		Category:   g.Selected(),
		Visible:    []galleryImageDTO{},
	}
	for _, i := range g.VisibleIndices() {
		resp.Visible = append(resp.Visible, newGalleryImage(i, images[i]))
	}
	if i, ok := g.OpenIndex(); ok {
		img := newGalleryImage(i, images[i])
		resp.Open = &img
		prev, next, _ := g.Neighbors()
		resp.Prev, resp.Next = &prev, &next
	}
	return resp
}

func newGalleryImage(i int, img domain.GalleryImage) galleryImageDTO {
	return galleryImageDTO{
		Index:        i,
		Src:          img.Src,
		Alt:          img.Alt,
		Photographer: img.Photographer,
		Category:     img.Category,
	}
}

type scheduleRow struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Day         int    `json:"day"`
}

type scheduleResponse struct {
	Day  int           `json:"day"`
	Days []scheduleDay `json:"days"`
	Rows []scheduleRow `json:"rows"`
}

func newScheduleResponse(s *ui.Schedule) scheduleResponse {
	resp := scheduleResponse{Day: s.SelectedDay(), Days: []scheduleDay{}, Rows: []scheduleRow{}}
	for _, d := range s.Days() {
		resp.Days = append(resp.Days, scheduleDay{Number: d.Number, Label: d.Label})
	}
	for _, it := range s.Rows() {
		resp.Rows = append(resp.Rows, scheduleRow{
			ID:          it.ID,
			Time:        it.Time,
			Title:       it.Title,
			Description: it.Description,
			Category:    string(it.Category),
			Day:         it.Day,
		})
	}
	return resp
}

type placeOrderRequest struct {
	Tier     string `json:"tier"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	ID        string    `json:"id"`
	Event     string    `json:"event"`
	Tier      string    `json:"tier"`
	Quantity  int       `json:"quantity"`
	Message   string    `json:"message"`
	Recorded  bool      `json:"recorded"`
	CreatedAt time.Time `json:"created_at"`
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscriptionResponse struct {
	ID        string    `json:"id"`
	Event     string    `json:"event"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
