package view

import (
	"net/url"
	"slices"
	"strconv"
)

// Query is the interaction state carried in a page URL. Every link the page
// renders is built from the current Query so that following it changes only
// the one piece of state it is about.
type Query struct {
	Menu     bool
	Category string
	// Photo is the open lightbox image as a master index, or -1.
	Photo  int
	Day    int
	Expand []string
	Notice string
}

// ParseQuery reads the state parameters. Malformed numbers read as unset.
func ParseQuery(v url.Values) Query {
	q := Query{
		Menu:     v.Get("menu") == "open",
		Category: v.Get("category"),
		Photo:    -1,
		Expand:   v["expand"],
		Notice:   v.Get("notice"),
	}
	if n, err := strconv.Atoi(v.Get("photo")); err == nil && n >= 0 {
		q.Photo = n
	}
	if n, err := strconv.Atoi(v.Get("day")); err == nil {
		q.Day = n
	}
	return q
}

// Values encodes q. Default values are omitted, and notices are never carried
// forward.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Menu {
		v.Set("menu", "open")
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Photo >= 0 {
		v.Set("photo", strconv.Itoa(q.Photo))
	}
	if q.Day != 0 {
		v.Set("day", strconv.Itoa(q.Day))
	}
	for _, id := range q.Expand {
		v.Add("expand", id)
	}
	return v
}

// Encode returns "?..." or "" when q carries nothing.
func (q Query) Encode() string {
	if s := q.Values().Encode(); s != "" {
		return "?" + s
	}
	return ""
}

func (q Query) WithMenu(open bool) Query {
	q.Menu = open
	return q
}

// WithCategory switches the gallery filter, which also closes the lightbox.
func (q Query) WithCategory(category string) Query {
	q.Category = category
	q.Photo = -1
	return q
}

func (q Query) WithPhoto(index int) Query {
	q.Photo = index
	return q
}

func (q Query) WithDay(day int) Query {
	q.Day = day
	return q
}

func (q Query) WithExpand(ids []string) Query {
	q.Expand = slices.Clone(ids)
	return q
}
