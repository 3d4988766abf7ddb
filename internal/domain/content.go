package domain

// Artist is one lineup entry; display order is declaration order.
type Artist struct {
	Name       string
	Genre      string
	TimeWindow string
	Bio        string
	Image      string
}

type ScheduleCategory string

const (
	CategoryPerformance ScheduleCategory = "performance"
	CategoryBreak       ScheduleCategory = "break"
	CategorySpecial     ScheduleCategory = "special"
)

// Valid reports whether c is one of the known schedule categories.
func (c ScheduleCategory) Valid() bool {
	switch c {
	case CategoryPerformance, CategoryBreak, CategorySpecial:
		return true
	}
	return false
}

// ScheduleItem is a row of the running order. Day is zero for single-day events.
type ScheduleItem struct {
	ID          string
	Time        string
	Title       string
	Description string
	Category    ScheduleCategory
	Day         int
}

// ScheduleDay labels one selectable day of a multi-day schedule.
type ScheduleDay struct {
	Number int
	Label  string
}

// AllCategories is the gallery filter sentinel that disables filtering.
const AllCategories = "All"

type GalleryImage struct {
	Src          string
	Alt          string
	Photographer string
	Category     string
}

// TicketTier is a pricing bundle. Price is the display string.
type TicketTier struct {
	ID          string
	Name        string
	Price       string
	Amount      int64
	Currency    string
	Features    []string
	Highlighted bool
	Available   bool
	MaxQuantity int
}

// DefaultMaxQuantity bounds ticket quantity when a tier does not set one.
const DefaultMaxQuantity = 5

// QuantityLimit returns the maximum tickets per checkout for the tier.
func (t TicketTier) QuantityLimit() int {
	if t.MaxQuantity > 0 {
		return t.MaxQuantity
	}
	return DefaultMaxQuantity
}

// Sponsor is a partner logo. Tier is empty for marquee-only sponsors.
type Sponsor struct {
	Name string
	Logo string
	Tier string
}

// Stat is an animated counter shown in the stats band.
type Stat struct {
	Label  string
	Value  int
	Suffix string
	Delay  int // milliseconds after reveal
}

type Link struct {
	Label string
	Href  string
}

type SocialLink struct {
	Name string
	Icon string
	URL  string
}
