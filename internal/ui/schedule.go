package ui

import "github.com/SafalBhandari12/event/internal/domain"

// Schedule shows the rows of one selected day and lets any number of rows
// be expanded independently.
type Schedule struct {
	items    []domain.ScheduleItem
	days     []domain.ScheduleDay
	selected int
	expanded map[string]bool
}

// NewSchedule starts on the first declared day, or day 0 for a single-day
// schedule.
func NewSchedule(items []domain.ScheduleItem, days []domain.ScheduleDay) *Schedule {
	s := &Schedule{
		items:    items,
		days:     days,
		expanded: make(map[string]bool),
	}
	if len(days) > 0 {
		s.selected = days[0].Number
	}
	return s
}

func (s *Schedule) Days() []domain.ScheduleDay {
	return s.days
}

func (s *Schedule) SelectedDay() int {
	return s.selected
}

// SelectDay switches the displayed day. Expansion state is kept.
func (s *Schedule) SelectDay(day int) error {
	if len(s.days) == 0 {
		if day != 0 {
			return domain.ErrUnknownDay
		}
		s.selected = 0
		return nil
	}
	for _, d := range s.days {
		if d.Number == day {
			s.selected = day
			return nil
		}
	}
	return domain.ErrUnknownDay
}

// Rows returns the items of the selected day in declaration order.
func (s *Schedule) Rows() []domain.ScheduleItem {
	rows := make([]domain.ScheduleItem, 0, len(s.items))
	for _, it := range s.items {
		if s.onSelectedDay(it) {
			rows = append(rows, it)
		}
	}
	return rows
}

// Timeline is the compact strip of the selected day's times and titles.
func (s *Schedule) Timeline() []domain.ScheduleItem {
	return s.Rows()
}

// ToggleExpand flips one row. Unknown ids are ignored and reported false.
func (s *Schedule) ToggleExpand(id string) bool {
	if !s.known(id) {
		return false
	}
	if s.expanded[id] {
		delete(s.expanded, id)
	} else {
		s.expanded[id] = true
	}
	return true
}

func (s *Schedule) Expanded(id string) bool {
	return s.expanded[id]
}

// ExpandedIDs lists the expanded rows in declaration order.
func (s *Schedule) ExpandedIDs() []string {
	ids := make([]string, 0, len(s.expanded))
	for _, it := range s.items {
		if s.expanded[it.ID] {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// ToggledIDs is the expansion set that results from toggling id, without
// changing state. The HTML view uses it to build each row's link.
func (s *Schedule) ToggledIDs(id string) []string {
	ids := make([]string, 0, len(s.expanded)+1)
	for _, it := range s.items {
		on := s.expanded[it.ID]
		if it.ID == id {
			on = !on
		}
		if on {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

func (s *Schedule) onSelectedDay(it domain.ScheduleItem) bool {
	if len(s.days) == 0 {
		return true
	}
	return it.Day == s.selected
}

func (s *Schedule) known(id string) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}
