// Package content loads event landing-page content from YAML documents.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"

	"github.com/SafalBhandari12/event/internal/domain"
)

//go:embed events/*.yaml
var embedded embed.FS

// LoadEmbedded loads the events compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "events")
	if err != nil {
		return nil, fmt.Errorf("open embedded events: %w", err)
	}
	return Load(sub)
}

// LoadDir loads every *.yaml / *.yml file in dir.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat content dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load decodes and validates every YAML document at the root of fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isYAML(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, errors.New("no event documents found")
	}

	events := make([]domain.Event, 0, len(names))
	seen := make(map[string]string, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		ev, err := Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if prev, dup := seen[ev.Slug]; dup {
			return nil, fmt.Errorf("%s: slug %q already defined in %s", name, ev.Slug, prev)
		}
		seen[ev.Slug] = name
		events = append(events, ev)
	}
	return NewCatalog(events), nil
}

// Decode parses and validates a single event document.
func Decode(raw []byte) (domain.Event, error) {
	var doc eventDoc
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return domain.Event{}, fmt.Errorf("decode yaml: %w", err)
	}
	if err := doc.validate(); err != nil {
		return domain.Event{}, err
	}
	return doc.toDomain(), nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// ValidationErrors collects every problem found in one document.
type ValidationErrors []string

func (v ValidationErrors) Error() string {
	return "invalid event document: " + strings.Join(v, "; ")
}

func (d eventDoc) validate() error {
	var problems ValidationErrors
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(d.Slug) == "" {
		addf("slug is required")
	} else if slugify(d.Slug) != d.Slug {
		addf("slug %q must be lowercase words joined by dashes", d.Slug)
	}
	if strings.TrimSpace(d.Name) == "" {
		addf("name is required")
	}

	sections := make(map[string]struct{}, len(d.Sections))
	for i, s := range d.Sections {
		if s.ID == "" {
			addf("sections[%d]: id is required", i)
			continue
		}
		if _, dup := sections[s.ID]; dup {
			addf("sections[%d]: duplicate id %q", i, s.ID)
		}
		sections[s.ID] = struct{}{}
	}

	days := make(map[int]struct{}, len(d.ScheduleDays))
	for i, day := range d.ScheduleDays {
		if day.Number < 1 {
			addf("schedule_days[%d]: number must be positive", i)
		}
		if _, dup := days[day.Number]; dup {
			addf("schedule_days[%d]: duplicate day %d", i, day.Number)
		}
		days[day.Number] = struct{}{}
	}
	rows := make(map[string]struct{}, len(d.Schedule))
	for i, s := range d.Schedule {
		if strings.TrimSpace(s.Title) == "" {
			addf("schedule[%d]: title is required", i)
		}
		if !domain.ScheduleCategory(strings.ToLower(strings.TrimSpace(s.Category))).Valid() {
			addf("schedule[%d]: unknown category %q", i, s.Category)
		}
		if len(d.ScheduleDays) == 0 {
			if s.Day != 0 {
				addf("schedule[%d]: day %d set but no schedule_days declared", i, s.Day)
			}
		} else if _, ok := days[s.Day]; !ok {
			addf("schedule[%d]: day %d is not declared", i, s.Day)
		}
		id := rowID(s.Day, s.Time, s.Title)
		if _, dup := rows[id]; dup {
			addf("schedule[%d]: duplicate row %q", i, id)
		}
		rows[id] = struct{}{}
	}

	for i, img := range d.Gallery {
		if img.Src == "" {
			addf("gallery[%d]: src is required", i)
		}
		if strings.TrimSpace(img.Category) == "" {
			addf("gallery[%d]: category is required", i)
		}
		if img.Category == domain.AllCategories {
			addf("gallery[%d]: category %q is reserved", i, domain.AllCategories)
		}
	}

	tiers := make(map[string]struct{}, len(d.Tickets))
	for i, t := range d.Tickets {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			addf("tickets[%d]: id is required", i)
		} else if _, dup := tiers[id]; dup {
			addf("tickets[%d]: duplicate id %q", i, id)
		}
		tiers[id] = struct{}{}
		if t.Name == "" {
			addf("tickets[%d]: name is required", i)
		}
		if t.Price == "" && t.Amount <= 0 {
			addf("tickets[%d]: either price or a positive amount is required", i)
		}
		if t.Currency != "" {
			if _, err := currency.ParseISO(t.Currency); err != nil {
				addf("tickets[%d]: invalid currency %q", i, t.Currency)
			}
		}
		if t.MaxQuantity < 0 {
			addf("tickets[%d]: max_quantity must not be negative", i)
		}
	}

	if len(problems) > 0 {
		return problems
	}
	return nil
}
