// Package filter narrows an event list by category, date range, and
// free-text search.
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/localpulse/city-events/internal/event"
)

// DateLayout is the calendar-date format accepted for range bounds.
const DateLayout = "2006-01-02"

// Filter represents event filtering criteria. The zero value matches
// everything.
type Filter struct {
	// Category, when set and not "all", must match exactly.
	Category string `json:"category,omitempty"`

	// DateFrom and DateTo bound the event's resolved time, inclusive.
	// Events without a resolved time fail any date bound.
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`

	// Search is a case-insensitive substring matched against title or
	// description.
	Search string `json:"search,omitempty"`
}

// Spec is the wire form of a filter, with dates as calendar-date
// strings.
type Spec struct {
	Category string `json:"category,omitempty"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	Search   string `json:"search,omitempty"`
}

// Parse validates a wire spec and builds the filter. Malformed dates
// and categories outside the known set are errors; "all" and empty
// category mean no category constraint.
func (s Spec) Parse() (*Filter, error) {
	f := &Filter{Search: s.Search}

	if s.Category != "" && s.Category != "all" {
		if !event.ValidCategory(s.Category) {
			return nil, fmt.Errorf("unknown category %q", s.Category)
		}
		f.Category = s.Category
	}

	if s.DateFrom != "" {
		t, err := time.Parse(DateLayout, s.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("parsing date_from: %w", err)
		}
		f.DateFrom = &t
	}

	if s.DateTo != "" {
		t, err := time.Parse(DateLayout, s.DateTo)
		if err != nil {
			return nil, fmt.Errorf("parsing date_to: %w", err)
		}
		// Inclusive upper bound: extend to end of day.
		t = t.Add(24*time.Hour - time.Second)
		f.DateTo = &t
	}

	return f, nil
}

// Matches checks an event against all active criteria.
func (f *Filter) Matches(evt *event.Event) bool {
	if f.Category != "" && string(evt.Category) != f.Category {
		return false
	}

	if f.DateFrom != nil {
		if evt.ParsedTime == nil || evt.ParsedTime.Before(*f.DateFrom) {
			return false
		}
	}

	if f.DateTo != nil {
		if evt.ParsedTime == nil || evt.ParsedTime.After(*f.DateTo) {
			return false
		}
	}

	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(evt.Title), term) &&
			!strings.Contains(strings.ToLower(evt.Description), term) {
			return false
		}
	}

	return true
}

// Apply returns the events matching all criteria, preserving input
// order. The result is never nil.
func (f *Filter) Apply(events []event.Event) []event.Event {
	filtered := make([]event.Event, 0, len(events))
	for i := range events {
		if f.Matches(&events[i]) {
			filtered = append(filtered, events[i])
		}
	}
	return filtered
}
