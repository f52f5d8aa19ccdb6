package event

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Explicit layouts tried in order before falling back to fuzzy parsing.
// Ordering matters: the first layout that matches wins.
var dateTimeLayouts = []string{
	"Monday, January 2, 2006 at 3:04 PM",
	"January 2, 2006 at 3:04 PM",
	"01/02/2006 at 3:04 PM",
	"1/2/2006 at 3:04 PM",
	"2006-01-02 15:04:05",
	"Monday, Jan 2 at 3:04 PM",
}

// ParseDateTime resolves a free-text date string into a point in time.
// Returns nil for empty input, the TBA sentinel, and anything neither
// the explicit layouts nor the fuzzy parser can make sense of.
//
// Results are biased into the future: a resolved time strictly before
// now is rebuilt in next calendar year, on the assumption that listings
// showing a past date describe an event that recurs annually.
func ParseDateTime(raw string, now time.Time) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == TBASentinel {
		return nil
	}

	for _, layout := range dateTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		resolved := rollForward(parsed, now)
		return &resolved
	}

	parsed, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil
	}
	resolved := rollForward(parsed, now)
	return &resolved
}

// rollForward applies the future-bias policy. Yearless layouts parse to
// year 0 and first get the current year; anything still in the past is
// rebuilt in next year.
func rollForward(parsed, now time.Time) time.Time {
	if parsed.Year() == 0 {
		parsed = time.Date(now.Year(), parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location())
	}
	if parsed.Before(now) {
		parsed = time.Date(now.Year()+1, parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), parsed.Second(), 0, parsed.Location())
	}
	return parsed
}
