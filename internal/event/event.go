package event

import (
	"strings"
	"time"
)

// TBASentinel is the raw date string used when a source exposes no
// usable date for an event.
const TBASentinel = "Date/Time TBA"

// MaxDescriptionLen is the rune bound applied to scraped descriptions.
const MaxDescriptionLen = 200

// Event represents one scraped or synthesized local event.
type Event struct {
	Title       string     `json:"title"`
	DateTime    string     `json:"date_time"`
	ParsedTime  *time.Time `json:"parsed_datetime,omitempty"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	EventURL    string     `json:"event_url"`
}

// TitleKey returns the deduplication key for an event: the title
// lowercased and trimmed. Two events with the same key are considered
// the same event regardless of source.
func (e *Event) TitleKey() string {
	return strings.ToLower(strings.TrimSpace(e.Title))
}

// TruncateDescription bounds a description at MaxDescriptionLen runes,
// appending "..." when text was cut.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxDescriptionLen {
		return s
	}
	return string(runes[:MaxDescriptionLen]) + "..."
}
