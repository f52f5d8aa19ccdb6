package aggregator

import (
	"strings"
	"testing"
	"time"

	"github.com/localpulse/city-events/internal/event"
)

func TestFallbackEvents(t *testing.T) {
	now := time.Date(2030, 5, 10, 9, 30, 0, 0, time.UTC)
	events := FallbackEvents("San Francisco", now)

	if len(events) != 5 {
		t.Fatalf("expected 5 fallback events, got %d", len(events))
	}

	for i, evt := range events {
		if !strings.HasSuffix(evt.Title, " - San Francisco") {
			t.Errorf("fallback[%d] title not city-qualified: %q", i, evt.Title)
		}
		if evt.ParsedTime == nil {
			t.Fatalf("fallback[%d] has no resolved time", i)
		}
		if !evt.ParsedTime.After(now) {
			t.Errorf("fallback[%d] time %v is not in the future", i, evt.ParsedTime)
		}
		if evt.Description == "" || evt.EventURL == "" {
			t.Errorf("fallback[%d] is missing template fields", i)
		}

		// The date string must round-trip through the parser to the
		// same instant.
		reparsed := event.ParseDateTime(evt.DateTime, now)
		if reparsed == nil || !reparsed.Equal(*evt.ParsedTime) {
			t.Errorf("fallback[%d] date string %q does not round-trip (got %v, want %v)",
				i, evt.DateTime, reparsed, evt.ParsedTime)
		}
	}

	// First event: the day after tomorrow at 2 PM.
	want := time.Date(2030, 5, 12, 14, 0, 0, 0, time.UTC)
	if !events[0].ParsedTime.Equal(want) {
		t.Errorf("first fallback at %v, want %v", events[0].ParsedTime, want)
	}

	// URL templates use the slug form for Eventbrite and the escaped
	// form for Meetup.
	if events[0].EventURL != "https://www.eventbrite.com/d/san-francisco/events/" {
		t.Errorf("eventbrite fallback URL = %q", events[0].EventURL)
	}
	if events[1].EventURL != "https://www.meetup.com/find/?keywords=tech&location=San%20Francisco" {
		t.Errorf("meetup fallback URL = %q", events[1].EventURL)
	}
}
