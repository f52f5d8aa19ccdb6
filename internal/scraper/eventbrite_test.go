package scraper

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/localpulse/city-events/internal/event"
)

func loadFixture(t *testing.T, name string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile("testdata/fixtures/" + name)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func TestEventbriteParse(t *testing.T) {
	doc := loadFixture(t, "eventbrite_cards.html")
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	s := NewEventbrite()
	events := s.parse(doc, "Detroit", now)

	// 10 cards on the page; only the first 8 are examined, and the
	// titleless sponsored placement burns one of those slots.
	if len(events) != 7 {
		t.Fatalf("expected 7 events (8-card window, one skip), got %d", len(events))
	}
	if last := events[len(events)-1]; last.Title != "Filler Event Five" {
		t.Errorf("cards past the window must not be extracted, last = %q", last.Title)
	}

	first := events[0]
	if first.Title != "Downtown Jazz Night" {
		t.Errorf("title = %q, want %q", first.Title, "Downtown Jazz Night")
	}
	if first.EventURL != "https://www.eventbrite.com/e/downtown-jazz-night-tickets-1001" {
		t.Errorf("relative link not anchored: %q", first.EventURL)
	}
	if first.DateTime != "Saturday, August 31, 2030 at 8:00 PM" {
		t.Errorf("date_time = %q", first.DateTime)
	}
	if first.ParsedTime == nil {
		t.Error("expected parsed time for explicit date")
	} else if got, want := *first.ParsedTime, time.Date(2030, 8, 31, 20, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("parsed time = %v, want %v", got, want)
	}
	if first.Location != "Detroit Area" {
		t.Errorf("TBA venue should clean to placeholder, got %q", first.Location)
	}
	if first.Category != event.CategoryMusic {
		t.Errorf("category = %q, want music", first.Category)
	}

	second := events[1]
	if second.EventURL != "https://www.eventbrite.com/e/startup-pitch-night-tickets-1002" {
		t.Errorf("absolute link should pass through, got %q", second.EventURL)
	}
	if second.Location != "The Majestic Theatre" {
		t.Errorf("location = %q", second.Location)
	}
	if !strings.HasPrefix(second.Description, "Watch ten local founders") {
		t.Errorf("description not extracted: %q", second.Description)
	}

	// Cards without a title are skipped, not aborted: the fillers after
	// the sponsored placement still come through.
	third := events[2]
	if third.Title != "Filler Event One" {
		t.Errorf("expected malformed card to be skipped, got %q", third.Title)
	}
	if third.DateTime != event.TBASentinel {
		t.Errorf("missing date should use sentinel, got %q", third.DateTime)
	}
	if third.ParsedTime != nil {
		t.Error("sentinel date should not resolve")
	}
	if third.Location != "Downtown Detroit" {
		t.Errorf("missing location should default, got %q", third.Location)
	}
	if third.Description != "No description available" {
		t.Errorf("missing description should default, got %q", third.Description)
	}
	if third.EventURL != "https://www.eventbrite.com/d/detroit/events/" {
		t.Errorf("missing link should fall back to search URL, got %q", third.EventURL)
	}
}

func TestEventbriteParseLegacySelectors(t *testing.T) {
	// No data-testid markup at all; the cascade has to fall through to
	// the legacy class selectors.
	html := `<html><body>
		<div class="event-card">
			<h2><a href="/e/gallery-opening-3001">Spring Gallery Opening</a></h2>
			<span class="event-date">April 12, 2031 at 7:00 PM</span>
			<span class="event-location">Museum of Contemporary Art</span>
		</div>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}

	s := NewEventbrite()
	events := s.parse(doc, "Detroit", time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC))

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	evt := events[0]
	if evt.Title != "Spring Gallery Opening" {
		t.Errorf("title = %q", evt.Title)
	}
	if evt.DateTime != "April 12, 2031 at 7:00 PM" {
		t.Errorf("date_time = %q", evt.DateTime)
	}
	if evt.Location != "Museum of Contemporary Art" {
		t.Errorf("location = %q", evt.Location)
	}
	if evt.Category != event.CategoryArts {
		t.Errorf("category = %q, want arts", evt.Category)
	}
}

func TestEventbriteParseDateCascadePastPlaceholder(t *testing.T) {
	// The <time> element only carries the TBA placeholder; the cascade
	// keeps going and picks up the real date from a later selector.
	html := `<html><body>
		<div class="event-card">
			<h2><a href="/e/food-truck-rally-4001">Food Truck Rally</a></h2>
			<time>Date/Time TBA</time>
			<span class="event-date">June 14, 2031 at 11:00 AM</span>
		</div>
		<div class="event-card">
			<h2><a href="/e/trivia-night-4002">Trivia Night</a></h2>
			<time>Date/Time TBA</time>
		</div>
	</body></html>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}

	s := NewEventbrite()
	events := s.parse(doc, "Detroit", time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC))

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if got := events[0].DateTime; got != "June 14, 2031 at 11:00 AM" {
		t.Errorf("date_time = %q, want the later selector's value", got)
	}
	if got := events[1].DateTime; got != event.TBASentinel {
		t.Errorf("date_time = %q, want the placeholder when no selector has a real date", got)
	}
}

func TestEventbriteParseNoCards(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}

	s := NewEventbrite()
	if events := s.parse(doc, "Detroit", time.Now()); len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestEventbriteCandidateURLs(t *testing.T) {
	s := NewEventbrite()
	urls := s.candidateURLs("New York")

	want := []string{
		"https://www.eventbrite.com/d/new-york/events/",
		"https://www.eventbrite.com/d/new york/events/",
		"https://www.eventbrite.com/e/search?q=New%20York",
	}
	if len(urls) != len(want) {
		t.Fatalf("expected %d candidate URLs, got %d", len(want), len(urls))
	}
	for i := range want {
		if urls[i] != want[i] {
			t.Errorf("url[%d] = %q, want %q", i, urls[i], want[i])
		}
	}
}
