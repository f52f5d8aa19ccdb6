package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/localpulse/city-events/internal/event"
)

const (
	eventbriteBase = "https://www.eventbrite.com"

	// eventbriteCardCap bounds how many cards are examined per attempt.
	// A card that fails extraction still consumes a slot.
	eventbriteCardCap = 8
)

// Eventbrite site markup varies by experiment bucket; selectors are
// ordered from the current data-testid shapes down to legacy classes.
var (
	eventbriteCardSelectors = []string{
		`article[data-testid="event-card"]`,
		`div[data-testid="event-card"]`,
		".search-event-card",
		".event-card",
		"article.event-card",
		"div.event-card",
		"[data-event-id]",
	}
	eventbriteTitleSelectors = []string{
		"h3 a",
		"h2 a",
		"h1 a",
		".event-title a",
		`[data-testid="event-title"]`,
		`a[data-testid="event-title-link"]`,
	}
	eventbriteDateSelectors = []string{
		"time",
		`[data-testid="event-datetime"]`,
		".event-date",
		".date-time",
		`span[data-testid="event-start-date"]`,
	}
	eventbriteLocationSelectors = []string{
		`[data-testid="event-location"]`,
		".event-location",
		".venue-name",
		`span[data-testid="event-venue"]`,
	}
	eventbriteDescSelectors = []string{
		".event-description",
		".summary",
		"p",
		`[data-testid="event-summary"]`,
	}
)

// Eventbrite is the primary event source.
type Eventbrite struct {
	fetcher *fetcher
	base    string
}

// NewEventbrite creates the Eventbrite source with the default fetch
// timeout.
func NewEventbrite() *Eventbrite {
	return &Eventbrite{
		fetcher: newFetcher(Timeout),
		base:    eventbriteBase,
	}
}

func (s *Eventbrite) Name() string { return "eventbrite" }

// SearchURL is the source-level fallback link used when a card carries
// no resolvable event URL.
func (s *Eventbrite) SearchURL(city string) string {
	return fmt.Sprintf("%s/d/%s/events/", s.base, citySlug(city))
}

// candidateURLs lists the listing URL shapes to try, in order.
func (s *Eventbrite) candidateURLs(city string) []string {
	return []string{
		fmt.Sprintf("%s/d/%s/events/", s.base, citySlug(city)),
		fmt.Sprintf("%s/d/%s/events/", s.base, strings.ToLower(city)),
		fmt.Sprintf("%s/e/search?q=%s", s.base, cityQuery(city)),
	}
}

// Events tries each candidate URL in order and stops as soon as one
// yields events. A URL that fails to fetch or parses to nothing just
// moves on to the next.
func (s *Eventbrite) Events(ctx context.Context, city string) ([]event.Event, error) {
	var lastErr error
	for _, url := range s.candidateURLs(city) {
		doc, err := s.fetcher.get(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		events := s.parse(doc, city, time.Now())
		if len(events) > 0 {
			return events, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("eventbrite: %w", lastErr)
	}
	return nil, nil
}

// parse extracts events from a listing document. Card container
// selectors are tried in order and the first selector matching at
// least one card wins.
func (s *Eventbrite) parse(doc *goquery.Document, city string, now time.Time) []event.Event {
	var cards *goquery.Selection
	for _, selector := range eventbriteCardSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			cards = sel
			break
		}
	}
	if cards == nil {
		return nil
	}

	if cards.Length() > eventbriteCardCap {
		cards = cards.Slice(0, eventbriteCardCap)
	}

	events := make([]event.Event, 0, eventbriteCardCap)
	cards.Each(func(i int, card *goquery.Selection) {
		if evt, ok := s.parseCard(card, city, now); ok {
			events = append(events, evt)
		}
	})
	return events
}

// parseCard extracts a single event card. Returns ok=false when the
// card has no usable title; every other missing field falls back to a
// placeholder.
func (s *Eventbrite) parseCard(card *goquery.Selection, city string, now time.Time) (event.Event, bool) {
	var title, eventURL string
	for _, selector := range eventbriteTitleSelectors {
		elem := card.Find(selector).First()
		if elem.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(elem.Text())
		if text == "" {
			continue
		}
		title = text
		if href, ok := elem.Attr("href"); ok && elem.Is("a") {
			eventURL = absoluteURL(href, s.base)
		}
		break
	}
	if title == "" {
		return event.Event{}, false
	}

	// A selector yielding the TBA placeholder doesn't stop the cascade;
	// a later selector may still hold the real date.
	dateTime := event.TBASentinel
	for _, selector := range eventbriteDateSelectors {
		text := strings.TrimSpace(card.Find(selector).First().Text())
		if text != "" && text != event.TBASentinel {
			dateTime = text
			break
		}
	}

	location := fmt.Sprintf("Downtown %s", city)
	if text := firstText(card, eventbriteLocationSelectors); text != "" {
		location = event.CleanLocation(text, city)
	}

	description := "No description available"
	for _, selector := range eventbriteDescSelectors {
		text := strings.TrimSpace(card.Find(selector).First().Text())
		if len(text) > 20 {
			description = event.TruncateDescription(text)
			break
		}
	}

	if eventURL == "" {
		eventURL = s.SearchURL(city)
	}

	return event.Event{
		Title:       title,
		DateTime:    dateTime,
		ParsedTime:  event.ParseDateTime(dateTime, now),
		Location:    location,
		Description: description,
		Category:    event.Categorize(title, description),
		EventURL:    eventURL,
	}, true
}
