package scraper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/localpulse/city-events/internal/event"
)

const (
	meetupBase = "https://www.meetup.com"

	// meetupCardCap bounds how many class-matched cards are examined;
	// Meetup is only used to top up the primary source. A card that
	// fails extraction still consumes a slot.
	meetupCardCap = 6
)

// Meetup's markup carries no stable hooks, so candidate elements are
// matched by class-name patterns instead of precise selectors.
var (
	meetupCardClass     = regexp.MustCompile(`event|card`)
	meetupTitleClass    = regexp.MustCompile(`title|name|event`)
	meetupDateClass     = regexp.MustCompile(`date|time`)
	meetupLocationClass = regexp.MustCompile(`location|venue|address`)
	meetupDescClass     = regexp.MustCompile(`description|summary|excerpt`)
)

// Meetup is the secondary event source.
type Meetup struct {
	fetcher *fetcher
	base    string
}

// NewMeetup creates the Meetup source with the default fetch timeout.
func NewMeetup() *Meetup {
	return &Meetup{
		fetcher: newFetcher(Timeout),
		base:    meetupBase,
	}
}

func (s *Meetup) Name() string { return "meetup" }

// SearchURL is the source-level fallback link for cards without a
// resolvable event URL.
func (s *Meetup) SearchURL(city string) string {
	return fmt.Sprintf("%s/find/?keywords=&location=%s", s.base, cityQuery(city))
}

// Events fetches the Meetup find page for the city and extracts
// candidate event cards.
func (s *Meetup) Events(ctx context.Context, city string) ([]event.Event, error) {
	doc, err := s.fetcher.get(ctx, s.SearchURL(city))
	if err != nil {
		return nil, fmt.Errorf("meetup: %w", err)
	}
	return s.parse(doc, city, time.Now()), nil
}

func (s *Meetup) parse(doc *goquery.Document, city string, now time.Time) []event.Event {
	events := make([]event.Event, 0, meetupCardCap)

	examined := 0
	doc.Find("div, article").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if !classMatches(card, meetupCardClass) {
			return true
		}
		examined++
		if evt, ok := s.parseCard(card, city, now); ok {
			events = append(events, evt)
		}
		return examined < meetupCardCap
	})
	return events
}

func (s *Meetup) parseCard(card *goquery.Selection, city string, now time.Time) (event.Event, bool) {
	titleElem := findByClass(card, "h1, h2, h3, h4, a", meetupTitleClass)
	if titleElem == nil {
		titleElem = card.Find("a").First()
		if titleElem.Length() == 0 {
			return event.Event{}, false
		}
	}
	title := strings.TrimSpace(titleElem.Text())
	if title == "" {
		return event.Event{}, false
	}

	var eventURL string
	if href, ok := titleElem.Attr("href"); ok && titleElem.Is("a") {
		eventURL = absoluteURL(href, s.base)
	} else if link := titleElem.Find("a").First(); link.Length() > 0 {
		if href, ok := link.Attr("href"); ok {
			eventURL = absoluteURL(href, s.base)
		}
	}
	if eventURL == "" {
		eventURL = s.SearchURL(city)
	}

	dateTime := event.TBASentinel
	if elem := findByClass(card, "time, span, div", meetupDateClass); elem != nil {
		if text := strings.TrimSpace(elem.Text()); text != "" {
			dateTime = text
		}
	}

	locationText := city
	if elem := findByClass(card, "span, div", meetupLocationClass); elem != nil {
		if text := strings.TrimSpace(elem.Text()); text != "" {
			locationText = text
		}
	}

	description := "Meetup event - check Meetup.com for full details"
	if elem := findByClass(card, "p, div", meetupDescClass); elem != nil {
		if text := strings.TrimSpace(elem.Text()); len(text) > 20 {
			description = event.TruncateDescription(text)
		}
	}

	return event.Event{
		Title:       title,
		DateTime:    dateTime,
		ParsedTime:  event.ParseDateTime(dateTime, now),
		Location:    event.CleanLocation(locationText, city),
		Description: description,
		Category:    event.Categorize(title, description),
		EventURL:    eventURL,
	}, true
}

// classMatches reports whether an element's class attribute matches
// the pattern.
func classMatches(sel *goquery.Selection, pattern *regexp.Regexp) bool {
	class, ok := sel.Attr("class")
	return ok && pattern.MatchString(class)
}

// findByClass returns the first descendant matching the tag selector
// whose class attribute matches the pattern, or nil.
func findByClass(card *goquery.Selection, tags string, pattern *regexp.Regexp) *goquery.Selection {
	var found *goquery.Selection
	card.Find(tags).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if classMatches(sel, pattern) {
			found = sel
			return false
		}
		return true
	})
	return found
}
