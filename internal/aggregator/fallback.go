package aggregator

import (
	"fmt"
	"strings"
	"time"

	"github.com/localpulse/city-events/internal/event"
)

// fallbackDateLayout matches the parser's primary layout so fallback
// date strings round-trip through ParseDateTime.
const fallbackDateLayout = "Monday, January 2, 2006 at 3:04 PM"

// fallbackTemplates describe the synthetic events served when no live
// data is retrievable. Day offsets are counted from tomorrow and
// strictly increase, so resolved times ascend in declaration order.
var fallbackTemplates = []struct {
	title       string
	category    event.Category
	dayOffset   int
	hour        int
	minute      int
	location    string
	description string
	url         string
}{
	{
		title:     "Community Art Festival - %s",
		category:  event.CategoryArts,
		dayOffset: 1, hour: 14,
		location:    "Downtown %s",
		description: "Join us for a vibrant community art festival featuring local artists, live music, and food vendors. Experience the best of local creativity with interactive exhibits, workshops, and performances.",
		url:         "https://www.eventbrite.com/d/%s/events/",
	},
	{
		title:     "Tech Innovation Meetup - %s",
		category:  event.CategoryTechnology,
		dayOffset: 2, hour: 18,
		location:    "%s Convention Center",
		description: "Network with local tech professionals and learn about the latest trends in artificial intelligence, blockchain, and software development. Featuring keynote speakers and networking opportunities.",
		url:         "https://www.meetup.com/find/?keywords=tech&location=%s",
	},
	{
		title:     "Weekend Farmers Market - %s",
		category:  event.CategoryFood,
		dayOffset: 3, hour: 8,
		location:    "%s City Square",
		description: "Fresh produce, local crafts, and delicious food from local vendors every weekend. Support local farmers and artisans while enjoying live music and family-friendly activities.",
		url:         "https://www.eventbrite.com/d/%s/food--and--drink--events/",
	},
	{
		title:     "Live Jazz Night - %s",
		category:  event.CategoryMusic,
		dayOffset: 4, hour: 20,
		location:    "Blue Note Cafe, %s",
		description: "An evening of smooth jazz featuring local musicians and guest performers. Enjoy craft cocktails and appetizers while listening to the best jazz music in the city.",
		url:         "https://www.eventbrite.com/d/%s/music--events/",
	},
	{
		title:     "Business Networking Breakfast - %s",
		category:  event.CategoryNetworking,
		dayOffset: 5, hour: 7, minute: 30,
		location:    "%s Business Center",
		description: "Connect with local entrepreneurs, business owners, and professionals over breakfast. Exchange ideas, build partnerships, and grow your professional network.",
		url:         "https://www.meetup.com/find/?keywords=networking&location=%s",
	},
}

// FallbackEvents synthesizes the fixed demo events for a city,
// anchored to the day after now.
func FallbackEvents(city string, now time.Time) []event.Event {
	base := now.AddDate(0, 0, 1)
	slug := strings.ReplaceAll(strings.ToLower(city), " ", "-")
	query := strings.ReplaceAll(city, " ", "%20")

	events := make([]event.Event, 0, len(fallbackTemplates))
	for _, tmpl := range fallbackTemplates {
		day := base.AddDate(0, 0, tmpl.dayOffset)
		resolved := time.Date(day.Year(), day.Month(), day.Day(), tmpl.hour, tmpl.minute, 0, 0, now.Location())

		urlArg := slug
		if strings.Contains(tmpl.url, "meetup.com") {
			urlArg = query
		}

		events = append(events, event.Event{
			Title:       fmt.Sprintf(tmpl.title, city),
			DateTime:    resolved.Format(fallbackDateLayout),
			ParsedTime:  &resolved,
			Location:    fmt.Sprintf(tmpl.location, city),
			Description: tmpl.description,
			Category:    tmpl.category,
			EventURL:    fmt.Sprintf(tmpl.url, urlArg),
		})
	}
	return events
}
