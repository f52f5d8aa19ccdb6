package event

import (
	"fmt"
	"strings"
)

// Label prefixes sources prepend to venue text.
var locationPrefixes = []string{"Location:", "Venue:", "Address:", "Where:"}

// Vocabulary that signals a source does not actually know the venue.
var unknownLocations = map[string]bool{
	"tba":             true,
	"to be announced": true,
	"online":          true,
	"virtual":         true,
}

// CleanLocation normalizes a raw location string scraped from markup.
// The result is never empty: missing or city-only strings become
// "Downtown <city>", and strings that are too short or match the
// unknown-venue vocabulary become "<city> Area".
func CleanLocation(raw, city string) string {
	location := strings.TrimSpace(raw)
	if location == "" || location == city {
		return fmt.Sprintf("Downtown %s", city)
	}

	for _, prefix := range locationPrefixes {
		if strings.HasPrefix(location, prefix) {
			location = strings.TrimSpace(location[len(prefix):])
			break
		}
	}

	if len(location) < 5 || unknownLocations[strings.ToLower(location)] || strings.EqualFold(location, city) {
		return fmt.Sprintf("%s Area", city)
	}

	return location
}
