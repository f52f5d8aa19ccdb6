// Package calendar exports aggregated events as an iCalendar file.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/localpulse/city-events/internal/event"
)

// defaultDuration is assumed for events, which rarely publish an end
// time.
const defaultDuration = 2 * time.Hour

// Filename builds the download name for a city's calendar export.
func Filename(city string, now time.Time) string {
	slug := strings.ToLower(strings.ReplaceAll(city, " ", "_"))
	return fmt.Sprintf("events_%s_%s.ics", slug, now.Format("20060102"))
}

// Generate renders an iCalendar document with one VEVENT per event.
// Events without a resolved time are scheduled one week out so they
// still land on the calendar.
func Generate(city string, events []event.Event, now time.Time) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//City Events//city-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := formatICSTime(now.UTC())
	for _, evt := range events {
		start := now.AddDate(0, 0, 7)
		if evt.ParsedTime != nil {
			start = *evt.ParsedTime
		}
		end := start.Add(defaultDuration)

		ics.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&ics, "UID:%s@city-events\r\n", uid(evt.TitleKey()))
		fmt.Fprintf(&ics, "DTSTAMP:%s\r\n", stamp)
		fmt.Fprintf(&ics, "DTSTART:%s\r\n", formatICSTime(start))
		fmt.Fprintf(&ics, "DTEND:%s\r\n", formatICSTime(end))
		fmt.Fprintf(&ics, "SUMMARY:%s\r\n", escapeICS(evt.Title))
		fmt.Fprintf(&ics, "DESCRIPTION:%s\r\n", escapeICS(evt.Description))
		fmt.Fprintf(&ics, "LOCATION:%s\r\n", escapeICS(fmt.Sprintf("%s, %s", evt.Location, city)))
		fmt.Fprintf(&ics, "CATEGORIES:%s\r\n", strings.ToUpper(string(evt.Category)))
		if evt.EventURL != "" {
			fmt.Fprintf(&ics, "URL:%s\r\n", evt.EventURL)
		}
		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:OPAQUE\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// uid flattens a title key into an RFC 5545 safe identifier.
func uid(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// formatICSTime formats a time as an iCalendar UTC datetime.
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545.
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
