// Package digest formats the top aggregated events as a short
// human-readable weekend summary.
package digest

import (
	"fmt"
	"strings"

	"github.com/localpulse/city-events/internal/event"
)

const (
	// topCount is how many events make the digest.
	topCount = 3

	// descriptionPreviewLen is the rune cut applied to each entry's
	// description. The trailing "..." is appended unconditionally,
	// even when nothing was cut; downstream consumers rely on that
	// exact shape.
	descriptionPreviewLen = 100

	emptyMessage = "No events found for this weekend."
)

// Build renders the digest text for an event list. An empty list
// produces the fixed no-events message.
func Build(events []event.Event) string {
	if len(events) == 0 {
		return emptyMessage
	}

	top := events
	if len(top) > topCount {
		top = top[:topCount]
	}

	var b strings.Builder
	b.WriteString("🎉 Weekend Plan Digest 🎉\n\n")
	fmt.Fprintf(&b, "Here are the top %d events happening this weekend:\n\n", len(top))

	for i, evt := range top {
		fmt.Fprintf(&b, "%d. %s\n", i+1, evt.Title)
		fmt.Fprintf(&b, "   📅 %s\n", evt.DateTime)
		fmt.Fprintf(&b, "   📍 %s\n", evt.Location)
		fmt.Fprintf(&b, "   📝 %s...\n\n", preview(evt.Description))
	}

	b.WriteString("Have a great weekend exploring these amazing events! 🌟")
	return b.String()
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) > descriptionPreviewLen {
		runes = runes[:descriptionPreviewLen]
	}
	return string(runes)
}
