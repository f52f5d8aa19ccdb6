package server

import (
	"fmt"
	"strings"

	"github.com/localpulse/city-events/internal/event"
)

// indexPage is the minimal search shell. All real rendering happens
// client-side off the JSON routes; the category dropdown feeds the
// filter route.
const indexPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>City Events</title>
</head>
<body>
  <h1>Local Events Search</h1>
  <form method="post" action="/search">
    <input type="text" name="city" placeholder="Enter a city">
    <button type="submit">Search</button>
  </form>
  <select id="category-filter">
    <option value="all">all</option>
%s  </select>
</body>
</html>
`

var indexHTML = renderIndex()

func renderIndex() string {
	var options strings.Builder
	for _, cat := range event.Categories() {
		fmt.Fprintf(&options, "    <option value=%q>%s</option>\n", cat, cat)
	}
	return fmt.Sprintf(indexPage, options.String())
}
