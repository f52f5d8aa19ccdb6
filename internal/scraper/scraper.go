package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/localpulse/city-events/internal/event"
)

const (
	// Timeout bounds each individual fetch attempt. A source that does
	// not respond in time is abandoned for that URL only.
	Timeout = 15 * time.Second

	// UserAgent mimics a desktop browser; both sources serve stripped
	// markup to obvious bots.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Source extracts candidate events for a city from one external site.
type Source interface {
	// Name identifies the source in logs and metrics.
	Name() string

	// Events fetches and extracts events for the city. An error means
	// the whole source failed; callers treat that as an empty
	// contribution, never a fault.
	Events(ctx context.Context, city string) ([]event.Event, error)
}

// fetcher wraps the shared HTTP plumbing for all sources.
type fetcher struct {
	client *http.Client
}

func newFetcher(timeout time.Duration) *fetcher {
	return &fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// get fetches a URL with browser-like headers and returns a parsed
// document. Non-2xx responses are errors.
func (f *fetcher) get(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}

// firstText tries selectors in order against a card and returns the
// trimmed text of the first one that yields anything non-empty.
func firstText(card *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(card.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// absoluteURL anchors relative hrefs to the source's base origin.
func absoluteURL(href, base string) string {
	if strings.HasPrefix(href, "/") {
		return base + href
	}
	return href
}

// citySlug builds the lowercase dash-separated form sources use in
// their listing URLs.
func citySlug(city string) string {
	return strings.ReplaceAll(strings.ToLower(city), " ", "-")
}

// cityQuery builds the percent-escaped form used in query strings.
func cityQuery(city string) string {
	return strings.ReplaceAll(city, " ", "%20")
}
