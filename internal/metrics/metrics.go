// Package metrics registers the Prometheus instruments for the event
// pipeline. Everything is registered once at init and exposed through
// the server's /metrics route.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ScrapeRequests counts whole-source scrape outcomes.
	ScrapeRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cityevents_scrape_requests_total",
		Help: "Source scrape attempts by outcome.",
	}, []string{"source", "status"})

	// EventsExtracted counts events each source contributed.
	EventsExtracted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cityevents_events_extracted_total",
		Help: "Events extracted per source.",
	}, []string{"source"})

	// FallbackBatches counts aggregations that had to synthesize demo
	// events because every source came back empty.
	FallbackBatches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cityevents_fallback_batches_total",
		Help: "Aggregations served from synthetic fallback events.",
	})

	// Searches counts search requests.
	Searches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cityevents_searches_total",
		Help: "Search requests handled.",
	})
)

func init() {
	prometheus.MustRegister(
		ScrapeRequests,
		EventsExtracted,
		FallbackBatches,
		Searches,
	)
}
