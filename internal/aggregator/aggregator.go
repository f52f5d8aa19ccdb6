// Package aggregator orchestrates the event sources: primary first,
// secondary as top-up, dedupe by title, synthetic fallback when
// everything came back empty.
package aggregator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/localpulse/city-events/internal/event"
	"github.com/localpulse/city-events/internal/metrics"
	"github.com/localpulse/city-events/internal/scraper"
)

const (
	// MaxEvents caps the aggregated result.
	MaxEvents = 10

	// topUpThreshold is the primary-source count below which the
	// secondary source is consulted.
	topUpThreshold = 5
)

// Aggregator runs the extraction pipeline across sources.
type Aggregator struct {
	primary   scraper.Source
	secondary scraper.Source
	log       *zap.Logger
	now       func() time.Time
}

// New creates an Aggregator over the default sources.
func New(log *zap.Logger) *Aggregator {
	return &Aggregator{
		primary:   scraper.NewEventbrite(),
		secondary: scraper.NewMeetup(),
		log:       log,
		now:       time.Now,
	}
}

// NewWithSources creates an Aggregator over explicit sources. Used by
// tests and anywhere the default scrapers are not wanted.
func NewWithSources(primary, secondary scraper.Source, log *zap.Logger) *Aggregator {
	return &Aggregator{
		primary:   primary,
		secondary: secondary,
		log:       log,
		now:       time.Now,
	}
}

// Aggregate collects events for a city: primary source first, then the
// secondary source if fewer than 5 events were found, deduplicated by
// normalized title with first occurrence winning. When both sources
// yield nothing the result is synthesized from fallback templates. At
// most MaxEvents records are returned, in collection order.
//
// Source failures are absorbed here: they are logged and counted but
// never surfaced to the caller.
func (a *Aggregator) Aggregate(ctx context.Context, city string) []event.Event {
	all := a.collect(ctx, a.primary, city)
	if len(all) < topUpThreshold {
		all = append(all, a.collect(ctx, a.secondary, city)...)
	}

	seen := make(map[string]bool, len(all))
	unique := make([]event.Event, 0, len(all))
	for _, evt := range all {
		key := evt.TitleKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, evt)
	}

	if len(unique) == 0 {
		a.log.Info("no events from any source, using fallback", zap.String("city", city))
		metrics.FallbackBatches.Inc()
		unique = FallbackEvents(city, a.now())
	}

	if len(unique) > MaxEvents {
		unique = unique[:MaxEvents]
	}
	return unique
}

func (a *Aggregator) collect(ctx context.Context, src scraper.Source, city string) []event.Event {
	events, err := src.Events(ctx, city)
	if err != nil {
		a.log.Warn("source scrape failed",
			zap.String("source", src.Name()),
			zap.String("city", city),
			zap.Error(err))
		metrics.ScrapeRequests.WithLabelValues(src.Name(), "error").Inc()
		return nil
	}
	metrics.ScrapeRequests.WithLabelValues(src.Name(), "ok").Inc()
	metrics.EventsExtracted.WithLabelValues(src.Name()).Add(float64(len(events)))
	a.log.Debug("source scrape done",
		zap.String("source", src.Name()),
		zap.String("city", city),
		zap.Int("events", len(events)))
	return events
}
