package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchObserver records engine telemetry: query outcomes and latency, index
// rebuilds and result-cache efficiency.
type SearchObserver struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration prometheus.Histogram
	corpusCards   prometheus.Gauge
	rebuildsTotal prometheus.Counter
	rebuildTime   prometheus.Histogram
	cacheTotal    *prometheus.CounterVec
}

// NewSearchObserver creates the search collectors and registers them with reg.
func NewSearchObserver(reg prometheus.Registerer) (*SearchObserver, error) {
	o := &SearchObserver{
		queriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "search_queries_total",
				Help:      "Total number of searches by outcome",
			},
			[]string{"outcome"},
		),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Search duration in seconds",
			Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.1},
		}),
		corpusCards: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "corpus_cards",
			Help:      "Number of cards in the current index snapshot",
		}),
		rebuildsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "index_rebuilds_total",
			Help:      "Total number of index rebuilds",
		}),
		rebuildTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "index_rebuild_duration_seconds",
			Help:      "Index rebuild duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
		cacheTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "result_cache_requests_total",
				Help:      "Result cache lookups by result",
			},
			[]string{"result"},
		),
	}

	errs := []error{
		registerOrReuse(reg, &o.queriesTotal),
		registerOrReuse(reg, &o.queryDuration),
		registerOrReuse(reg, &o.corpusCards),
		registerOrReuse(reg, &o.rebuildsTotal),
		registerOrReuse(reg, &o.rebuildTime),
		registerOrReuse(reg, &o.cacheTotal),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return o, nil
}

// registerOrReuse registers a collector or adopts an identical one already
// registered, so several engines can share one registry.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("register search metrics: %w", err)
	}
	return nil
}

// ObserveQuery records one search.
func (o *SearchObserver) ObserveQuery(outcome string, d time.Duration) {
	o.queriesTotal.WithLabelValues(outcome).Inc()
	o.queryDuration.Observe(d.Seconds())
}

// ObserveRebuild records an index rebuild and the new corpus size.
func (o *SearchObserver) ObserveRebuild(cards int, d time.Duration) {
	o.rebuildsTotal.Inc()
	o.rebuildTime.Observe(d.Seconds())
	o.corpusCards.Set(float64(cards))
}

// ObserveCache records a result-cache lookup.
func (o *SearchObserver) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	o.cacheTotal.WithLabelValues(result).Inc()
}
