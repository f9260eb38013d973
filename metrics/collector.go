package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

const namespace = "sssp"

// Query outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector holds the Prometheus metrics fed by instrumented queries.
type Collector struct {
	queries     *prometheus.CounterVec
	settled     prometheus.Counter
	stale       prometheus.Counter
	relaxations prometheus.Counter
	duration    prometheus.Histogram
	unreachable prometheus.Gauge
}

// NewCollector creates the metrics and registers them on reg.
// A nil reg means prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Shortest-path queries by outcome.",
		}, []string{"outcome"}),
		settled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settled_vertices_total",
			Help:      "Queue entries accepted and relaxed.",
		}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_entries_total",
			Help:      "Outdated queue entries discarded.",
		}),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Edges that lowered a tentative distance.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Wall time of shortest-path queries.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		unreachable: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "unreachable_vertices",
			Help:      "Unreachable vertices in the last successful query.",
		}),
	}

	registered := make([]prometheus.Collector, 0, 6)
	for _, m := range []prometheus.Collector{c.queries, c.settled, c.stale, c.relaxations, c.duration, c.unreachable} {
		if err := reg.Register(m); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
		registered = append(registered, m)
	}

	// Expose both outcomes from the start.
	c.queries.WithLabelValues(OutcomeOK)
	c.queries.WithLabelValues(OutcomeError)

	return c, nil
}

// ShortestPaths runs dijkstra.ShortestPaths with opts and records the query.
// Hooks in opts still run; the counting hooks wrap them.
func (c *Collector) ShortestPaths(g *core.Graph, source int, opts ...dijkstra.Option) (*dijkstra.DistanceTable, error) {
	var settled, stale, relaxed int

	caller := dijkstra.DefaultOptions()
	for _, opt := range opts {
		opt(&caller)
	}

	all := make([]dijkstra.Option, 0, len(opts)+3)
	all = append(all, opts...)
	all = append(all,
		dijkstra.WithOnSettle(func(v int, d int64) {
			caller.OnSettle(v, d)
			settled++
		}),
		dijkstra.WithOnStale(func(v int, d int64) {
			caller.OnStale(v, d)
			stale++
		}),
		dijkstra.WithOnRelax(func(from, to int, d int64) {
			caller.OnRelax(from, to, d)
			relaxed++
		}),
	)

	start := time.Now()
	tbl, err := dijkstra.ShortestPaths(g, source, all...)
	c.duration.Observe(time.Since(start).Seconds())

	if err != nil {
		c.queries.WithLabelValues(OutcomeError).Inc()
		return nil, err
	}

	c.queries.WithLabelValues(OutcomeOK).Inc()
	c.settled.Add(float64(settled))
	c.stale.Add(float64(stale))
	c.relaxations.Add(float64(relaxed))

	unreachable := 0
	for v := 0; v < tbl.Len(); v++ {
		if !tbl.Reachable(v) {
			unreachable++
		}
	}
	c.unreachable.Set(float64(unreachable))

	return tbl, nil
}

// QueriesCounter returns the query counter for the given outcome label.
func (c *Collector) QueriesCounter(outcome string) prometheus.Counter {
	return c.queries.WithLabelValues(outcome)
}
