package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "metroroute_queries_total",
			Help: "Route queries by outcome",
		},
		[]string{"status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metroroute_query_duration_seconds",
			Help:    "Time to answer a route query, cache hits included",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	r.QuerySettledStations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metroroute_query_settled_stations",
			Help:    "Stations finalized by the engine per uncached query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	r.QueryRelaxations = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metroroute_query_relaxations",
			Help:    "Edges that improved a tentative distance per uncached query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	r.ItineraryTransfers = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "metroroute_itinerary_transfers",
			Help:    "Line changes in returned itineraries",
			Buckets: []float64{0, 1, 2, 3, 4, 6},
		},
	)

	r.CacheHitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "metroroute_cache_hits_total",
			Help: "Route queries answered from the itinerary cache",
		},
	)

	r.CacheMissesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "metroroute_cache_misses_total",
			Help: "Route queries that ran the engine",
		},
	)
}
