// Package metrics holds the Prometheus collectors metroroute exposes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Query outcome labels.
const (
	StatusOK              = "ok"
	StatusNoPath          = "no_path"
	StatusUnknownStation  = "unknown_station"
	StatusInvalidArgument = "invalid"
	StatusError           = "error"
)

// Registry owns a private prometheus.Registry and every collector.
type Registry struct {
	registry *prometheus.Registry

	// Query metrics
	QueriesTotal         *prometheus.CounterVec
	QueryDuration        prometheus.Histogram
	QuerySettledStations prometheus.Histogram
	QueryRelaxations     prometheus.Histogram
	ItineraryTransfers   prometheus.Histogram
	CacheHitsTotal       prometheus.Counter
	CacheMissesTotal     prometheus.Counter

	// Network metrics
	NetworkStations   prometheus.Gauge
	NetworkEdges      prometheus.Gauge
	NetworkLines      prometheus.Gauge
	NetworkComponents prometheus.Gauge
	NetworkPublishes  prometheus.Counter
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}

	r.initQueryMetrics()
	r.initNetworkMetrics()

	return r
}

// Gatherer exposes the collected metrics, e.g. for promhttp or testutil.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
