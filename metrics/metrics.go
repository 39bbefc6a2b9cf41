package metrics

import (
	"time"

	"github.com/katalvlaran/metroroute/core"
)

// QueryStats is what the planner knows about one answered query.
type QueryStats struct {
	Status    string
	Duration  time.Duration
	Cached    bool
	Settled   int
	Relaxed   int
	Transfers int
}

// ObserveQuery records one query. Engine counters are only observed for
// uncached queries; transfers only for successful ones.
func (r *Registry) ObserveQuery(q QueryStats) {
	r.QueriesTotal.WithLabelValues(q.Status).Inc()
	r.QueryDuration.Observe(q.Duration.Seconds())

	if q.Cached {
		r.CacheHitsTotal.Inc()
	} else {
		r.CacheMissesTotal.Inc()
		r.QuerySettledStations.Observe(float64(q.Settled))
		r.QueryRelaxations.Observe(float64(q.Relaxed))
	}
	if q.Status == StatusOK {
		r.ItineraryTransfers.Observe(float64(q.Transfers))
	}
}

// SetNetwork records the size of a freshly published network.
func (r *Registry) SetNetwork(s core.Stats, components int) {
	r.NetworkStations.Set(float64(s.Stations))
	r.NetworkEdges.Set(float64(s.Edges))
	r.NetworkLines.Set(float64(s.Lines))
	r.NetworkComponents.Set(float64(components))
	r.NetworkPublishes.Inc()
}
