package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initNetworkMetrics() {
	r.NetworkStations = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "metroroute_network_stations",
		Help: "Stations in the published network",
	})
	r.NetworkEdges = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "metroroute_network_edges",
		Help: "Directed connections in the published network",
	})
	r.NetworkLines = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "metroroute_network_lines",
		Help: "Distinct lines in the published network",
	})
	r.NetworkComponents = promauto.With(r.registry).NewGauge(prometheus.GaugeOpts{
		Name: "metroroute_network_components",
		Help: "Connected groups of stations; more than one means some routes cannot exist",
	})
	r.NetworkPublishes = promauto.With(r.registry).NewCounter(prometheus.CounterOpts{
		Name: "metroroute_network_publishes_total",
		Help: "Networks published to the planner",
	})
}
