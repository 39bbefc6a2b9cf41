package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metroroute/core"
)

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, h.Write(&m))

	return m.GetHistogram().GetSampleCount()
}

func TestNewRegistry_RegistersEverything(t *testing.T) {
	r := NewRegistry()
	// Vectors only show up once a label set exists.
	r.QueriesTotal.WithLabelValues(StatusOK)

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{
		"metroroute_queries_total",
		"metroroute_query_duration_seconds",
		"metroroute_query_settled_stations",
		"metroroute_query_relaxations",
		"metroroute_itinerary_transfers",
		"metroroute_cache_hits_total",
		"metroroute_cache_misses_total",
		"metroroute_network_stations",
		"metroroute_network_edges",
		"metroroute_network_lines",
		"metroroute_network_components",
		"metroroute_network_publishes_total",
	} {
		assert.True(t, names[want], want)
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.ObserveQuery(QueryStats{Status: StatusOK})

	assert.Equal(t, 1.0, testutil.ToFloat64(a.QueriesTotal.WithLabelValues(StatusOK)))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.QueriesTotal.WithLabelValues(StatusOK)))
}

func TestObserveQuery(t *testing.T) {
	r := NewRegistry()

	r.ObserveQuery(QueryStats{Status: StatusOK, Duration: time.Millisecond, Settled: 12, Relaxed: 20, Transfers: 1})
	r.ObserveQuery(QueryStats{Status: StatusOK, Duration: time.Microsecond, Cached: true, Transfers: 1})
	r.ObserveQuery(QueryStats{Status: StatusNoPath, Settled: 3, Relaxed: 2})
	r.ObserveQuery(QueryStats{Status: StatusUnknownStation})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.QueriesTotal.WithLabelValues(StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.QueriesTotal.WithLabelValues(StatusNoPath)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.QueriesTotal.WithLabelValues(StatusUnknownStation)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CacheHitsTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.CacheMissesTotal))

	assert.Equal(t, uint64(4), histogramCount(t, r.QueryDuration))
	assert.Equal(t, uint64(3), histogramCount(t, r.QuerySettledStations))
	assert.Equal(t, uint64(2), histogramCount(t, r.ItineraryTransfers))
}

func TestSetNetwork(t *testing.T) {
	r := NewRegistry()
	r.SetNetwork(core.Stats{Stations: 10, Edges: 18, Lines: 2}, 1)
	r.SetNetwork(core.Stats{Stations: 12, Edges: 22, Lines: 3}, 2)

	expected := `
# HELP metroroute_network_stations Stations in the published network
# TYPE metroroute_network_stations gauge
metroroute_network_stations 12
# HELP metroroute_network_publishes_total Networks published to the planner
# TYPE metroroute_network_publishes_total counter
metroroute_network_publishes_total 2
`
	err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected),
		"metroroute_network_stations", "metroroute_network_publishes_total")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(r.NetworkComponents))
}
