// Package metroroute finds the fastest route through a public transit network
// and describes it as rides and line changes.
//
// The module is organized as small packages:
//
//	core/       thread-safe station graph: stations, undirected connections, line labels
//	dijkstra/   deterministic shortest-path engine with predecessor and line traces
//	itinerary/  turns engine traces into line segments and change points
//	bfs/        hop-count traversal and connected components
//	network/    CSV and YAML network loaders plus an embedded Vienna sample
//	planner/    concurrent query facade with a per-network LRU cache and metrics
//	render/     plain and terminal-styled itinerary output
//	builder/    synthetic networks for tests and benchmarks
//	config/     YAML settings validated on load
//	logging/    structured JSON logs
//	metrics/    Prometheus collectors for queries and published networks
//
// The metroroute command in cmd/metroroute wires these together:
//
//	metroroute Leopoldau Westbahnhof
//	Leopoldau → Westbahnhof: 25 min via U1, U3 (1 transfer)
//	   0  board U1 at Leopoldau
//	      ride 13 stops to Stephansplatz (19 min)
//	  19  change to U3 at Stephansplatz
//	      ride 5 stops to Westbahnhof (6 min)
//	  25  arrive at Westbahnhof
package metroroute
