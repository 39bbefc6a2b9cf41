// Package dijkstra provides the shortest-path engine of the route planner:
// a Dijkstra-style label-setting search over a core.Graph of stations whose
// connections carry non-negative travel times and line labels.
//
// Overview:
//
//   - ShortestPath(g, start, goal) returns the minimum total travel time and
//     the predecessor/line traces needed to rebuild the route (see package
//     itinerary).
//   - The frontier is a container/heap binary heap; no linear minimum scans.
//   - The search stops as soon as the goal is finalized.
//
// Determinism:
//
//	Networks commonly contain equal-cost alternatives, so ties are broken
//	explicitly rather than by map iteration order:
//
//	  1. Frontier entries with equal distance are extracted in lexicographic
//	     order of station name.
//	  2. Edges leaving a finalized station are relaxed in insertion order
//	     (core.Graph.Neighbors order).
//	  3. A station's predecessor only changes on a strictly shorter candidate,
//	     so the first equal-cost way found is kept.
//
//	The same graph and query therefore always yield the same traces.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrStationNotFound: start or goal unknown; the concrete error is
//     *StationNotFoundError naming the station and its role. Start is
//     checked first.
//   - ErrNoPath:          the frontier emptied without finalizing the goal
//     (or the goal lies beyond WithMaxCost). No numeric infinity is returned.
//   - ErrNegativeWeight:  a negative weight was met during relaxation.
//   - ErrOptionViolation: WithMaxCost(<0) or an empty label in WithAvoidLines.
//
// API reference:
//
//	func ShortestPath(
//	    g *core.Graph,
//	    start, goal string,
//	    opts ...Option,
//	) (*Result, error)
//
//	  - Result.Cost:     total travel time of the best route.
//	  - Result.Dist:     best-known distance of every discovered station.
//	  - Result.Prev:     predecessor of each discovered station (none for start).
//	  - Result.PrevLine: line used to arrive at each discovered station.
//
// Thread safety:
//
//   - ShortestPath never mutates the graph and shares no state between calls.
//   - Build the graph completely before querying it; construction and
//     querying are not meant to interleave.
//
// See also:
//
//   - core.Graph: station graph construction.
//   - itinerary.FromResult: turns a Result into line segments.
package dijkstra
