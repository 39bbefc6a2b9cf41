// Package core provides the in-memory Station Graph used by the route planner:
// a weighted, undirected, multi-line adjacency structure keyed by station name.
//
// Every physical connection between two stations on a line is stored as two
// directed edges (A→B and B→A) carrying the same weight and line label. The
// symmetry is established by construction in AddConnection; nothing checks it
// at query time.
//
// Model:
//
//   - Station: a unique, case-sensitive, non-empty name. It is the only key.
//   - Edge:    From, To, Weight (non-negative travel time), Line, plus a
//     monotonically assigned ID ("e1", "e2", …) recording insertion order.
//   - Parallel edges are allowed. Calling AddConnection twice with the same
//     arguments yields two parallel connections; nothing is deduplicated.
//
// Core methods:
//
//	// Construction
//	AddConnection(a, b string, weight int64, line string) error // O(1) amortized
//	AddStation(name string) error                                 // O(1)
//
//	// Queries
//	HasStation(name string) bool              // O(1)
//	Neighbors(name string) ([]*Edge, error)   // O(d), insertion order
//	LinesAt(name string) ([]string, error)    // O(d log d), unique, sorted
//	Stations() []string                       // O(V log V), sorted
//	Lines() []string                          // O(E log E), unique, sorted
//	Edges() []*Edge                           // O(E log E), insertion order
//	StationCount() int / EdgeCount() int      // O(1)
//	Stats() Stats                             // O(V+E) snapshot
//
// Determinism:
//
//   - Neighbors() and Edges() return edges in insertion order (Edge ID asc).
//   - Stations() and Lines() are sorted lexicographically.
//
// Concurrency:
//
//	A single sync.RWMutex guards the station table. Reads may run concurrently
//	with each other. The intended lifecycle is build once, then query: a loader
//	fills the graph, hands it off, and from then on the graph is read-only.
//
// Errors:
//
//	ErrEmptyStation    - a station name is empty.
//	ErrEmptyLine       - a connection has no line label.
//	ErrNegativeWeight  - a connection weight is below zero.
//	ErrStationNotFound - a query referenced a station that was never added.
package core
