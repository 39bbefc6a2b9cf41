// Package bfs provides breadth-first search over a core.Graph of stations,
// returning hop counts, parent links, and visit order, plus connected
// components of a network.
//
// What
//
//   - Explore stations in non-decreasing hop count from a start station.
//   - Returns a Result with Order, Depth (hops) and Parent.
//   - Components(g) partitions the network into connected groups.
//
// Why
//
//   - Reachability checks that are cheaper than a weighted query.
//   - Load-time diagnostics: a network split into several components
//     usually means a typo in a station name.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues
//	neighbors in that order, so the visit sequence is reproducible.
//	Components are sorted internally and by their first station.
//
// Complexity (V = stations, E = directed edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
