// File: methods_edges.go
// Role: Connection ingestion (AddConnection) and edge queries
//       (Neighbors, Edges, EdgeCount, Lines). Also: nextEdgeID().
// Determinism:
//   - Neighbors() and Edges() return edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", …).
const edgeIDPrefix = 'e'

// AddConnection records a bidirectional connection between stations a and b
// served by line, taking weight time units in either direction.
//
// Steps:
//  1. Validate names, line and weight.
//  2. Lock mu; create a and b if absent.
//  3. Append edge a→b to a's list and edge b→a to b's list.
//
// Repeated identical calls accumulate parallel edges; nothing is deduplicated.
// A self-connection (a == b) is stored like any other pair.
//
// Complexity: O(1) amortized.
func (g *Graph) AddConnection(a, b string, weight int64, line string) error {
	if a == "" || b == "" {
		return ErrEmptyStation
	}
	if line == "" {
		return ErrEmptyLine
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s %s→%s weight=%d", ErrNegativeWeight, line, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	forward := g.newEdge(a, b, weight, line)
	backward := g.newEdge(b, a, weight, line)
	g.adjacency[a] = append(g.adjacency[a], forward)
	g.adjacency[b] = append(g.adjacency[b], backward)
	g.edgeCount += 2

	return nil
}

// newEdge allocates an edge with the next ID. Caller holds mu.
func (g *Graph) newEdge(from, to string, weight int64, line string) *Edge {
	seq := nextEdgeID(g)

	return &Edge{
		ID:     formatEdgeID(seq),
		From:   from,
		To:     to,
		Weight: weight,
		Line:   line,
		seq:    seq,
	}
}

// Neighbors returns the outgoing edges of station name in insertion order.
//
// The returned slice is a fresh copy; the *Edge values are shared with the
// graph and must be treated as read-only.
//
// Errors:
//   - ErrEmptyStation if name == "".
//   - ErrStationNotFound if the station was never added.
//
// Complexity: O(d) where d is the out-degree of name.
func (g *Graph) Neighbors(name string) ([]*Edge, error) {
	if name == "" {
		return nil, ErrEmptyStation
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, name)
	}
	out := make([]*Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// Edges returns every directed edge in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, g.edgeCount)
	for _, edges := range g.adjacency {
		out = append(out, edges...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns the number of directed edges (two per connection).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Lines returns the distinct line labels present in the graph, sorted.
// Complexity: O(E + L log L).
func (g *Graph) Lines() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := make(map[string]struct{})
	for _, edges := range g.adjacency {
		for _, e := range edges {
			set[e.Line] = struct{}{}
		}
	}

	return sortedKeys(set)
}

// nextEdgeID returns the next edge sequence number. Caller holds mu.
func nextEdgeID(g *Graph) uint64 {
	g.nextEdgeID++

	return g.nextEdgeID
}

// formatEdgeID renders seq as "e<seq>" without going through fmt.
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}
