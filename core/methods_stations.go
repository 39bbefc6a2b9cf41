// File: methods_stations.go
// Role: Station lifecycle and queries: AddStation, HasStation, Stations,
//       StationCount, LinesAt, Stats.
// Determinism:
//   - Stations(), LinesAt() and Lines() are sorted lexicographically.

package core

import (
	"fmt"
	"sort"
)

// AddStation registers name without any connection. Adding an existing
// station is a no-op.
//
// Loaders use it for stations that are declared but not yet connected.
// Complexity: O(1).
func (g *Graph) AddStation(name string) error {
	if name == "" {
		return ErrEmptyStation
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[name]; !ok {
		g.adjacency[name] = nil
	}

	return nil
}

// HasStation reports whether name is a known station.
// Complexity: O(1).
func (g *Graph) HasStation(name string) bool {
	if name == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[name]

	return ok
}

// Stations returns all station names sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Stations() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for name := range g.adjacency {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// StationCount returns the number of stations.
// Complexity: O(1).
func (g *Graph) StationCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// LinesAt returns the distinct lines serving station name, sorted.
// Complexity: O(d + l log l).
func (g *Graph) LinesAt(name string) ([]string, error) {
	if name == "" {
		return nil, ErrEmptyStation
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStationNotFound, name)
	}
	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		set[e.Line] = struct{}{}
	}

	return sortedKeys(set), nil
}

// Stats returns a snapshot of the graph's size.
// Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	lines := make(map[string]struct{})
	isolated := 0
	for _, edges := range g.adjacency {
		if len(edges) == 0 {
			isolated++
		}
		for _, e := range edges {
			lines[e.Line] = struct{}{}
		}
	}

	return Stats{
		Stations: len(g.adjacency),
		Edges:    g.edgeCount,
		Lines:    len(lines),
		Isolated: isolated,
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
