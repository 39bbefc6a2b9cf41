// Package dijkstra implements the label-setting shortest-path engine over a
// core.Graph of stations.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each station is finalized at most once.
//   - Each successful relaxation pushes one frontier entry: up to E pushes.
//   - Each heap Push/Pop costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance, predecessor and line maps.
//   - O(E) worst-case frontier entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved distances push a new entry; stale entries are
//     skipped when popped because their station is already finalized.
//   - Frontier order is (distance asc, station name asc), so equal-cost entries
//     are extracted in lexicographic order.
//   - Edges leaving a station are relaxed in insertion order and only a strictly
//     shorter candidate replaces a known distance.
//   - The search stops as soon as the goal is finalized.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/metroroute/core"
)

// ShortestPath computes the minimum-travel-time route from start to goal.
//
// Returns:
//
//   - *Result with the total cost and the predecessor/line traces.
//   - err: ErrNilGraph, *StationNotFoundError (start is checked before goal),
//     ErrNoPath when goal is unreachable (or beyond MaxCost),
//     ErrNegativeWeight, or ErrOptionViolation.
//
// The graph is only read. All search state is allocated per call, so
// concurrent queries against the same built graph need no coordination.
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph and endpoints
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasStation(start) {
		return nil, &StationNotFoundError{Role: RoleStart, Station: start}
	}
	if !g.HasStation(goal) {
		return nil, &StationNotFoundError{Role: RoleGoal, Station: goal}
	}

	// 3) Run the search
	r := newRunner(g, start, goal, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 4) Goal never finalized: unreachable within the configured limits
	if !r.finalized[goal] {
		return nil, fmt.Errorf("%w: %q is not reachable from %q", ErrNoPath, goal, start)
	}

	return &Result{
		Start:       start,
		Goal:        goal,
		Cost:        r.dist[goal],
		Dist:        r.dist,
		Prev:        r.prev,
		PrevLine:    r.prevLine,
		Settled:     r.settled,
		Relaxations: r.relaxations,
	}, nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g       *core.Graph // read-only within a query
	options Options
	start   string
	goal    string

	dist      map[string]int64  // station → best-known distance
	prev      map[string]string // station → predecessor on best-known route
	prevLine  map[string]string // station → line used to arrive from prev
	finalized map[string]bool   // stations whose distance is settled
	frontier  frontier          // min-heap under lazy decrease-key

	settled     int
	relaxations int
}

func newRunner(g *core.Graph, start, goal string, cfg Options) *runner {
	// Size hint only; most queries touch a fraction of the network.
	n := g.StationCount()

	return &runner{
		g:         g,
		options:   cfg,
		start:     start,
		goal:      goal,
		dist:      make(map[string]int64, n),
		prev:      make(map[string]string, n),
		prevLine:  make(map[string]string, n),
		finalized: make(map[string]bool, n),
		frontier:  make(frontier, 0, n),
	}
}

// init seeds the frontier with (0, start).
func (r *runner) init() {
	r.dist[r.start] = 0
	heap.Init(&r.frontier)
	heap.Push(&r.frontier, frontierItem{station: r.start, dist: 0})
}

// process repeatedly finalizes the cheapest frontier station.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (every reachable station processed).
//   - The goal has been finalized.
//   - The cheapest frontier entry exceeds MaxCost.
func (r *runner) process() error {
	for r.frontier.Len() > 0 {
		item := heap.Pop(&r.frontier).(frontierItem)

		// Stale duplicate left behind by an earlier improvement.
		if r.finalized[item.station] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}

		r.finalized[item.station] = true
		r.settled++
		if item.station == r.goal {
			return nil
		}

		if err := r.relax(item.station); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every station reachable by one edge from u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u string) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	base := r.dist[u]
	for _, e := range edges {
		if _, skip := r.options.AvoidLines[e.Line]; skip {
			continue
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s on %s weight=%d", ErrNegativeWeight, e.From, e.To, e.Line, e.Weight)
		}

		v := e.To
		if r.finalized[v] {
			continue
		}

		// A sum past MaxInt64 can never be a usable travel time.
		if e.Weight > math.MaxInt64-base {
			continue
		}
		candidate := base + e.Weight
		if candidate > r.options.MaxCost {
			continue
		}
		if known, seen := r.dist[v]; seen && candidate >= known {
			continue
		}

		r.dist[v] = candidate
		r.prev[v] = u
		r.prevLine[v] = e.Line
		r.relaxations++
		heap.Push(&r.frontier, frontierItem{station: v, dist: candidate})
	}

	return nil
}

// frontierItem is a (tentative distance, station) pair.
type frontierItem struct {
	station string
	dist    int64
}

// frontier is a min-heap of frontierItem ordered by dist, then station name.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by distance; equal distances fall back to lexicographic station
// order so that extraction is deterministic.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].station < f[j].station
}

// Swap swaps two elements in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last element; called by heap.Pop.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
