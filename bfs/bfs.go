// Package bfs provides breadth-first search over a core.Graph of stations,
// returning hop counts, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/metroroute/core"
)

// queueItem pairs a station with its hop count.
type queueItem struct {
	station string
	depth   int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any OnVisit error.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasStation(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.StationCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks station visited at depth d and records its parent.
func (w *walker) enqueue(station string, d int, parent string) {
	w.visited[station] = true
	w.res.Depth[station] = d
	if parent != "" {
		w.res.Parent[station] = parent
	}
	w.queue = append(w.queue, queueItem{station: station, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.station)
		if err := w.opts.OnVisit(item.station, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.station, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in edge order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.station)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.station, err)
	}
	for _, e := range edges {
		if !w.opts.FilterEdge(e) {
			continue
		}
		if !w.visited[e.To] {
			w.enqueue(e.To, next, item.station)
		}
	}

	return nil
}

// Components partitions g into connected groups of stations. Each group is
// sorted, and groups are ordered by size descending, then by first station.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.StationCount())
	var groups [][]string
	for _, s := range g.Stations() {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s)
		if err != nil {
			return nil, err
		}
		group := make([]string, len(res.Order))
		copy(group, res.Order)
		sort.Strings(group)
		for _, member := range group {
			seen[member] = true
		}
		groups = append(groups, group)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i][0] < groups[j][0]
	})

	return groups, nil
}
