// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph of stations.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start station is absent.
	ErrStartNotFound = errors.New("bfs: start station not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a station. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(station string, hops int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	FilterEdge func(e *core.Edge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all edges allowed)
//   - no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(*core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(station string, hops int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given number of hops.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges for which fn returns false.
func WithFilterEdge(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// WithAvoidLines skips every edge served by one of lines.
func WithAvoidLines(lines ...string) Option {
	avoid := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		avoid[l] = struct{}{}
	}

	return WithFilterEdge(func(e *core.Edge) bool {
		_, skip := avoid[e.Line]
		return !skip
	})
}

// Result holds the outcome of a BFS traversal:
//   - Order: stations visited, in visit sequence.
//   - Depth: station → number of hops from the start.
//   - Parent: station → predecessor in the BFS tree.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether station was visited.
func (r *Result) Reached(station string) bool {
	_, ok := r.Depth[station]
	return ok
}

// PathTo reconstructs the fewest-hops path from the start station to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
