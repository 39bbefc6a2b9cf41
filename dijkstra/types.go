// Package dijkstra defines result types, errors and configuration options
// for the station-to-station shortest-path engine.
//
// Options:
//
//	– WithMaxCost:    cap on the travel time to explore; a goal beyond it is
//	                  reported as ErrNoPath.
//	– WithAvoidLines: lines whose edges are ignored (closures, planned works).
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the provided graph pointer is nil.
//	– ErrStationNotFound   if start or goal is unknown (see StationNotFoundError).
//	– ErrNoPath            if the goal cannot be reached from the start.
//	– ErrNegativeWeight    if a negative edge weight is met during relaxation.
//	– ErrOptionViolation   if an option was given an invalid value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/metroroute/core"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStationNotFound indicates that the start or goal station does not
	// exist in the graph. Returned wrapped in *StationNotFoundError.
	ErrStationNotFound = errors.New("dijkstra: station not found")

	// ErrNoPath indicates that the search exhausted the frontier without
	// finalizing the goal. It is distinct from ErrStationNotFound.
	ErrNoPath = errors.New("dijkstra: no path found")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Role names which query endpoint a StationNotFoundError refers to.
type Role string

const (
	// RoleStart marks the start station of a query.
	RoleStart Role = "start"
	// RoleGoal marks the goal station of a query.
	RoleGoal Role = "goal"
)

// StationNotFoundError reports which endpoint of a query is unknown.
// It matches ErrStationNotFound and core.ErrStationNotFound via errors.Is.
type StationNotFoundError struct {
	Role    Role
	Station string
}

// Error implements error.
func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("dijkstra: %s station %q not found", e.Role, e.Station)
}

// Is reports whether target is ErrStationNotFound.
func (e *StationNotFoundError) Is(target error) bool {
	return target == ErrStationNotFound
}

// Unwrap exposes the underlying core sentinel.
func (e *StationNotFoundError) Unwrap() error {
	return core.ErrStationNotFound
}

// Options configures a ShortestPath query.
//
// MaxCost    – stop exploring once the cheapest frontier entry exceeds it.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// AvoidLines – set of line labels whose edges are skipped during relaxation.
type Options struct {
	MaxCost    int64
	AvoidLines map[string]struct{}

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxCost caps the travel time explored by the search.
// A negative value is recorded and surfaced as ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithAvoidLines excludes every edge served by one of lines.
// Empty labels are recorded and surfaced as ErrOptionViolation.
func WithAvoidLines(lines ...string) Option {
	return func(o *Options) {
		for _, l := range lines {
			if l == "" {
				o.err = fmt.Errorf("%w: empty line label in AvoidLines", ErrOptionViolation)
				return
			}
			if o.AvoidLines == nil {
				o.AvoidLines = make(map[string]struct{}, len(lines))
			}
			o.AvoidLines[l] = struct{}{}
		}
	}
}

// DefaultOptions returns Options with no cost cap and no avoided lines.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.MaxInt64,
	}
}

// Result is the outcome of a successful ShortestPath query.
//
// Dist, Prev and PrevLine cover every station discovered by the search, not
// only those on the returned route. Prev and PrevLine have no entry for Start.
type Result struct {
	Start string
	Goal  string

	// Cost is the total travel time of the best route from Start to Goal.
	Cost int64

	// Dist maps each discovered station to its best-known distance.
	Dist map[string]int64

	// Prev maps a station to its predecessor on the best-known route.
	Prev map[string]string

	// PrevLine maps a station to the line used to arrive from Prev.
	PrevLine map[string]string

	// Settled counts stations finalized before the search stopped.
	Settled int

	// Relaxations counts successful distance improvements.
	Relaxations int
}
