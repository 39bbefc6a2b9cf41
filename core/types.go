// File: types.go
// Role: Station Graph types, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards adjacency, edgeCount and nextEdgeID.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyStation indicates that a station name is the empty string.
	ErrEmptyStation = errors.New("core: station name is empty")

	// ErrEmptyLine indicates that a connection was added without a line label.
	ErrEmptyLine = errors.New("core: line label is empty")

	// ErrNegativeWeight indicates that a connection carried a negative travel time.
	ErrNegativeWeight = errors.New("core: negative travel time")

	// ErrStationNotFound indicates an operation referenced an unknown station.
	ErrStationNotFound = errors.New("core: station not found")
)

// Edge is one directed half of a connection between two stations.
//
// The reverse half (To→From) always exists with the same Weight and Line when
// the edge was created through AddConnection.
type Edge struct {
	// ID uniquely identifies this edge in its Graph ("e1", "e2", …).
	ID string

	// From is the station the edge leaves.
	From string

	// To is the station the edge arrives at.
	To string

	// Weight is the travel time between From and To.
	Weight int64

	// Line names the transit line serving this connection.
	Line string

	// seq orders edges by insertion; IDs compare as strings, seq does not.
	seq uint64
}

// Graph is the Station Graph: station name → outgoing edges.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	edgeCount  int

	// adjacency[station] lists outgoing edges in insertion order.
	// Every known station has an entry, possibly empty.
	adjacency map[string][]*Edge
}

// Stats is a read-only snapshot of a Graph's size.
type Stats struct {
	Stations int // number of stations
	Edges    int // number of directed edges (two per connection)
	Lines    int // number of distinct line labels
	Isolated int // stations without any connection
}

// NewGraph creates an empty Station Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: make(map[string][]*Edge),
	}
}
