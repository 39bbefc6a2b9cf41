// Package planner answers route queries against a published network.
//
// A Planner holds one immutable *core.Graph at a time. Publish swaps in a new
// graph atomically; queries already running finish against the graph they
// started with. Each published network gets its own LRU itinerary cache, so
// no stale itinerary survives a Publish.
package planner

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/bluele/gcache"
	"github.com/google/uuid"

	"github.com/katalvlaran/metroroute/bfs"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
	"github.com/katalvlaran/metroroute/itinerary"
	"github.com/katalvlaran/metroroute/logging"
	"github.com/katalvlaran/metroroute/metrics"
)

// ErrNoNetwork is returned by queries issued before the first Publish.
var ErrNoNetwork = errors.New("planner: no network published")

// snapshot pairs a graph with the cache of answers computed on it.
type snapshot struct {
	graph      *core.Graph
	cache      gcache.Cache // nil when caching is disabled
	components int
}

// Planner is safe for concurrent use.
type Planner struct {
	current atomic.Pointer[snapshot]
	opts    options
	engine  []dijkstra.Option
	log     logging.Logger
}

// New returns a Planner without a network. Call Publish before Plan.
func New(opts ...Option) (*Planner, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var engine []dijkstra.Option
	if o.maxCost > 0 {
		engine = append(engine, dijkstra.WithMaxCost(o.maxCost))
	}
	if len(o.avoidLines) > 0 {
		engine = append(engine, dijkstra.WithAvoidLines(o.avoidLines...))
	}

	return &Planner{
		opts:   o,
		engine: engine,
		log:    o.logger.With(logging.Component("planner")),
	}, nil
}

// Publish makes g the network for all subsequent queries. g must not be
// modified afterwards.
func (p *Planner) Publish(g *core.Graph) error {
	if g == nil {
		return dijkstra.ErrNilGraph
	}
	groups, err := bfs.Components(g)
	if err != nil {
		return fmt.Errorf("planner: inspect network: %w", err)
	}

	snap := &snapshot{graph: g, components: len(groups)}
	if p.opts.cacheSize > 0 {
		snap.cache = gcache.New(p.opts.cacheSize).LRU().Build()
	}
	p.current.Store(snap)

	s := g.Stats()
	p.log.Info("network published",
		logging.Int("stations", s.Stations),
		logging.Int("edges", s.Edges),
		logging.Int("lines", s.Lines),
		logging.Int("components", len(groups)),
	)
	if len(groups) > 1 {
		p.log.Warn("network is split; some routes cannot exist",
			logging.Int("components", len(groups)),
			logging.Int("largest", len(groups[0])),
			logging.Strings("isolated_from_main", groups[1][:min(len(groups[1]), 5)]),
		)
	}
	known := g.Lines()
	for _, line := range p.opts.avoidLines {
		if !slices.Contains(known, line) {
			p.log.Warn("avoided line is not in the network", logging.Line(line))
		}
	}
	if p.opts.metrics != nil {
		p.opts.metrics.SetNetwork(s, len(groups))
	}

	return nil
}

// Graph returns the published network, or nil.
func (p *Planner) Graph() *core.Graph {
	if snap := p.current.Load(); snap != nil {
		return snap.graph
	}
	return nil
}

// Plan returns the fastest itinerary from start to goal. Errors are those of
// dijkstra.ShortestPath plus ErrNoNetwork. The returned itinerary may be
// shared with other callers and must be treated as read-only.
func (p *Planner) Plan(start, goal string) (*itinerary.Itinerary, error) {
	began := time.Now()
	snap := p.current.Load()
	if snap == nil {
		return nil, ErrNoNetwork
	}

	log := p.log.With(logging.QueryID(uuid.NewString()))
	stats := metrics.QueryStats{}
	defer func() {
		stats.Duration = time.Since(began)
		if p.opts.metrics != nil {
			p.opts.metrics.ObserveQuery(stats)
		}
	}()

	key := cacheKey(start, goal)
	if snap.cache != nil {
		if v, err := snap.cache.Get(key); err == nil {
			it := v.(*itinerary.Itinerary)
			stats.Status, stats.Cached, stats.Transfers = metrics.StatusOK, true, it.Transfers()
			log.Debug("route served from cache",
				logging.String("from", start), logging.String("to", goal), logging.Bool("cached", true))
			return it, nil
		}
	}

	op := logging.StartTimer(log, "route planned",
		logging.String("from", start), logging.String("to", goal))

	res, err := dijkstra.ShortestPath(snap.graph, start, goal, p.engine...)
	if err != nil {
		stats.Status = statusOf(err)
		var nf *dijkstra.StationNotFoundError
		switch {
		case stats.Status == metrics.StatusError:
			op.EndError(err)
		case errors.As(err, &nf):
			op.End(logging.String("outcome", stats.Status), logging.Station(nf.Station))
		default:
			op.End(logging.String("outcome", stats.Status))
		}
		return nil, err
	}
	stats.Settled, stats.Relaxed = res.Settled, res.Relaxations

	it, err := itinerary.FromResult(res)
	if err != nil {
		stats.Status = metrics.StatusError
		op.EndError(err)
		return nil, err
	}
	stats.Status, stats.Transfers = metrics.StatusOK, it.Transfers()

	if snap.cache != nil {
		_ = snap.cache.Set(key, it)
	}
	op.End(
		logging.Int64("minutes", it.Total),
		logging.Int("transfers", it.Transfers()),
		logging.Int("settled", res.Settled),
		logging.Bool("cached", false),
	)

	return it, nil
}

// Reachable reports whether goal can be reached from start at all, ignoring
// travel times but honoring avoided lines.
func (p *Planner) Reachable(start, goal string) (bool, error) {
	snap := p.current.Load()
	if snap == nil {
		return false, ErrNoNetwork
	}
	switch {
	case !snap.graph.HasStation(start):
		return false, &dijkstra.StationNotFoundError{Role: dijkstra.RoleStart, Station: start}
	case !snap.graph.HasStation(goal):
		return false, &dijkstra.StationNotFoundError{Role: dijkstra.RoleGoal, Station: goal}
	}

	found := errors.New("found")
	_, err := bfs.BFS(snap.graph, start,
		bfs.WithAvoidLines(p.opts.avoidLines...),
		bfs.WithOnVisit(func(station string, _ int) error {
			if station == goal {
				return found
			}
			return nil
		}),
	)
	if errors.Is(err, found) {
		return true, nil
	}

	return false, err
}

// Components is the number of connected station groups in the current
// network; 0 before the first Publish.
func (p *Planner) Components() int {
	if snap := p.current.Load(); snap != nil {
		return snap.components
	}
	return 0
}

// CacheLen reports how many itineraries the current network has cached.
func (p *Planner) CacheLen() int {
	snap := p.current.Load()
	if snap == nil || snap.cache == nil {
		return 0
	}

	return snap.cache.Len(false)
}

func cacheKey(start, goal string) string {
	return start + "\x00" + goal
}

func statusOf(err error) string {
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return metrics.StatusNoPath
	case errors.Is(err, dijkstra.ErrStationNotFound):
		return metrics.StatusUnknownStation
	case errors.Is(err, dijkstra.ErrOptionViolation):
		return metrics.StatusInvalidArgument
	default:
		return metrics.StatusError
	}
}
