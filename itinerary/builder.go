package itinerary

import (
	"fmt"

	"github.com/katalvlaran/metroroute/dijkstra"
)

// hop is one connection of the route: the station reached and the line used.
type hop struct {
	station string
	line    string
}

// FromResult builds the itinerary described by a successful engine result.
func FromResult(res *dijkstra.Result) (*Itinerary, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil result", ErrInconsistentTrace)
	}

	return Build(res.Start, res.Goal, res.Prev, res.PrevLine, res.Dist, res.Cost)
}

// Build walks prev backward from goal to start, reverses the hops and merges
// consecutive hops on the same line into segments.
//
// dist supplies the cumulative time at every station of the route; total is
// the cost the engine reported. start == goal yields an itinerary without
// segments.
//
// Any break in the chain (missing predecessor or line, a cycle, a missing or
// decreasing distance, or a final time different from total) is reported as
// ErrInconsistentTrace.
func Build(start, goal string, prev, prevLine map[string]string, dist map[string]int64, total int64) (*Itinerary, error) {
	it := &Itinerary{Start: start, Goal: goal, Total: total}
	if start == goal {
		if total != 0 {
			return nil, fmt.Errorf("%w: route from %q to itself costs %d", ErrInconsistentTrace, start, total)
		}
		return it, nil
	}

	hops, err := walkBack(start, goal, prev, prevLine)
	if err != nil {
		return nil, err
	}

	it.Segments, err = mergeHops(start, hops, dist)
	if err != nil {
		return nil, err
	}

	if arrive := it.Segments[len(it.Segments)-1].Arrive; arrive != total {
		return nil, fmt.Errorf("%w: segments sum to %d, engine reported %d", ErrInconsistentTrace, arrive, total)
	}

	return it, nil
}

// walkBack collects (station, line-used-to-arrive) pairs from goal to start
// and returns them in forward order.
func walkBack(start, goal string, prev, prevLine map[string]string) ([]hop, error) {
	var hops []hop
	seen := map[string]bool{goal: true}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: no predecessor recorded for %q", ErrInconsistentTrace, cur)
		}
		line, ok := prevLine[cur]
		if !ok || line == "" {
			return nil, fmt.Errorf("%w: no line recorded for %q", ErrInconsistentTrace, cur)
		}
		if seen[p] {
			return nil, fmt.Errorf("%w: cycle through %q", ErrInconsistentTrace, p)
		}
		seen[p] = true
		hops = append(hops, hop{station: cur, line: line})
		cur = p
	}

	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return hops, nil
}

// mergeHops groups forward-ordered hops into segments and stamps times.
func mergeHops(start string, hops []hop, dist map[string]int64) ([]Segment, error) {
	at := func(station string) (int64, error) {
		if station == start {
			return 0, nil
		}
		d, ok := dist[station]
		if !ok {
			return 0, fmt.Errorf("%w: no distance recorded for %q", ErrInconsistentTrace, station)
		}
		return d, nil
	}

	var segments []Segment
	from := start
	var last int64
	for _, h := range hops {
		arrive, err := at(h.station)
		if err != nil {
			return nil, err
		}
		if arrive < last {
			return nil, fmt.Errorf("%w: time decreases at %q", ErrInconsistentTrace, h.station)
		}
		last = arrive

		n := len(segments)
		if n > 0 && segments[n-1].Line == h.line {
			segments[n-1].To = h.station
			segments[n-1].Stops = append(segments[n-1].Stops, h.station)
			segments[n-1].Arrive = arrive
		} else {
			depart, err := at(from)
			if err != nil {
				return nil, err
			}
			segments = append(segments, Segment{
				Line:   h.line,
				From:   from,
				To:     h.station,
				Stops:  []string{h.station},
				Depart: depart,
				Arrive: arrive,
			})
		}
		from = h.station
	}

	return segments, nil
}
