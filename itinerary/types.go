// Package itinerary turns the predecessor traces of a shortest-path query into
// an ordered list of line segments with change points.
package itinerary

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInconsistentTrace reports that a trace the engine declared successful
// cannot be walked back to the start. It signals a defect, never a normal
// runtime outcome.
var ErrInconsistentTrace = errors.New("itinerary: inconsistent predecessor trace")

// Segment is a maximal run of consecutive hops on the same line.
//
// Depart and Arrive are cumulative travel times from the itinerary's start.
type Segment struct {
	Line string
	From string
	To   string

	// Stops lists the stations reached on this segment, ending with To.
	// From is not included.
	Stops []string

	Depart int64
	Arrive int64
}

// Duration is the time spent on the segment.
func (s Segment) Duration() int64 { return s.Arrive - s.Depart }

// Hops is the number of connections travelled on the segment.
func (s Segment) Hops() int { return len(s.Stops) }

// Itinerary is a forward-ordered route description.
type Itinerary struct {
	Start    string
	Goal     string
	Total    int64
	Segments []Segment
}

// StepKind distinguishes the two kinds of Step.
type StepKind int

const (
	// StepChange marks boarding a line, including the first one taken.
	StepChange StepKind = iota
	// StepRide marks travelling along one segment.
	StepRide
)

// String returns a short label for the kind.
func (k StepKind) String() string {
	switch k {
	case StepChange:
		return "change"
	case StepRide:
		return "ride"
	default:
		return "unknown"
	}
}

// Step is one entry of the printable route: either a change marker or a ride.
type Step struct {
	Kind StepKind
	Line string

	// Station is where a StepChange happens. Empty for rides.
	Station string

	// From, To and Segment describe a StepRide.
	From    string
	To      string
	Segment int

	// At is the cumulative time when the step begins.
	At int64
}

// Steps expands the segments into change markers and rides. Every segment is
// preceded by exactly one StepChange naming its line, the first included.
func (it *Itinerary) Steps() []Step {
	steps := make([]Step, 0, 2*len(it.Segments))
	for i, seg := range it.Segments {
		steps = append(steps,
			Step{Kind: StepChange, Line: seg.Line, Station: seg.From, At: seg.Depart},
			Step{Kind: StepRide, Line: seg.Line, From: seg.From, To: seg.To, Segment: i, At: seg.Depart},
		)
	}

	return steps
}

// Stations returns every station on the route in travel order, start first.
func (it *Itinerary) Stations() []string {
	out := []string{it.Start}
	for _, seg := range it.Segments {
		out = append(out, seg.Stops...)
	}

	return out
}

// Lines returns the lines used, in boarding order.
func (it *Itinerary) Lines() []string {
	out := make([]string, len(it.Segments))
	for i, seg := range it.Segments {
		out[i] = seg.Line
	}

	return out
}

// Transfers is the number of line changes after the first boarding.
func (it *Itinerary) Transfers() int {
	if len(it.Segments) == 0 {
		return 0
	}

	return len(it.Segments) - 1
}

// String summarizes the route on one line, e.g.
// "Leopoldau → Karlsplatz: 22 min via U1, U2 (1 transfer)".
func (it *Itinerary) String() string {
	if len(it.Segments) == 0 {
		return fmt.Sprintf("%s: already there", it.Start)
	}
	transfers := "transfers"
	if it.Transfers() == 1 {
		transfers = "transfer"
	}

	return fmt.Sprintf("%s → %s: %d min via %s (%d %s)",
		it.Start, it.Goal, it.Total, strings.Join(it.Lines(), ", "), it.Transfers(), transfers)
}
