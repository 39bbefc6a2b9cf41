// Package render prints itineraries for people: plain text for pipes and
// logs, lipgloss-styled text for terminals.
package render

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/metroroute/itinerary"
)

// Options tunes the layout.
type Options struct {
	// ShowStops lists every intermediate station under each ride.
	ShowStops bool
}

// theme decorates the fragments of a layout.
type theme struct {
	header func(string) string
	time   func(string) string
	line   func(name string) string
	change func(string) string
}

var plain = theme{
	header: identity,
	time:   identity,
	line:   identity,
	change: identity,
}

func identity(s string) string { return s }

// Text writes it without any escape sequences.
func Text(w io.Writer, it *itinerary.Itinerary, opts Options) error {
	return layout(w, it, opts, plain)
}

// Styled writes it with line badges and highlighted changes. r decides the
// color profile; pass lipgloss.NewRenderer(w) for a terminal. Writers that are
// not terminals degrade to plain text.
func Styled(w io.Writer, it *itinerary.Itinerary, opts Options, r *lipgloss.Renderer) error {
	if r == nil {
		r = lipgloss.NewRenderer(w)
	}

	return layout(w, it, opts, styledTheme(r))
}

func layout(w io.Writer, it *itinerary.Itinerary, opts Options, th theme) error {
	if it == nil {
		return fmt.Errorf("render: nil itinerary")
	}

	var b strings.Builder
	b.WriteString(th.header(it.String()))
	b.WriteByte('\n')
	if len(it.Segments) == 0 {
		_, err := io.WriteString(w, b.String())
		return err
	}

	blank := strings.Repeat(" ", 6)
	verb := "board"
	for _, st := range it.Steps() {
		switch st.Kind {
		case itinerary.StepChange:
			fmt.Fprintf(&b, "%s  %s %s %s\n", th.time(fmt.Sprintf("%4d", st.At)),
				th.change(verb), th.line(st.Line), th.change("at "+st.Station))
			verb = "change to"
		case itinerary.StepRide:
			seg := it.Segments[st.Segment]
			fmt.Fprintf(&b, "%sride %s to %s (%d min)\n", blank, stops(seg.Hops()), seg.To, seg.Duration())
			if opts.ShowStops && seg.Hops() > 1 {
				fmt.Fprintf(&b, "%s  via %s\n", blank, strings.Join(seg.Stops[:len(seg.Stops)-1], ", "))
			}
		}
	}
	fmt.Fprintf(&b, "%s  arrive at %s\n", th.time(fmt.Sprintf("%4d", it.Total)), it.Goal)

	_, err := io.WriteString(w, b.String())
	return err
}

func stops(n int) string {
	if n == 1 {
		return "1 stop"
	}
	return fmt.Sprintf("%d stops", n)
}

// lineColors follows the Vienna U-Bahn palette; other lines get a stable
// color from fallbackColors.
var lineColors = map[string]lipgloss.Color{
	"U1": "#E3000F",
	"U2": "#A862A4",
	"U3": "#EF7C00",
	"U4": "#00963F",
	"U5": "#008F95",
	"U6": "#9D6830",
}

var fallbackColors = []lipgloss.Color{"#1E88E5", "#8E24AA", "#43A047", "#F4511E", "#6D4C41", "#00897B"}

func lineColor(name string) lipgloss.Color {
	if c, ok := lineColors[name]; ok {
		return c
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))

	return fallbackColors[h.Sum32()%uint32(len(fallbackColors))]
}

func styledTheme(r *lipgloss.Renderer) theme {
	header := r.NewStyle().Bold(true)
	timeStyle := r.NewStyle().Foreground(lipgloss.Color("#888888"))
	change := r.NewStyle().Foreground(lipgloss.Color("#00BCD4"))
	badge := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)

	return theme{
		header: func(s string) string { return header.Render(s) },
		time:   func(s string) string { return timeStyle.Render(s) },
		line: func(name string) string {
			return badge.Background(lineColor(name)).Render(name)
		},
		change: func(s string) string { return change.Render(s) },
	}
}
