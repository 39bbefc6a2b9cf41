package network

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"
)

// yamlNetwork is the document shape:
//
//	lines:
//	  - name: U1
//	    stops:
//	      - {station: Leopoldau, next: 2}
//	      - {station: Grossfeldsiedlung, next: 1}
//	      - {station: Aderklaaer Strasse}
//
// next is the travel time to the following stop and is absent on the last.
type yamlNetwork struct {
	Lines []yamlLine `yaml:"lines"`
}

type yamlLine struct {
	Name  string     `yaml:"name"`
	Stops []yamlStop `yaml:"stops"`
	line  int
}

type yamlStop struct {
	Station string `yaml:"station"`
	Next    *int64 `yaml:"next"`
	line    int
}

// UnmarshalYAML keeps the source line so errors can point at it.
func (l *yamlLine) UnmarshalYAML(n *yaml.Node) error {
	type plain yamlLine
	if err := decodeStrict(n, (*plain)(l), "name", "stops"); err != nil {
		return err
	}
	l.line = n.Line

	return nil
}

func (s *yamlStop) UnmarshalYAML(n *yaml.Node) error {
	type plain yamlStop
	if err := decodeStrict(n, (*plain)(s), "station", "next"); err != nil {
		return err
	}
	s.line = n.Line

	return nil
}

// decodeStrict rejects unknown keys, which Node.Decode does not do on its own.
func decodeStrict(n *yaml.Node, v any, keys ...string) error {
	if n.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if key := n.Content[i]; !slices.Contains(keys, key.Value) {
				return &RecordError{Source: "yaml", Row: key.Line, Err: fmt.Errorf("unknown key %q", key.Value)}
			}
		}
	}

	return n.Decode(v)
}

// ParseYAML reads a network described line by line. Every pair of
// consecutive stops becomes one Record.
func ParseYAML(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlNetwork
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		var rerr *RecordError
		if errors.As(err, &rerr) {
			return nil, rerr
		}
		var terr *yaml.TypeError
		if errors.As(err, &terr) {
			return nil, &RecordError{Source: "yaml", Err: terr}
		}
		return nil, fmt.Errorf("%w: yaml: %v", ErrMalformedRecord, err)
	}

	var out []Record
	for _, l := range doc.Lines {
		if len(l.Stops) < 2 {
			return nil, &RecordError{Source: "yaml", Row: l.line, Err: fmt.Errorf("line %q needs at least two stops", l.Name)}
		}
		for i, stop := range l.Stops {
			last := i == len(l.Stops)-1
			switch {
			case last && stop.Next != nil:
				return nil, &RecordError{Source: "yaml", Row: stop.line, Err: fmt.Errorf("last stop %q of %q has a next time", stop.Station, l.Name)}
			case last:
				continue
			case stop.Next == nil:
				return nil, &RecordError{Source: "yaml", Row: stop.line, Err: fmt.Errorf("stop %q of %q has no next time", stop.Station, l.Name)}
			}

			rec := Record{
				Line:   l.Name,
				From:   stop.Station,
				To:     l.Stops[i+1].Station,
				Weight: *stop.Next,
				Row:    stop.line,
			}
			if err := rec.Validate(); err != nil {
				return nil, &RecordError{Source: "yaml", Row: stop.line, Err: err}
			}
			out = append(out, rec)
		}
	}

	return out, nil
}
