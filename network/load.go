package network

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/logging"
)

// Format names a network description syntax.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "csv", "yaml" or "yml" in any case. An empty string
// yields "" so the caller can fall back to FormatFromPath.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("network: unknown format %q", s)
	}
}

// FormatFromPath infers the format from the file extension, defaulting to CSV.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Option configures Load and LoadReader.
type Option func(*options)

type options struct {
	format Format
	logger logging.Logger
	source string
}

// WithFormat forces a format instead of inferring it.
func WithFormat(f Format) Option {
	return func(o *options) {
		if f != "" {
			o.format = f
		}
	}
}

// WithLogger receives a summary line per loaded network.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Parse decodes records in the given format.
func Parse(r io.Reader, f Format) ([]Record, error) {
	switch f {
	case FormatCSV, "":
		return ParseCSV(r)
	case FormatYAML:
		return ParseYAML(r)
	default:
		return nil, fmt.Errorf("network: unknown format %q", f)
	}
}

// Build inserts records into a fresh graph in order, so edge insertion order
// follows the source.
func Build(records []Record) (*core.Graph, error) {
	g := core.NewGraph()
	for _, rec := range records {
		if err := g.AddConnection(rec.From, rec.To, rec.Weight, rec.Line); err != nil {
			return nil, &RecordError{Row: rec.Row, Err: err}
		}
	}

	return g, nil
}

// LoadReader parses r (CSV unless WithFormat says otherwise) and builds the
// graph.
func LoadReader(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := options{format: FormatCSV, logger: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	fields := []logging.Field{logging.Component("network"), logging.String("format", string(o.format))}
	if o.source != "" {
		fields = append(fields, logging.Path(o.source))
	}
	op := logging.StartTimer(o.logger, "network loaded", fields...)

	records, err := Parse(r, o.format)
	if err == nil && len(records) == 0 {
		err = fmt.Errorf("%w: no connections found", ErrMalformedRecord)
	}
	var g *core.Graph
	if err == nil {
		g, err = Build(records)
	}
	if err != nil {
		err = withSource(err, o.source)
		op.EndError(err)
		return nil, err
	}

	s := g.Stats()
	op.EndInfo(
		logging.Int("stations", s.Stations),
		logging.Int("edges", s.Edges),
		logging.Int("lines", s.Lines),
	)

	return g, nil
}

// Load reads the network at path. The format comes from WithFormat or, when
// absent, from the file extension.
func Load(path string, opts ...Option) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	all := append([]Option{
		func(o *options) {
			o.format = FormatFromPath(path)
			o.source = path
		},
	}, opts...)

	return LoadReader(bytes.NewReader(data), all...)
}

// withSource stamps file names onto record errors.
func withSource(err error, source string) error {
	rerr, ok := err.(*RecordError)
	if !ok || source == "" {
		return err
	}
	named := *rerr
	named.Source = source

	return &named
}
