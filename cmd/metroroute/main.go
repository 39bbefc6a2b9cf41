// Command metroroute prints the fastest route between two stations.
//
//	metroroute [flags] START GOAL
//	metroroute -stations
//
// Without -network (or a config file naming one) the embedded Vienna sample
// is used. Exit status: 0 success, 1 internal error, 2 usage or configuration
// error, 3 unknown station, 4 no route.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/metroroute/config"
	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
	"github.com/katalvlaran/metroroute/logging"
	"github.com/katalvlaran/metroroute/metrics"
	"github.com/katalvlaran/metroroute/network"
	"github.com/katalvlaran/metroroute/planner"
	"github.com/katalvlaran/metroroute/render"
)

const (
	exitOK = iota
	exitInternal
	exitUsage
	exitUnknownStation
	exitNoPath
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	config   string
	network  string
	format   string
	avoid    string
	maxCost  int64
	color    bool
	stations bool
	stops    bool
	logLevel string
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metroroute", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: metroroute [flags] START GOAL")
		fs.PrintDefaults()
	}

	var f cliFlags
	fs.StringVar(&f.config, "config", "", "YAML config file")
	fs.StringVar(&f.network, "network", "", "network file (csv or yaml); default is the embedded Vienna sample")
	fs.StringVar(&f.format, "format", "", "network format: csv or yaml (default from file extension)")
	fs.StringVar(&f.avoid, "avoid", "", "comma-separated lines to avoid")
	fs.Int64Var(&f.maxCost, "max-cost", 0, "longest acceptable route in minutes (0 = unlimited)")
	fs.BoolVar(&f.color, "color", false, "style the output for a terminal")
	fs.BoolVar(&f.stations, "stations", false, "list stations with their lines and exit")
	fs.BoolVar(&f.stops, "stops", false, "list intermediate stops")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitUsage
	}

	if !f.stations && fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}

	log := newLogger(stderr, cfg.LogLevel)

	g, err := loadNetwork(cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitInternal
	}

	if f.stations {
		return listStations(stdout, stderr, g)
	}
	start, goal := fs.Arg(0), fs.Arg(1)

	reg := metrics.NewRegistry()
	defer logMetrics(log, reg)

	p, err := planner.New(
		planner.WithLogger(log),
		planner.WithMetrics(reg),
		planner.WithCacheSize(cfg.CacheSize),
		planner.WithMaxCost(cfg.MaxCost),
		planner.WithAvoidLines(cfg.AvoidLines...),
	)
	if err != nil {
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitUsage
	}
	if err := p.Publish(g); err != nil {
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitInternal
	}

	it, err := p.Plan(start, goal)
	if err != nil {
		return reportPlanError(stderr, g, err)
	}

	opts := render.Options{ShowStops: f.stops}
	if cfg.Color {
		err = render.Styled(stdout, it, opts, lipgloss.NewRenderer(stdout))
	} else {
		err = render.Text(stdout, it, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitInternal
	}

	return exitOK
}

// loadConfig layers explicitly set flags over the config file over defaults.
func loadConfig(fs *flag.FlagSet, f cliFlags) (config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "network":
			cfg.Network = f.network
		case "format":
			cfg.Format = f.format
		case "avoid":
			cfg.AvoidLines = splitList(f.avoid)
		case "max-cost":
			cfg.MaxCost = f.maxCost
		case "color":
			cfg.Color = f.color
		case "log-level":
			cfg.LogLevel = f.logLevel
		}
	})

	return cfg, cfg.Validate()
}

// newLogger honours an explicit level, then LOG_LEVEL, then warn.
func newLogger(w io.Writer, level string) logging.Logger {
	if level == "" {
		return logging.NewFromEnv(w, logging.WarnLevel)
	}
	parsed, _ := logging.ParseLevel(level)

	return logging.NewJSONLogger(w, parsed)
}

// logMetrics writes one debug entry per collected metric family.
func logMetrics(log logging.Logger, reg *metrics.Registry) {
	families, err := reg.Gatherer().Gather()
	if err != nil {
		log.Warn("metrics unavailable", logging.Error(err))
		return
	}
	for _, mf := range families {
		var value float64
		samples := 0
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				value += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				value += m.GetHistogram().GetSampleSum()
				samples += int(m.GetHistogram().GetSampleCount())
			}
		}
		fields := []logging.Field{logging.String("name", mf.GetName()), logging.Float64("value", value)}
		if mf.GetType() == dto.MetricType_HISTOGRAM {
			fields = append(fields, logging.Count(samples))
		}
		log.Debug("metric", fields...)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func loadNetwork(cfg config.Config, log logging.Logger) (*core.Graph, error) {
	if cfg.Network == "" {
		log.Debug("using embedded sample network", logging.Component("cli"))
		return network.Sample(), nil
	}
	format, err := network.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	return network.Load(cfg.Network, network.WithFormat(format), network.WithLogger(log))
}

func listStations(stdout, stderr io.Writer, g *core.Graph) int {
	for _, s := range g.Stations() {
		lines, err := g.LinesAt(s)
		if err != nil {
			fmt.Fprintf(stderr, "metroroute: %v\n", err)
			return exitInternal
		}
		if len(lines) == 0 {
			fmt.Fprintln(stdout, s)
			continue
		}
		fmt.Fprintf(stdout, "%s (%s)\n", s, strings.Join(lines, ", "))
	}

	return exitOK
}

func reportPlanError(stderr io.Writer, g *core.Graph, err error) int {
	var nf *dijkstra.StationNotFoundError
	switch {
	case errors.As(err, &nf):
		fmt.Fprintf(stderr, "metroroute: unknown %s station %q\n", nf.Role, nf.Station)
		if hints := suggest(g, nf.Station); len(hints) > 0 {
			fmt.Fprintf(stderr, "did you mean: %s?\n", strings.Join(hints, ", "))
		}
		return exitUnknownStation
	case errors.Is(err, dijkstra.ErrNoPath):
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitNoPath
	default:
		fmt.Fprintf(stderr, "metroroute: %v\n", err)
		return exitInternal
	}
}

// suggest returns up to three stations whose names contain name, ignoring
// case.
func suggest(g *core.Graph, name string) []string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return nil
	}
	var out []string
	for _, s := range g.Stations() {
		if strings.Contains(strings.ToLower(s), needle) {
			out = append(out, s)
			if len(out) == 3 {
				break
			}
		}
	}

	return out
}
