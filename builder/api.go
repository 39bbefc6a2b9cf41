package builder

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

// Constructor adds stations and connections to g using the resolved config.
type Constructor func(g *core.Graph, cfg config) error

// BuildNetwork creates an empty graph and applies cons in order. The first
// failing constructor aborts the build.
func BuildNetwork(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newConfig(opts...)
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}

// connect inserts one connection with a freshly drawn weight.
func connect(g *core.Graph, cfg config, method, a, b, line string) error {
	if err := g.AddConnection(a, b, cfg.weightFn(cfg.rng), line); err != nil {
		return fmt.Errorf("%s: %s–%s on %s: %w: %w", method, a, b, line, ErrConstructFailed, err)
	}

	return nil
}
