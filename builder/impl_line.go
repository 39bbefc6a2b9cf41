package builder

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

const (
	methodLine = "Line"
	minLineLen = 2
)

// Line adds a single line through stations first .. first+n-1 in index order.
// Lines sharing indices share stations, which is how transfers are modeled.
func Line(name string, first, n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minLineLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodLine, n, minLineLen, ErrTooFewStations)
		}
		if name == "" || first < 0 {
			return fmt.Errorf("%s: name=%q first=%d: %w", methodLine, name, first, ErrConstructFailed)
		}
		for i := first; i < first+n-1; i++ {
			if err := connect(g, cfg, methodLine, cfg.idFn(i), cfg.idFn(i+1), name); err != nil {
				return err
			}
		}

		return nil
	}
}
