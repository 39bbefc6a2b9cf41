package builder

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

const methodRandomLines = "RandomLines"

// RandomLines adds lines "R0".."R<lines-1>", each visiting stops distinct
// stations drawn from a pool of the first pool station IDs. Overlapping draws
// become transfer stations; stations never drawn are not added.
//
// Requires WithSeed or WithRand.
func RandomLines(lines, stops, pool int) Constructor {
	return func(g *core.Graph, cfg config) error {
		switch {
		case cfg.rng == nil:
			return fmt.Errorf("%s: %w", methodRandomLines, ErrNeedRandSource)
		case lines < 1 || stops < minLineLen || pool < stops:
			return fmt.Errorf("%s: lines=%d stops=%d pool=%d (need lines ≥ 1, stops ≥ %d, pool ≥ stops): %w",
				methodRandomLines, lines, stops, pool, minLineLen, ErrTooFewStations)
		}

		for l := 0; l < lines; l++ {
			name := fmt.Sprintf("R%d", l)
			route := cfg.rng.Perm(pool)[:stops]
			for i := 0; i+1 < len(route); i++ {
				if err := connect(g, cfg, methodRandomLines, cfg.idFn(route[i]), cfg.idFn(route[i+1]), name); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
