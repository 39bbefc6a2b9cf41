package builder

import (
	"fmt"

	"github.com/katalvlaran/metroroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 2
	gridIDFmt  = "%d,%d"
)

// Grid adds a rows×cols street-grid network. Stations are named "r,c"
// regardless of the ID scheme; row r is served by line "H<r>" and column c by
// "V<c>", so every station is a transfer point.
//
// Edge order: all rows first (west to east), then all columns (north to
// south).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewStations)
		}
		id := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

		for r := 0; r < rows; r++ {
			line := fmt.Sprintf("H%d", r)
			for c := 0; c+1 < cols; c++ {
				if err := connect(g, cfg, methodGrid, id(r, c), id(r, c+1), line); err != nil {
					return err
				}
			}
		}
		for c := 0; c < cols; c++ {
			line := fmt.Sprintf("V%d", c)
			for r := 0; r+1 < rows; r++ {
				if err := connect(g, cfg, methodGrid, id(r, c), id(r+1, c), line); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
