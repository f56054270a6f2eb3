package gridgraph

import (
	"github.com/katalvlaran/gridorbit/bitgrid"
)

// From2D packs a rectangular grid into a Pattern: grid[y][x] ≥ 1 marks
// cell (row y, column x). The grid must be non-empty, rectangular, and at
// most 8×8.
func From2D(grid [][]int) (bitgrid.Pattern, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0, ErrEmptyGrid
	}
	width := len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return 0, ErrNonRectangular
		}
	}
	if len(grid) > bitgrid.MaxSize || width > bitgrid.MaxSize {
		return 0, ErrGridTooLarge
	}
	var p bitgrid.Pattern
	for y, row := range grid {
		for x, v := range row {
			if v >= 1 {
				p = p.With(y, x)
			}
		}
	}
	return p, nil
}
