package explore_test

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// buildGrid constructs a grid.Grid from a row-major 0/1 literal, matching
// the 5×5 scenarios in spec §8 verbatim (0 = passable, 1 = wall).
func buildGrid(rows [][]int) *grid.Grid {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	g := grid.New(w, h)
	for y, row := range rows {
		for x, v := range row {
			if v == 0 {
				g.Set(x, y, gridcode.Passable)
			} else {
				g.Set(x, y, gridcode.Wall)
			}
		}
	}
	return g
}

// scenario1Grid is spec §8 Scenario 1's 5×5 perfect maze.
func scenario1Grid() *grid.Grid {
	return buildGrid([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 0, 1},
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 1},
	})
}
