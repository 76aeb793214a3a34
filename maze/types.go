// Package maze implements the randomized maze generator: DFS carving, room
// insertion, and braiding over a dense grid.Grid (spec §4.B), plus a
// connectivity diagnostic used by Generate's self-check and by tests.
package maze

import (
	"errors"

	"github.com/katalvlaran/mazelab/grid"
)

// Size is the sole in-scope maze dimension (spec §4.B: "Width = height = 71
// (single size in scope)").
const Size = 71

// ErrInvalidSize is returned when a size below the minimum carvable size is
// requested. The generator itself cannot fail for size >= 5 (spec §4.B); an
// invalid size is a configuration error the caller made.
var ErrInvalidSize = errors.New("maze: size must be >= 5")

// ErrDisconnectedMaze indicates the generator produced more than one
// connected component of passable cells. Per spec §3 this can never happen
// for a correct generator; it is a defensive check against regressions.
var ErrDisconnectedMaze = errors.New("maze: generated grid is not a single connected component")

// Maze owns the generated grid together with the seed and size used to
// produce it (spec §3 "Maze... Owns the grid, a size tag... and the seed").
type Maze struct {
	Size int
	Seed int32
	Grid *grid.Grid

	routeCount int // braid openings actually applied; see RouteCount.
}

// Start returns the maze's default start cell, (1, 1).
func (m *Maze) Start() grid.Point { return grid.Point{X: 1, Y: 1} }

// End returns the maze's default end cell, (W-2, H-2).
func (m *Maze) End() grid.Point { return grid.Point{X: m.Grid.W - 2, Y: m.Grid.H - 2} }

// RouteCount returns the number of braid openings actually carved beyond the
// perfect maze produced by DFS carving — a cheap proxy for "multiple loops
// exist" (spec §3 invariant), since a perfect maze has exactly zero.
func (m *Maze) RouteCount() int { return m.routeCount }

// ConnectedComponents reports the number of connected components of
// passable cells in the finished grid, via a single O(W·H) union-find sweep
// (see connectivity.go). A correctly generated maze always reports 1.
func (m *Maze) ConnectedComponents() int {
	w, h := m.Grid.W, m.Grid.H
	uf := newUnionFind(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Grid.IsWall(x, y) {
				continue
			}
			idx := y*w + x
			// Union with right and down neighbors only: every adjacency is
			// visited exactly once this way over the full grid sweep.
			if x+1 < w && !m.Grid.IsWall(x+1, y) {
				uf.union(idx, y*w+(x+1))
			}
			if y+1 < h && !m.Grid.IsWall(x, y+1) {
				uf.union(idx, (y+1)*w+x)
			}
		}
	}

	roots := make(map[int]struct{})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.Grid.IsWall(x, y) {
				continue
			}
			roots[uf.find(y*w+x)] = struct{}{}
		}
	}
	return len(roots)
}
