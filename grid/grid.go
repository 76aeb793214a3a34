// Package grid implements the dense 2-D cell grid shared by the maze
// generator, the exploration engine, and the search orchestrator.
//
// The storage shape — a flat row-major slice addressed by y*W+x — and the
// precomputed-neighbor-offset idiom are carried over from the teacher's
// gridgraph.GridGraph, narrowed to this domain's 4-connectivity-only,
// wall/passable semantics (no Conn8, no land-threshold).
package grid

import (
	"fmt"

	"github.com/katalvlaran/mazelab/gridcode"
)

// Point is a single (x, y) coordinate.
type Point struct {
	X, Y int
}

// Grid is a dense W×H array of gridcode.Code, stored row-major so that
// Clone is a single slice copy and cache locality matches the teacher's
// Dense matrix storage.
type Grid struct {
	W, H int
	data []gridcode.Code
}

// New allocates a W×H grid with every cell set to gridcode.Wall.
// Generation always starts from an all-wall grid (spec §4.B).
func New(w, h int) *Grid {
	data := make([]gridcode.Code, w*h)
	for i := range data {
		data[i] = gridcode.Wall
	}
	return &Grid{W: w, H: h, data: data}
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// idx computes the flat row-major index for an in-bounds (x, y).
func (g *Grid) idx(x, y int) int {
	return y*g.W + x
}

// At returns the cell code at (x, y). Out-of-bounds reads return
// gridcode.Wall, matching IsWall's out-of-bounds-is-wall contract.
func (g *Grid) At(x, y int) gridcode.Code {
	if !g.InBounds(x, y) {
		return gridcode.Wall
	}
	return g.data[g.idx(x, y)]
}

// Set writes code at (x, y). It is a no-op outside bounds rather than a
// panic, since painting logic frequently probes neighbors near the edge.
func (g *Grid) Set(x, y int, code gridcode.Code) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[g.idx(x, y)] = code
}

// IsWall reports whether (x, y) is non-passable. Out-of-bounds cells are
// treated as walls (spec §4.A).
func (g *Grid) IsWall(x, y int) bool {
	return g.At(x, y) == gridcode.Wall
}

// Key computes the 2-D hash key y*W+x used by explorer visited/parent maps.
func (g *Grid) Key(x, y int) uint32 {
	return uint32(y*g.W + x)
}

// Key3 computes the 3-D hash key b*W*H + y*W + x used by BFS+'s
// (x, y, walls_broken) keyspace.
func (g *Grid) Key3(x, y int, b int) uint32 {
	return uint32(b*g.W*g.H) + uint32(y*g.W+x)
}

// Unkey is the inverse of Key, projecting a 2-D key back to a Point.
func (g *Grid) Unkey(key uint32) Point {
	return Point{X: int(key) % g.W, Y: int(key) / g.W}
}

// Unkey3 is the inverse of Key3, projecting a 3-D key back to its (x, y)
// position, discarding the walls_broken layer — exactly the "project 3-D
// keys to (x,y)" step spec §4.D requires for BFS+ path reconstruction.
func (g *Grid) Unkey3(key uint32) Point {
	plane := g.W * g.H
	pos := int(key) % plane
	return Point{X: pos % g.W, Y: pos / g.W}
}

// Clone deep-copies the grid. Explorer constructors keep the grid they are
// given without copying it; the orchestrator clones the input once for the
// explorers it drives and once more for its own render copy.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]gridcode.Code, len(g.data))}
	copy(out.data, g.data)
	return out
}

// String renders the grid as a debug-friendly ASCII block: '#' for walls,
// '.' for passable, and the code's decimal digit for anything painted.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.H*(g.W+1))
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			switch c := g.At(x, y); c {
			case gridcode.Wall:
				buf = append(buf, '#')
			case gridcode.Passable:
				buf = append(buf, '.')
			default:
				buf = append(buf, []byte(fmt.Sprintf("%d", c%10))...)
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// NeighborOffsetsDFS is the push order for DFS's explicit stack: pushing
// neighbors in this order and popping LIFO yields a visit order of
// left, up, right, down (spec §4.A).
var NeighborOffsetsDFS = [4][2]int{
	{0, 1},  // down
	{1, 0},  // right
	{0, -1}, // up
	{-1, 0}, // left
}

// NeighborOffsets is the fixed expansion order for every strategy other
// than DFS: right, left, down, up (spec §4.A).
var NeighborOffsets = [4][2]int{
	{1, 0},  // right
	{-1, 0}, // left
	{0, 1},  // down
	{0, -1}, // up
}
