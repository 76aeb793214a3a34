package explore

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// BFS explores with a FIFO queue, returning the shortest path in steps
// (spec §4.C.2).
type BFS struct {
	base

	queue   []grid.Point
	head    int
	visited map[uint32]struct{}
	parent  map[uint32]uint32
}

// NewBFS constructs a BFS explorer over g.
func NewBFS(g *grid.Grid) *BFS {
	return &BFS{base: base{Grid: g}}
}

// Strategy identifies this variant for stable cell-code painting.
func (e *BFS) Strategy() gridcode.Strategy { return gridcode.BFS }

// Update performs exactly one logical step (spec §4.C).
func (e *BFS) Update() {
	if e.state == StateEnd {
		return
	}
	if e.cancelled() {
		e.fail(ErrCancelled)
		return
	}

	switch e.state {
	case StateStart:
		if err := e.validateEndpoints(); err != nil {
			e.fail(err)
			return
		}
		startKey := e.Grid.Key(e.Start.X, e.Start.Y)
		e.queue = []grid.Point{e.Start}
		e.head = 0
		e.visited = map[uint32]struct{}{startKey: {}}
		e.parent = make(map[uint32]uint32)
		e.state = StateExplore
		e.tick++

	case StateExplore:
		if e.head >= len(e.queue) {
			e.fail(ErrNoPath)
			return
		}

		cur := e.queue[e.head]
		e.head++
		curKey := e.Grid.Key(cur.X, cur.Y)

		e.way = append(e.way, PointInfo{X: cur.X, Y: cur.Y, Step: len(e.way)})
		e.tick++

		if cur == e.End {
			startKey := e.Grid.Key(e.Start.X, e.Start.Y)
			e.path = reconstructPath(e.parent, startKey, curKey, e.Grid.Unkey)
			e.found = true
			e.state = StateEnd
			return
		}

		for _, d := range grid.NeighborOffsets {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if !e.Grid.InBounds(nx, ny) || e.Grid.IsWall(nx, ny) {
				continue
			}
			nk := e.Grid.Key(nx, ny)
			if _, seen := e.visited[nk]; seen {
				continue
			}
			e.visited[nk] = struct{}{}
			e.parent[nk] = curKey
			e.queue = append(e.queue, grid.Point{X: nx, Y: ny})
		}
	}
}
