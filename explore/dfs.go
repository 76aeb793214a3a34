package explore

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// DFS explores with an explicit stack of grid.Point, the iterative
// recursive-backtracker shape from original_source's DFSExploer::update
// (Exploer.cpp), re-expressed as one logical step per Update call instead
// of a tight internal loop. Returns the first path found, not necessarily
// shortest (spec §4.C.1).
type DFS struct {
	base

	stack   []grid.Point
	visited map[uint32]struct{}
	parent  map[uint32]uint32
}

// NewDFS constructs a DFS explorer over g. Start, End, and Cancel must be
// set before the first Update call.
func NewDFS(g *grid.Grid) *DFS {
	return &DFS{base: base{Grid: g}}
}

// Strategy identifies this variant for stable cell-code painting.
func (e *DFS) Strategy() gridcode.Strategy { return gridcode.DFS }

// Update performs exactly one logical step (spec §4.C).
func (e *DFS) Update() {
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
		e.stack = []grid.Point{e.Start}
		e.visited = map[uint32]struct{}{startKey: {}}
		e.parent = make(map[uint32]uint32)
		e.state = StateExplore
		e.tick++

	case StateExplore:
		if len(e.stack) == 0 {
			e.fail(ErrNoPath)
			return
		}

		cur := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]
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

		for _, d := range grid.NeighborOffsetsDFS {
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
			e.stack = append(e.stack, grid.Point{X: nx, Y: ny})
		}
	}
}
