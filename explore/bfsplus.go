package explore

import (
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// DefaultKMax is the default bound on walls a BFS+ path may break, per
// spec §3 ("K_max = 3 by default, 4 logical layers").
const DefaultKMax = 3

type bfsPlusNode struct {
	X, Y, B int
}

// BFSPlus explores a FIFO queue over the 3-D keyspace (x, y, walls_broken)
// (spec §4.C.3 / §3 "Extended state for bounded wall-breaking"). Visiting
// (x,y) with b breaks is distinct from visiting it with b' breaks, so the
// same cell may be enqueued up to KMax+1 times at different break counts.
type BFSPlus struct {
	base

	// KMax bounds walls_broken; zero-value BFSPlus defaults to
	// DefaultKMax on first Update via ensureKMax.
	KMax int

	queue   []bfsPlusNode
	head    int
	visited map[uint32]struct{}
	parent  map[uint32]uint32
}

// NewBFSPlus constructs a BFS+ explorer over g with KMax = DefaultKMax.
// Override KMax directly before the first Update call to raise or lower
// the bound (spec §9 Open Question: "implementer MAY expose K_max").
func NewBFSPlus(g *grid.Grid) *BFSPlus {
	return &BFSPlus{base: base{Grid: g}, KMax: DefaultKMax}
}

// Strategy identifies this variant for stable cell-code painting.
func (e *BFSPlus) Strategy() gridcode.Strategy { return gridcode.BFSPlus }

func (e *BFSPlus) ensureKMax() {
	if e.KMax <= 0 {
		e.KMax = DefaultKMax
	}
}

// project3D converts a 3-D key back to its (x, y) position, discarding the
// walls-broken layer — the projection path reconstruction needs per spec
// §4.D ("for BFS+, project 3-D keys to (x,y) when emitting").
func (e *BFSPlus) project3D(key uint32) grid.Point {
	return e.Grid.Unkey3(key)
}

// Update performs exactly one logical step (spec §4.C).
func (e *BFSPlus) Update() {
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
		e.ensureKMax()
		startKey := e.Grid.Key3(e.Start.X, e.Start.Y, 0)
		e.queue = []bfsPlusNode{{X: e.Start.X, Y: e.Start.Y, B: 0}}
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
		curKey := e.Grid.Key3(cur.X, cur.Y, cur.B)

		e.way = append(e.way, PointInfo{X: cur.X, Y: cur.Y, Step: len(e.way), Distance: float64(cur.B)})
		e.tick++

		if cur.X == e.End.X && cur.Y == e.End.Y {
			startKey := e.Grid.Key3(e.Start.X, e.Start.Y, 0)
			e.path = reconstructPath(e.parent, startKey, curKey, e.project3D)
			e.found = true
			e.state = StateEnd
			return
		}

		for _, d := range grid.NeighborOffsets {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if !e.Grid.InBounds(nx, ny) {
				continue
			}
			nb := cur.B
			if e.Grid.IsWall(nx, ny) {
				nb++
			}
			if nb > e.KMax {
				continue
			}
			nk := e.Grid.Key3(nx, ny, nb)
			if _, seen := e.visited[nk]; seen {
				continue
			}
			e.visited[nk] = struct{}{}
			e.parent[nk] = curKey
			e.queue = append(e.queue, bfsPlusNode{X: nx, Y: ny, B: nb})
		}
	}
}
