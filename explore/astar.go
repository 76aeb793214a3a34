package explore

import (
	"container/heap"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

type aStarItem struct {
	p grid.Point
	g float64
	f float64
}

type aStarPQ []aStarItem

func (pq aStarPQ) Len() int            { return len(pq) }
func (pq aStarPQ) Less(i, j int) bool  { return pq[i].f < pq[j].f }
func (pq aStarPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *aStarPQ) Push(x interface{}) { *pq = append(*pq, x.(aStarItem)) }
func (pq *aStarPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

func manhattan(a, b grid.Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// AStar explores a min-heap keyed on f = g + h, with h the Manhattan
// distance to End — admissible and consistent for a unit-cost 4-neighbor
// grid (spec §4.C.5). Settlement mechanics mirror Dijkstra exactly, with f
// ordering in place of raw distance, the same lazy decrease-key shape as
// the teacher's dijkstra.nodePQ.
type AStar struct {
	base

	open   aStarPQ
	gScore map[uint32]float64
	closed map[uint32]struct{}
	parent map[uint32]uint32
}

// NewAStar constructs an A* explorer over g.
func NewAStar(g *grid.Grid) *AStar {
	return &AStar{base: base{Grid: g}}
}

// Strategy identifies this variant for stable cell-code painting.
func (e *AStar) Strategy() gridcode.Strategy { return gridcode.AStar }

// Update performs exactly one logical step: one settlement (spec §4.C.5).
func (e *AStar) Update() {
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
		e.open = aStarPQ{{p: e.Start, g: 0, f: manhattan(e.Start, e.End)}}
		heap.Init(&e.open)
		e.gScore = map[uint32]float64{startKey: 0}
		e.closed = make(map[uint32]struct{})
		e.parent = make(map[uint32]uint32)
		e.state = StateExplore
		e.tick++

	case StateExplore:
		var cur aStarItem
		settled := false
		for e.open.Len() > 0 {
			cur = heap.Pop(&e.open).(aStarItem)
			curKey := e.Grid.Key(cur.p.X, cur.p.Y)
			if _, done := e.closed[curKey]; done {
				continue
			}
			e.closed[curKey] = struct{}{}
			settled = true
			break
		}

		e.tick++
		if !settled {
			e.fail(ErrNoPath)
			return
		}

		curKey := e.Grid.Key(cur.p.X, cur.p.Y)
		e.way = append(e.way, PointInfo{X: cur.p.X, Y: cur.p.Y, Step: len(e.way), Distance: cur.g})

		if cur.p == e.End {
			startKey := e.Grid.Key(e.Start.X, e.Start.Y)
			e.path = reconstructPath(e.parent, startKey, curKey, e.Grid.Unkey)
			e.found = true
			e.state = StateEnd
			return
		}

		for _, d := range grid.NeighborOffsets {
			nx, ny := cur.p.X+d[0], cur.p.Y+d[1]
			if !e.Grid.InBounds(nx, ny) || e.Grid.IsWall(nx, ny) {
				continue
			}
			nk := e.Grid.Key(nx, ny)
			if _, done := e.closed[nk]; done {
				continue
			}
			tentativeG := cur.g + 1
			if old, ok := e.gScore[nk]; !ok || tentativeG < old {
				e.gScore[nk] = tentativeG
				e.parent[nk] = curKey
				np := grid.Point{X: nx, Y: ny}
				heap.Push(&e.open, aStarItem{p: np, g: tentativeG, f: tentativeG + manhattan(np, e.End)})
			}
		}
	}
}
