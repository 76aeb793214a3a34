package explore

import (
	"container/heap"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// dijkstraItem is one entry in the open-set heap: a candidate distance to
// a cell at the time it was pushed. Stale duplicates (pushed before a
// cheaper distance was found) are skipped on pop via the closed set — the
// lazy decrease-key pattern from the teacher's dijkstra.nodePQ.
type dijkstraItem struct {
	p    grid.Point
	dist float64
}

type dijkstraPQ []dijkstraItem

func (pq dijkstraPQ) Len() int            { return len(pq) }
func (pq dijkstraPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq dijkstraPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *dijkstraPQ) Push(x interface{}) { *pq = append(*pq, x.(dijkstraItem)) }
func (pq *dijkstraPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Dijkstra explores a min-heap keyed on distance, settling exactly one node
// per tick (spec §4.C.4). Edge weight is always 1 (unit-cost grid); it is
// written out explicitly rather than assumed, mirroring the teacher's
// dijkstra.Option weight-function hook even though this domain needs no
// per-edge override.
type Dijkstra struct {
	base

	open     dijkstraPQ
	dist     map[uint32]float64
	closed   map[uint32]struct{}
	parent   map[uint32]uint32
}

// NewDijkstra constructs a Dijkstra explorer over g.
func NewDijkstra(g *grid.Grid) *Dijkstra {
	return &Dijkstra{base: base{Grid: g}}
}

// Strategy identifies this variant for stable cell-code painting.
func (e *Dijkstra) Strategy() gridcode.Strategy { return gridcode.Dijkstra }

// Update performs exactly one logical step: one settlement (spec §4.C.4).
func (e *Dijkstra) Update() {
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
		e.open = dijkstraPQ{{p: e.Start, dist: 0}}
		heap.Init(&e.open)
		e.dist = map[uint32]float64{startKey: 0}
		e.closed = make(map[uint32]struct{})
		e.parent = make(map[uint32]uint32)
		e.state = StateExplore
		e.tick++

	case StateExplore:
		var cur dijkstraItem
		settled := false
		for e.open.Len() > 0 {
			cur = heap.Pop(&e.open).(dijkstraItem)
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
		e.way = append(e.way, PointInfo{X: cur.p.X, Y: cur.p.Y, Step: len(e.way), Distance: cur.dist})

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
			newDist := cur.dist + 1
			if old, ok := e.dist[nk]; !ok || newDist < old {
				e.dist[nk] = newDist
				e.parent[nk] = curKey
				heap.Push(&e.open, dijkstraItem{p: grid.Point{X: nx, Y: ny}, dist: newDist})
			}
		}
	}
}
