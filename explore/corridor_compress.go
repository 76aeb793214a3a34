package explore

import (
	"github.com/katalvlaran/mazelab/corridor"
	"github.com/katalvlaran/mazelab/grid"
)

// compressCorridors builds the corridor graph used by Floyd (spec §4.C.6
// phase 1): a node is any passable cell that is start, end, or whose
// walk-degree is not 2 (a dead-end or junction); every straight-through
// corridor between two nodes becomes one weighted edge carrying its full
// cell walk, so the final path can be expanded back without re-walking the
// grid.
func compressCorridors(g *grid.Grid, start, end grid.Point) (graph *corridor.Graph, startID, endID uint32, err error) {
	if g.W <= 0 || g.H <= 0 {
		return nil, 0, 0, ErrEmptyGrid
	}

	nodeKeys := make(map[uint32]struct{})
	var nodeOrder []uint32 // row-major discovery order, so the graph is built deterministically
	addNode := func(key uint32) {
		if _, ok := nodeKeys[key]; !ok {
			nodeKeys[key] = struct{}{}
			nodeOrder = append(nodeOrder, key)
		}
	}
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if g.IsWall(x, y) {
				continue
			}
			p := grid.Point{X: x, Y: y}
			if p == start || p == end || walkDegree(g, x, y) != 2 {
				addNode(g.Key(x, y))
			}
		}
	}
	addNode(g.Key(start.X, start.Y))
	addNode(g.Key(end.X, end.Y))

	graph = corridor.NewGraph()
	for _, key := range nodeOrder {
		graph.AddVertex(key, g.Unkey(key))
	}

	for _, key := range nodeOrder {
		from := g.Unkey(key)
		for _, d := range grid.NeighborOffsets {
			target, cells, ok := walkCorridor(g, nodeKeys, from, d)
			if !ok {
				continue
			}
			graph.AddEdge(key, g.Key(target.X, target.Y), len(cells), cells)
		}
	}

	if graph.VertexCount() == 0 {
		return nil, 0, 0, ErrFloydNodeMap
	}
	return graph, g.Key(start.X, start.Y), g.Key(end.X, end.Y), nil
}

// walkDegree counts the 4-adjacent passable neighbors of a passable cell.
func walkDegree(g *grid.Grid, x, y int) int {
	degree := 0
	for _, d := range grid.NeighborOffsets {
		if !g.IsWall(x+d[0], y+d[1]) {
			degree++
		}
	}
	return degree
}

// walkCorridor follows the single corridor exiting from in direction dir,
// excluding the previous cell at each step, until another node is reached
// (inclusive). ok is false if dir does not lead into a passable cell at
// all (a wall or out of bounds immediately).
func walkCorridor(g *grid.Grid, nodeKeys map[uint32]struct{}, from grid.Point, dir [2]int) (target grid.Point, cells []grid.Point, ok bool) {
	nx, ny := from.X+dir[0], from.Y+dir[1]
	if !g.InBounds(nx, ny) || g.IsWall(nx, ny) {
		return grid.Point{}, nil, false
	}

	prev := from
	cur := grid.Point{X: nx, Y: ny}
	cells = []grid.Point{from, cur}

	for {
		if _, isNode := nodeKeys[g.Key(cur.X, cur.Y)]; isNode {
			return cur, cells, true
		}
		next, found := nextCorridorCell(g, cur, prev)
		if !found {
			return grid.Point{}, nil, false
		}
		prev = cur
		cur = next
		cells = append(cells, cur)
	}
}

// nextCorridorCell returns the sole passable neighbor of cur other than
// prev, which exists by construction for any non-node cell (walk-degree
// exactly 2).
func nextCorridorCell(g *grid.Grid, cur, prev grid.Point) (grid.Point, bool) {
	for _, d := range grid.NeighborOffsets {
		nx, ny := cur.X+d[0], cur.Y+d[1]
		if nx == prev.X && ny == prev.Y {
			continue
		}
		if g.InBounds(nx, ny) && !g.IsWall(nx, ny) {
			return grid.Point{X: nx, Y: ny}, true
		}
	}
	return grid.Point{}, false
}
