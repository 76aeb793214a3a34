package explore

import (
	"fmt"

	"github.com/katalvlaran/mazelab/corridor"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// DefaultFloydNodeCap is the compressed-graph node cap at the in-scope
// 71×71 size (spec §4.C.6: "Reject the graph if node count exceeds a cap
// (1,800 for 71×71)").
const DefaultFloydNodeCap = 1800

// DefaultFloydMemoryCapBytes bounds the combined dist+next matrix memory
// (spec §4.C.6: "O(n²) memory would exceed a cap (512 MiB)").
const DefaultFloydMemoryCapBytes = 512 * 1024 * 1024

// floydBytesPerCell is dist (float64, 8 bytes) plus next (int, 8 bytes on
// a 64-bit platform) for one Dense matrix cell.
const floydBytesPerCell = 16

// Floyd runs all-pairs shortest path on a corridor-compressed graph, in two
// phases: compute once (graph compression, Floyd-Warshall, node-path
// reconstruction, cell-path expansion — all inside the START→EXPLORE
// transition), then animate the precomputed cell path one cell per tick
// (spec §4.C.6).
type Floyd struct {
	base

	// NodeCap and MemoryCapBytes override the defaults; zero means use
	// the package defaults.
	NodeCap         int
	MemoryCapBytes  int64

	cellPath []grid.Point
	animIdx  int
}

// NewFloyd constructs a Floyd explorer over g with the default caps.
func NewFloyd(g *grid.Grid) *Floyd {
	return &Floyd{base: base{Grid: g}}
}

// Strategy identifies this variant for stable cell-code painting.
func (e *Floyd) Strategy() gridcode.Strategy { return gridcode.Floyd }

// Update performs exactly one logical step (spec §4.C.6 phase 4: one cell
// of animation per tick, after the one-time compute in the START
// transition).
func (e *Floyd) Update() {
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
		cellPath, err := e.compute()
		if err != nil {
			e.fail(err)
			return
		}
		e.cellPath = cellPath
		e.state = StateExplore
		e.tick++

	case StateExplore:
		if e.animIdx >= len(e.cellPath) {
			e.found = true
			e.path = make([]PointInfo, len(e.way))
			copy(e.path, e.way)
			e.state = StateEnd
			return
		}

		pt := e.cellPath[e.animIdx]
		e.animIdx++
		e.way = append(e.way, PointInfo{X: pt.X, Y: pt.Y, Step: len(e.way)})
		e.tick++
	}
}

// compute runs graph compression, Floyd-Warshall, and path expansion once,
// returning the full cell-level path from Start to End.
func (e *Floyd) compute() ([]grid.Point, error) {
	if e.Grid.W == 0 || e.Grid.H == 0 {
		return nil, ErrEmptyGrid
	}

	g, startID, endID, err := compressCorridors(e.Grid, e.Start, e.End)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	cap := e.NodeCap
	if cap <= 0 {
		cap = DefaultFloydNodeCap
	}
	if n > cap {
		return nil, fmt.Errorf("%w (n=%d, limit=%d).", ErrFloydTooLarge, n, cap)
	}

	memCap := e.MemoryCapBytes
	if memCap <= 0 {
		memCap = DefaultFloydMemoryCapBytes
	}
	if int64(n)*int64(n)*floydBytesPerCell > memCap {
		return nil, ErrFloydMemory
	}

	ids := g.VertexIDs()
	idIndex := make(map[uint32]int, n)
	for i, id := range ids {
		idIndex[id] = i
	}

	dense := corridor.NewDense(n)
	for _, id := range ids {
		for _, edge := range g.Neighbors(id) {
			dense.SetEdge(idIndex[id], idIndex[edge.To], float64(edge.Weight))
		}
	}

	if err := corridor.FloydWarshall(dense, e.Cancel); err != nil {
		return nil, ErrCancelled
	}

	si, ok := idIndex[startID]
	if !ok {
		return nil, ErrFloydNodeMap
	}
	ei, ok := idIndex[endID]
	if !ok {
		return nil, ErrFloydNodeMap
	}

	nodePath, ok := dense.ReconstructPath(si, ei)
	if !ok {
		return nil, ErrNoPath
	}

	cellPath, err := expandNodePath(g, ids, nodePath)
	if err != nil {
		return nil, err
	}
	return cellPath, nil
}

// expandNodePath concatenates the stored corridor segments along nodePath
// into one cell-level path, omitting the duplicated junction cell at each
// seam (spec §4.C.6 phase 3).
func expandNodePath(g *corridor.Graph, ids []uint32, nodePath []int) ([]grid.Point, error) {
	if len(nodePath) == 0 {
		return nil, ErrFloydReconPath
	}

	start, ok := g.Point(ids[nodePath[0]])
	if !ok {
		return nil, ErrFloydReconPath
	}
	out := []grid.Point{start}

	for i := 0; i < len(nodePath)-1; i++ {
		fromID, toID := ids[nodePath[i]], ids[nodePath[i+1]]

		// Parallel corridors may join the same pair of nodes; take the
		// lightest, the one whose weight Dense.SetEdge kept.
		var seg []grid.Point
		bestWeight := 0
		for _, e := range g.Neighbors(fromID) {
			if e.To == toID && (seg == nil || e.Weight < bestWeight) {
				seg, bestWeight = e.Cells, e.Weight
			}
		}
		if seg == nil {
			return nil, ErrFloydCorridor
		}
		out = append(out, seg[1:]...)
	}
	return out, nil
}
