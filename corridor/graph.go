// Package corridor implements a small weighted directed graph and a dense
// all-pairs-shortest-path solver, used internally by the Floyd explorer to
// run Floyd-Warshall over a compressed corridor graph (spec §4.C.6). The
// graph shape is carried over from the teacher's core.Graph, trimmed down
// to exactly what corridor compression needs: no multigraph/loop toggles.
// Parallel edges (two corridors joining the same pair of nodes) and
// self-loops (a corridor leading back to its own node) are stored as-is.
package corridor

import (
	"sync"

	"github.com/katalvlaran/mazelab/grid"
)

// Edge is a directed, weighted corridor between two nodes. Cells holds the
// full corridor walk from From to To inclusive, in visit order, so that a
// node-level path can later be expanded back into a cell-level path
// (spec §4.C.6 phase 3) without re-walking the grid.
type Edge struct {
	From, To uint32
	Weight   int
	Cells    []grid.Point
}

// Graph is a directed weighted graph over cell-key identified nodes
// (junctions, dead-ends, and the start/end endpoints — spec §4.C.6 phase 1).
// Safe for concurrent reads; writes are expected to happen once during
// compression, before any reader goroutine sees the graph, matching the
// teacher's core.Graph RWMutex discipline.
type Graph struct {
	mu       sync.RWMutex
	points   map[uint32]grid.Point
	order    []uint32 // insertion order, for deterministic iteration
	adjacent map[uint32][]*Edge
}

// NewGraph returns an empty corridor graph.
func NewGraph() *Graph {
	return &Graph{
		points:   make(map[uint32]grid.Point),
		adjacent: make(map[uint32][]*Edge),
	}
}

// AddVertex registers a node at key id with grid coordinates p. Re-adding
// an existing id is a no-op beyond updating its coordinate.
func (g *Graph) AddVertex(id uint32, p grid.Point) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.points[id]; !exists {
		g.order = append(g.order, id)
		g.adjacent[id] = nil
	}
	g.points[id] = p
}

// HasVertex reports whether id has been registered.
func (g *Graph) HasVertex(id uint32) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.points[id]
	return ok
}

// AddEdge appends a directed edge from→to. Both endpoints must already be
// registered via AddVertex; corridor compression always adds vertices
// before their edges, so this is not re-validated here.
func (g *Graph) AddEdge(from, to uint32, weight int, cells []grid.Point) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacent[from] = append(g.adjacent[from], &Edge{From: from, To: to, Weight: weight, Cells: cells})
}

// VertexIDs returns every registered vertex id in insertion order.
func (g *Graph) VertexIDs() []uint32 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]uint32, len(g.order))
	copy(out, g.order)
	return out
}

// VertexCount reports the number of registered vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Point returns the grid coordinate registered for id.
func (g *Graph) Point(id uint32) (grid.Point, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.points[id]
	return p, ok
}

// Neighbors returns the outgoing edges from id, in the order they were
// added (which corridor compression adds in the fixed right/left/down/up
// direction order, keeping Floyd's input deterministic).
func (g *Graph) Neighbors(id uint32) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.adjacent[id]))
	copy(out, g.adjacent[id])
	return out
}
