package explore

import (
	"sync/atomic"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// All owns one instance of each of the six base strategies, advancing
// every non-ended child by one step per Update call, and produces a
// consolidated best result: the child with Found and the strictly shortest
// reconstructed path, ties broken by fixed strategy order — DFS, BFS,
// BFS+, Dijkstra, A*, Floyd (spec §4.C.7).
type All struct {
	grid     *grid.Grid
	start    grid.Point
	end      grid.Point
	cancel   *atomic.Bool
	children []Explorer
	state    State
	tick     uint32
}

// NewAll constructs an ALL meta-explorer over g with one child per base
// strategy, in the fixed advance order the spec mandates.
func NewAll(g *grid.Grid) *All {
	return &All{
		grid: g,
		children: []Explorer{
			NewDFS(g),
			NewBFS(g),
			NewBFSPlus(g),
			NewDijkstra(g),
			NewAStar(g),
			NewFloyd(g),
		},
	}
}

// Children returns the six base explorers in fixed advance order, for the
// orchestrator to read per-strategy statistics and paths from.
func (e *All) Children() []Explorer { return e.children }

// Strategy reports gridcode.All, the selector value (not a paintable
// per-strategy code).
func (e *All) Strategy() gridcode.Strategy { return gridcode.All }

// SetStart propagates the start cell to every child.
func (e *All) SetStart(p grid.Point) {
	e.start = p
	for _, c := range e.children {
		c.SetStart(p)
	}
}

// SetEnd propagates the end cell to every child.
func (e *All) SetEnd(p grid.Point) {
	e.end = p
	for _, c := range e.children {
		c.SetEnd(p)
	}
}

// SetCancel propagates the shared cancellation flag to every child.
func (e *All) SetCancel(cancel *atomic.Bool) {
	e.cancel = cancel
	for _, c := range e.children {
		c.SetCancel(cancel)
	}
}

// State reports StateEnd once every child has ended, StateStart before the
// first Update, and StateExplore otherwise.
func (e *All) State() State { return e.state }

// Tick returns the number of Update calls this meta-explorer has received.
func (e *All) Tick() uint32 { return e.tick }

// Update advances every child that has not yet reached StateEnd by exactly
// one step, then re-evaluates aggregate state.
func (e *All) Update() {
	if e.state == StateEnd {
		return
	}

	e.tick++
	allEnded := true
	for _, c := range e.children {
		if c.State() != StateEnd {
			c.Update()
		}
		if c.State() != StateEnd {
			allEnded = false
		}
	}

	if allEnded {
		e.state = StateEnd
	} else {
		e.state = StateExplore
	}
}

// Way returns the winning child's trajectory, or nil while no child has
// found a path.
func (e *All) Way() []PointInfo {
	if w := e.winner(); w != nil {
		return w.Way()
	}
	return nil
}

// Path returns the winning child's reconstructed path, or nil if no child
// ever found one.
func (e *All) Path() []PointInfo {
	if w := e.winner(); w != nil {
		return w.Path()
	}
	return nil
}

// Found reports whether at least one child found a path.
func (e *All) Found() bool { return e.winner() != nil }

// Err returns nil if any child found a path (partial success, spec §7);
// otherwise the first child's error, as a representative failure reason.
func (e *All) Err() error {
	if e.winner() != nil {
		return nil
	}
	if len(e.children) > 0 {
		return e.children[0].Err()
	}
	return nil
}

// winner returns the child with Found() true and the strictly shortest
// Path, ties broken by fixed child order (spec §4.C.7).
func (e *All) winner() Explorer {
	var best Explorer
	bestLen := -1
	for _, c := range e.children {
		if !c.Found() {
			continue
		}
		l := len(c.Path())
		if best == nil || l < bestLen {
			best = c
			bestLen = l
		}
	}
	return best
}
