package explore

import (
	"sync/atomic"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// base holds the fields every Explorer variant shares: the uniform output
// contract (way, path, found, error, state, tick) plus the mutable input
// fields the spec says are "set before first update()" (Start, End,
// Cancel). Strategy-specific frontier/visited/parent structures live on
// the concrete type that embeds base, not here.
type base struct {
	Grid  *grid.Grid
	Start grid.Point
	End   grid.Point

	// Cancel is the shared, process-internal cancellation flag (spec §3
	// Ownership: "neither side owns it exclusively"). Nil means never
	// cancelled.
	Cancel *atomic.Bool

	state State
	tick  uint32
	way   []PointInfo
	path  []PointInfo
	found bool
	err   error
}

// State returns the explorer's current lifecycle state.
func (b *base) State() State { return b.state }

// Tick returns the monotonic per-update() step counter.
func (b *base) Tick() uint32 { return b.tick }

// Way returns the exploration trajectory recorded so far.
func (b *base) Way() []PointInfo { return b.way }

// Path returns the reconstructed path, non-nil only once Found is true.
func (b *base) Path() []PointInfo { return b.path }

// Found reports whether the end cell has been reached.
func (b *base) Found() bool { return b.found }

// Err returns the terminal error, if any.
func (b *base) Err() error { return b.err }

// cancelled polls the shared flag; relaxed ordering is sufficient since
// cancellation is advisory (spec §5 "single-word atomic; relaxed ordering
// is sufficient").
func (b *base) cancelled() bool {
	return b.Cancel != nil && b.Cancel.Load()
}

// fail records err, moves to StateEnd, and leaves way/path untouched —
// explorers never clear a partially built trajectory on failure (spec §4.F:
// "visited reflects the full exhaustive exploration" even when not found).
func (b *base) fail(err error) {
	b.err = err
	b.state = StateEnd
}

// validateEndpoints checks that Start and End are both in-bounds and
// passable, per spec §4.C "validate endpoints (passable? both in-bounds?)".
func (b *base) validateEndpoints() error {
	for _, p := range [2]grid.Point{b.Start, b.End} {
		if !b.Grid.InBounds(p.X, p.Y) {
			return ErrOutOfRange
		}
		if b.Grid.IsWall(p.X, p.Y) {
			return ErrWallEndpoint
		}
	}
	return nil
}

// SetStart sets the start cell; set before the first Update call.
func (b *base) SetStart(p grid.Point) { b.Start = p }

// SetEnd sets the end cell; set before the first Update call.
func (b *base) SetEnd(p grid.Point) { b.End = p }

// SetCancel attaches the shared cancellation flag; set before the first
// Update call. Passing nil disables cancellation polling.
func (b *base) SetCancel(cancel *atomic.Bool) { b.Cancel = cancel }

// Explorer is the uniform contract every strategy variant satisfies (spec
// §4.C). Update advances exactly one logical step; the remaining methods
// are read-only accessors over output state set by prior Update calls.
// SetStart/SetEnd/SetCancel are the exported setters for the "mutable
// input fields" the spec says are set before the first Update call — the
// ALL meta-explorer wires its children through these rather than through
// the concrete struct fields, since it holds children as Explorer values.
type Explorer interface {
	Update()
	State() State
	Tick() uint32
	Way() []PointInfo
	Path() []PointInfo
	Found() bool
	Err() error
	Strategy() gridcode.Strategy
	SetStart(grid.Point)
	SetEnd(grid.Point)
	SetCancel(*atomic.Bool)
}
