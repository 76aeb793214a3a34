// Package orchestrate implements the search orchestrator: it drives one
// strategy (or all six in lock-step) against a maze snapshot, paints
// per-strategy exploration and path artifacts onto a render copy using the
// stable cell-code scheme, throttles frame emission, and collects
// comparative statistics (spec §4.E, §4.F, §4.G).
package orchestrate

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/mazelab/explore"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

// lane pairs a driven explorer with the strategy its output paints under —
// a child of the ALL meta-explorer, or the single explorer in
// single-strategy mode.
type lane struct {
	explorer explore.Explorer
	strategy gridcode.Strategy
	painted  int // count of e.Way() entries already reflected in the render grid
}

// Run drives strategy (or every base strategy, for gridcode.All) against
// maze m from start to end, painting visited cells and the final path onto
// a render copy that is periodically handed to onStep, and returns the
// outcome plus per-strategy statistics (spec §4.E).
func Run(m *grid.Grid, start, end grid.Point, strategy gridcode.Strategy,
	onStep func(*grid.Grid), cancel *atomic.Bool, opts ...Option) (Result, error) {

	if m.W <= 0 || m.H <= 0 {
		return Result{}, explore.ErrEmptyGrid
	}
	if !m.InBounds(start.X, start.Y) || !m.InBounds(end.X, end.Y) {
		return Result{}, explore.ErrOutOfRange
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	render := m.Clone()
	if o.Baseline != nil {
		render = o.Baseline.Clone()
	}
	searchGrid := m.Clone()

	driver, lanes, err := buildLanes(strategy, searchGrid, o.KMax)
	if err != nil {
		return Result{}, err
	}
	driver.SetStart(start)
	driver.SetEnd(end)
	driver.SetCancel(cancel)

	limit := uint32(m.W*m.H) * 32
	if strategy == gridcode.All {
		limit = uint32(m.W*m.H) * 64
	}

	var ticks uint32
	paintedSinceEmit := uint32(0)

loop:
	for {
		if cancel != nil && cancel.Load() {
			break loop
		}
		if driver.State() == explore.StateEnd {
			break loop
		}

		driver.Update()
		ticks++
		if ticks > limit {
			return Result{}, explore.ErrStepLimit
		}

		for i := range lanes {
			paintedSinceEmit += paintNewVisited(render, &lanes[i])
		}

		if paintedSinceEmit >= o.UpdateEvery {
			onStep(render)
			paintedSinceEmit = 0
			if o.Delay > 0 {
				time.Sleep(o.Delay)
			}
		}
	}

	// A cancellation observed here takes precedence over any partial
	// success: it is the orchestrator's own terminal reason, not an
	// explorer's (spec §7: "propagates the explorer's error... unless it
	// has its own (e.g., cancellation)"). Paths are not painted after a
	// cancellation, but statistics are still filled below.
	cancelled := cancel != nil && cancel.Load()

	anyFound := false
	for _, l := range lanes {
		if l.explorer.Found() {
			anyFound = true
			if !cancelled {
				paintPath(render, l.explorer.Path(), l.strategy)
			}
		}
	}
	onStep(render)

	stats := make([]Stats, len(lanes))
	var paths [][]grid.Point
	if o.CapturePaths {
		paths = make([][]grid.Point, len(lanes))
	}
	for i, l := range lanes {
		s := Stats{Visited: len(l.explorer.Way())}
		if l.explorer.Found() {
			s.PathLen = len(l.explorer.Path())
			s.FoundAt = len(l.explorer.Way()) - 1
		} else {
			s.PathLen = -1
			s.FoundAt = -1
		}
		stats[i] = s

		if o.CapturePaths {
			pts := make([]grid.Point, len(l.explorer.Path()))
			for j, pi := range l.explorer.Path() {
				pts[j] = grid.Point{X: pi.X, Y: pi.Y}
			}
			paths[i] = pts
		}
	}
	if strategy == gridcode.All {
		assignRanks(stats)
	}

	if cancelled {
		return Result{OK: false, Message: explore.ErrCancelled.Error(), Stats: stats, Paths: paths}, nil
	}

	message := ""
	if !anyFound {
		if len(lanes) == 1 {
			message = lanes[0].explorer.Err().Error()
		} else {
			message = explore.ErrNoPath.Error()
		}
	}

	return Result{OK: anyFound, Message: message, Stats: stats, Paths: paths}, nil
}

// buildLanes constructs the driven explorer (and its painting lanes) for
// strategy: the ALL meta-explorer and its six children, or a single
// explorer and its one lane.
func buildLanes(strategy gridcode.Strategy, g *grid.Grid, kmax int) (explore.Explorer, []lane, error) {
	if strategy == gridcode.All {
		all := explore.NewAll(g)
		for _, c := range all.Children() {
			if bp, ok := c.(*explore.BFSPlus); ok {
				bp.KMax = kmax
			}
		}
		lanes := make([]lane, len(all.Children()))
		for i, c := range all.Children() {
			lanes[i] = lane{explorer: c, strategy: c.Strategy()}
		}
		return all, lanes, nil
	}

	exp, err := newSingleExplorer(strategy, g, kmax)
	if err != nil {
		return nil, nil, err
	}
	return exp, []lane{{explorer: exp, strategy: strategy}}, nil
}

func newSingleExplorer(strategy gridcode.Strategy, g *grid.Grid, kmax int) (explore.Explorer, error) {
	switch strategy {
	case gridcode.DFS:
		return explore.NewDFS(g), nil
	case gridcode.BFS:
		return explore.NewBFS(g), nil
	case gridcode.BFSPlus:
		e := explore.NewBFSPlus(g)
		e.KMax = kmax
		return e, nil
	case gridcode.Dijkstra:
		return explore.NewDijkstra(g), nil
	case gridcode.AStar:
		return explore.NewAStar(g), nil
	case gridcode.Floyd:
		return explore.NewFloyd(g), nil
	default:
		return nil, fmt.Errorf("orchestrate: unknown strategy %v", strategy)
	}
}

// paintNewVisited paints any way entries appended since the last call for
// this lane, and returns how many cells were actually newly painted (for
// the emit throttle — spec §4.E responsibility 5 counts painted cells, not
// ticks).
func paintNewVisited(render *grid.Grid, l *lane) uint32 {
	way := l.explorer.Way()
	var painted uint32
	for ; l.painted < len(way); l.painted++ {
		p := way[l.painted]
		if paintVisitedCell(render, p.X, p.Y, l.strategy.VisitedCode()) {
			painted++
		}
	}
	return painted
}

// paintVisitedCell writes code onto the render grid at (x, y), unless the
// cell is a wall (never overwritten during the visited phase — spec §8
// invariant 1) or already painted by an earlier-arriving strategy
// (first-come-wins in ALL mode, spec §4.E responsibility 4). Returns
// whether it actually wrote something new.
func paintVisitedCell(render *grid.Grid, x, y int, code gridcode.Code) bool {
	if !render.InBounds(x, y) || render.IsWall(x, y) {
		return false
	}
	if render.At(x, y) != gridcode.Passable {
		return false
	}
	render.Set(x, y, code)
	return true
}

// paintPath stamps path's cells with strategy's path code, walls-preserving
// except BFS+'s WallOnPath overlay marker for any wall cell the path breaks
// through (spec §4.E responsibility 7).
func paintPath(render *grid.Grid, path []explore.PointInfo, strategy gridcode.Strategy) {
	for _, pi := range path {
		if render.IsWall(pi.X, pi.Y) {
			if strategy == gridcode.BFSPlus {
				render.Set(pi.X, pi.Y, gridcode.WallOnPath)
			}
			continue
		}
		render.Set(pi.X, pi.Y, strategy.PathCode())
	}
}

// assignRanks orders stats by first-hit tick ascending, then path length,
// then visited count, then fixed strategy index (spec §4.E responsibility
// 8), writing a 1-based rank into each entry.
func assignRanks(stats []Stats) {
	order := make([]int, len(stats))
	for i := range order {
		order[i] = i
	}

	key := func(s Stats) (int, int) {
		foundAt, pathLen := s.FoundAt, s.PathLen
		if foundAt < 0 {
			foundAt = math.MaxInt32
		}
		if pathLen < 0 {
			pathLen = math.MaxInt32
		}
		return foundAt, pathLen
	}

	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		fa, la := key(stats[ia])
		fb, lb := key(stats[ib])
		if fa != fb {
			return fa < fb
		}
		if la != lb {
			return la < lb
		}
		if stats[ia].Visited != stats[ib].Visited {
			return stats[ia].Visited < stats[ib].Visited
		}
		return ia < ib
	})

	for rank, idx := range order {
		stats[idx].Rank = rank + 1
	}
}
