package orchestrate

import (
	"time"

	"github.com/katalvlaran/mazelab/explore"
	"github.com/katalvlaran/mazelab/grid"
)

// Options configures Run. The functional-option shape mirrors
// maze.Options/maze.Option and the teacher's bfs.Option/dijkstra.Option.
type Options struct {
	UpdateEvery   uint32
	Delay         time.Duration
	Baseline      *grid.Grid
	KMax          int
	CapturePaths  bool
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns update_every=1, delay=0, no baseline (render
// starts from the input maze), K_max=explore.DefaultKMax, paths not
// captured.
func DefaultOptions() Options {
	return Options{
		UpdateEvery: 1,
		Delay:       0,
		KMax:        explore.DefaultKMax,
	}
}

// WithUpdateEvery sets the number of newly painted cells between callback
// emissions. Zero is coerced to 1 (spec §4.G: "update_every ∈ {1, 2, …}.
// Zero is coerced to 1.").
func WithUpdateEvery(n uint32) Option {
	return func(o *Options) {
		if n == 0 {
			n = 1
		}
		o.UpdateEvery = n
	}
}

// WithDelay sets the pacing sleep between callback emissions.
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

// WithBaseline sets the grid the render copy starts from, instead of the
// input maze itself (spec §4.E responsibility 3).
func WithBaseline(g *grid.Grid) Option {
	return func(o *Options) { o.Baseline = g }
}

// WithKMax overrides BFS+'s wall-break bound (spec §9 Open Question).
func WithKMax(k int) Option {
	return func(o *Options) { o.KMax = k }
}

// WithCapturePaths requests that Result.Paths be populated with each
// strategy's reconstructed path, in addition to the length recorded in
// Stats — an addition beyond spec.md's bare statistics record (SPEC_FULL.md
// §9), for a comparison UI to actually draw each route.
func WithCapturePaths() Option {
	return func(o *Options) { o.CapturePaths = true }
}
