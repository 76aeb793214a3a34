package orchestrate

import "github.com/katalvlaran/mazelab/grid"

// Stats is the per-strategy statistics record (spec §4.F). All three core
// fields are populated for every strategy even if it did not find a path;
// Rank is only meaningful when the orchestrator was run with
// gridcode.All — it is zero for a single-strategy run.
type Stats struct {
	PathLen int
	Visited int
	FoundAt int
	Rank    int
}

// Result is Run's return value: the overall outcome plus per-strategy
// statistics and, when requested via WithCapturePaths, per-strategy paths.
type Result struct {
	OK      bool
	Message string
	Stats   []Stats
	Paths   [][]grid.Point
}
