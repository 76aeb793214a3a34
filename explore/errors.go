package explore

import "errors"

// Error kinds, short and user-visible, stable enough to match in tests
// (spec §7). Explorers write one of these into their own error field and
// move to StateEnd; they never panic or abort the process.
var (
	ErrEmptyGrid      = errors.New("Empty grid.")
	ErrWallEndpoint   = errors.New("Start/End is wall.")
	ErrOutOfRange     = errors.New("Out of range.")
	ErrNoPath         = errors.New("No path.")
	ErrCancelled      = errors.New("Cancelled.")
	ErrStepLimit      = errors.New("Search exceeded step limit.")
	ErrFloydNodeMap   = errors.New("Floyd: node map failed.")
	ErrFloydTooLarge  = errors.New("Floyd: graph too large")
	ErrFloydMemory    = errors.New("Floyd: memory too large for dist/next.")
	ErrFloydReconPath = errors.New("Floyd reconstruct failed.")
	ErrFloydCorridor  = errors.New("Floyd corridor missing.")
)
