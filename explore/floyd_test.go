package explore_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/explore"
	"github.com/katalvlaran/mazelab/grid"
)

func TestFloydRejectsGraphExceedingNodeCap(t *testing.T) {
	g := scenario1Grid()
	e := explore.NewFloyd(g)
	e.NodeCap = 1 // force the cap below this grid's actual node count
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 3})
	runToEnd(t, e)

	assert.False(t, e.Found())
	require.Error(t, e.Err())
	assert.Contains(t, e.Err().Error(), "graph too large")
}

func TestFloydCancellationBeforeCompute(t *testing.T) {
	g := scenario1Grid()
	var cancel atomic.Bool
	cancel.Store(true)

	e := explore.NewFloyd(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 3})
	e.SetCancel(&cancel)

	e.Update() // cancellation is polled at the start of Update, before compute runs
	assert.Equal(t, explore.StateEnd, e.State())
	assert.ErrorIs(t, e.Err(), explore.ErrCancelled)
}
