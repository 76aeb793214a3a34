package explore_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/explore"
	"github.com/katalvlaran/mazelab/grid"
)

// runToEnd drives e.Update() until it reaches explore.StateEnd, with a
// generous safety bound so a broken explorer fails the test loudly instead
// of hanging the suite.
func runToEnd(t *testing.T, e explore.Explorer) {
	t.Helper()
	for i := 0; i < 100_000 && e.State() != explore.StateEnd; i++ {
		e.Update()
	}
	require.Equal(t, explore.StateEnd, e.State(), "explorer never reached END")
}

func TestDFSFindsScenario1Path(t *testing.T) {
	g := scenario1Grid()
	e := explore.NewDFS(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 3})
	runToEnd(t, e)

	require.True(t, e.Found())
	assert.Len(t, e.Path(), 7)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, grid.Point{X: e.Path()[0].X, Y: e.Path()[0].Y})
	last := e.Path()[len(e.Path())-1]
	assert.Equal(t, grid.Point{X: 1, Y: 3}, grid.Point{X: last.X, Y: last.Y})
}

func TestBFSFindsShortestScenario1Path(t *testing.T) {
	g := scenario1Grid()
	e := explore.NewBFS(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 3})
	runToEnd(t, e)

	require.True(t, e.Found())
	require.Len(t, e.Path(), 7)

	wantOrder := []grid.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 1, Y: 3}}
	for i, p := range e.Path() {
		assert.Equal(t, wantOrder[i], grid.Point{X: p.X, Y: p.Y}, "path[%d]", i)
	}
}

func TestDijkstraAndAStarMatchBFSLength(t *testing.T) {
	g := scenario1Grid()
	start, end := grid.Point{X: 1, Y: 1}, grid.Point{X: 1, Y: 3}

	bfs := explore.NewBFS(g)
	bfs.SetStart(start)
	bfs.SetEnd(end)
	runToEnd(t, bfs)

	dij := explore.NewDijkstra(g)
	dij.SetStart(start)
	dij.SetEnd(end)
	runToEnd(t, dij)

	astar := explore.NewAStar(g)
	astar.SetStart(start)
	astar.SetEnd(end)
	runToEnd(t, astar)

	require.True(t, dij.Found())
	require.True(t, astar.Found())
	assert.Len(t, dij.Path(), 7)
	assert.Len(t, astar.Path(), 7)
	assert.LessOrEqual(t, len(astar.Way()), len(bfs.Way()))
}

func TestBFSPlusFindsShortcutThroughWall(t *testing.T) {
	g := scenario1Grid()
	e := explore.NewBFSPlus(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 3})
	runToEnd(t, e)

	require.True(t, e.Found())
	assert.Len(t, e.Path(), 3)

	wallsOnPath := 0
	for _, p := range e.Path() {
		if g.IsWall(p.X, p.Y) {
			wallsOnPath++
		}
	}
	assert.Equal(t, 1, wallsOnPath)
	assert.LessOrEqual(t, wallsOnPath, explore.DefaultKMax)
}

func TestUnsolvableMazeReportsNoPath(t *testing.T) {
	// Two isolated single-cell rooms: (1,1) and (3,1), each walled off on
	// every side, so no strategy can reach one from the other.
	g := buildGrid([][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
	})
	e := explore.NewBFS(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 3, Y: 1})
	runToEnd(t, e)

	assert.False(t, e.Found())
	assert.ErrorIs(t, e.Err(), explore.ErrNoPath)
	assert.GreaterOrEqual(t, len(e.Way()), 1)
}

func TestEndpointIsWallFailsImmediately(t *testing.T) {
	g := scenario1Grid()
	e := explore.NewBFS(g)
	e.SetStart(grid.Point{X: 0, Y: 0}) // exterior wall
	e.SetEnd(grid.Point{X: 1, Y: 3})
	runToEnd(t, e)

	assert.False(t, e.Found())
	assert.ErrorIs(t, e.Err(), explore.ErrWallEndpoint)
}

func TestStartEqualsEndIsTrivialOneElementPath(t *testing.T) {
	g := scenario1Grid()
	e := explore.NewBFS(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 1})
	runToEnd(t, e)

	require.True(t, e.Found())
	require.Len(t, e.Path(), 1)
	require.Len(t, e.Way(), 1)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, grid.Point{X: e.Path()[0].X, Y: e.Path()[0].Y})
}

func TestCancellationEndsExplorerWithCancelledError(t *testing.T) {
	g := scenario1Grid()
	var cancel atomic.Bool

	e := explore.NewBFS(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 3})
	e.SetCancel(&cancel)

	e.Update() // START -> EXPLORE
	cancel.Store(true)
	e.Update() // should observe cancellation now

	assert.Equal(t, explore.StateEnd, e.State())
	assert.False(t, e.Found())
	assert.ErrorIs(t, e.Err(), explore.ErrCancelled)
}

func TestFloydFindsScenario1Path(t *testing.T) {
	g := scenario1Grid()
	e := explore.NewFloyd(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 3})
	runToEnd(t, e)

	require.True(t, e.Found())
	assert.GreaterOrEqual(t, len(e.Path()), 2)
	first, last := e.Path()[0], e.Path()[len(e.Path())-1]
	assert.Equal(t, grid.Point{X: 1, Y: 1}, grid.Point{X: first.X, Y: first.Y})
	assert.Equal(t, grid.Point{X: 1, Y: 3}, grid.Point{X: last.X, Y: last.Y})
}

func TestFloydStartEqualsEnd(t *testing.T) {
	g := buildGrid([][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	})
	e := explore.NewFloyd(g)
	e.SetStart(grid.Point{X: 1, Y: 1})
	e.SetEnd(grid.Point{X: 1, Y: 1})
	runToEnd(t, e)

	require.True(t, e.Found())
	require.Len(t, e.Way(), 1)
}

func TestAllProducesConsolidatedShortestResult(t *testing.T) {
	g := scenario1Grid()
	all := explore.NewAll(g)
	all.SetStart(grid.Point{X: 1, Y: 1})
	all.SetEnd(grid.Point{X: 1, Y: 3})

	for i := 0; i < 10_000 && all.State() != explore.StateEnd; i++ {
		all.Update()
	}
	require.Equal(t, explore.StateEnd, all.State())
	require.True(t, all.Found())
	// BFS+ breaks the wall at (1,2) for a 3-cell path; every other child
	// finds the 7-cell corridor, so BFS+ is the strictly shortest winner.
	assert.Len(t, all.Path(), 3)

	for _, c := range all.Children() {
		assert.Equal(t, explore.StateEnd, c.State())
	}
}
