package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/gridcode"
	"github.com/katalvlaran/mazelab/maze"
)

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	m1, err := maze.Generate(42)
	require.NoError(t, err)
	m2, err := maze.Generate(42)
	require.NoError(t, err)

	assert.Equal(t, m1.Grid.String(), m2.Grid.String())
	assert.Equal(t, m1.RouteCount(), m2.RouteCount())
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	m1, err := maze.Generate(1)
	require.NoError(t, err)
	m2, err := maze.Generate(2)
	require.NoError(t, err)

	assert.NotEqual(t, m1.Grid.String(), m2.Grid.String())
}

func TestGenerateRejectsTooSmallSize(t *testing.T) {
	_, err := maze.GenerateSize(4, 1)
	assert.ErrorIs(t, err, maze.ErrInvalidSize)
}

func TestGenerateExteriorRingIsAllWalls(t *testing.T) {
	m, err := maze.GenerateSize(21, 7)
	require.NoError(t, err)

	w, h := m.Grid.W, m.Grid.H
	for x := 0; x < w; x++ {
		assert.True(t, m.Grid.IsWall(x, 0), "top row x=%d", x)
		assert.True(t, m.Grid.IsWall(x, h-1), "bottom row x=%d", x)
	}
	for y := 0; y < h; y++ {
		assert.True(t, m.Grid.IsWall(0, y), "left col y=%d", y)
		assert.True(t, m.Grid.IsWall(w-1, y), "right col y=%d", y)
	}
}

func TestGenerateStartAndEndArePassable(t *testing.T) {
	m, err := maze.GenerateSize(21, 11)
	require.NoError(t, err)

	start, end := m.Start(), m.End()
	assert.False(t, m.Grid.IsWall(start.X, start.Y))
	assert.False(t, m.Grid.IsWall(end.X, end.Y))
	assert.Equal(t, gridcode.Passable, m.Grid.At(start.X, start.Y))
	assert.Equal(t, gridcode.Passable, m.Grid.At(end.X, end.Y))
}

func TestGenerateIsSingleConnectedComponent(t *testing.T) {
	for _, seed := range []int32{1, 2, 3, 99, 12345} {
		m, err := maze.GenerateSize(31, seed)
		require.NoError(t, err)
		assert.Equal(t, 1, m.ConnectedComponents(), "seed %d", seed)
	}
}

func TestGenerateWithZeroBraidProbabilityYieldsNoRoutes(t *testing.T) {
	m, err := maze.GenerateSize(25, 5, maze.WithBraidProbability(0), maze.WithRoomCount(0))
	require.NoError(t, err)
	assert.Equal(t, 0, m.RouteCount())
	assert.Equal(t, 1, m.ConnectedComponents())
}

func TestGenerateWithHighBraidProbabilityAddsRoutes(t *testing.T) {
	m, err := maze.GenerateSize(25, 5, maze.WithBraidProbability(1), maze.WithRoomCount(0))
	require.NoError(t, err)
	assert.Greater(t, m.RouteCount(), 0)
	assert.Equal(t, 1, m.ConnectedComponents())
}

func TestGenerateProgressCallbackSeesStartAndEnd(t *testing.T) {
	var phases []string
	_, err := maze.GenerateSize(21, 3, maze.WithProgress(func(phase string) {
		phases = append(phases, phase)
	}))
	require.NoError(t, err)

	require.NotEmpty(t, phases)
	assert.Equal(t, "start", phases[0])
	assert.Equal(t, "end", phases[len(phases)-1])
}

func TestConnectRoomOutwardHandlesManyRooms(t *testing.T) {
	m, err := maze.GenerateSize(41, 77, maze.WithRoomCount(30), maze.WithRoomHalfExtent(1, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, m.ConnectedComponents())
}
