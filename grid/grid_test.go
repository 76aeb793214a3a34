package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/gridcode"
)

func TestNewAllWalls(t *testing.T) {
	g := grid.New(5, 4)
	assert.Equal(t, 5, g.W)
	assert.Equal(t, 4, g.H)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			assert.Equal(t, gridcode.Wall, g.At(x, y))
			assert.True(t, g.IsWall(x, y))
		}
	}
}

func TestInBoundsAndOutOfBoundsIsWall(t *testing.T) {
	g := grid.New(3, 3)
	assert.True(t, g.InBounds(0, 0))
	assert.True(t, g.InBounds(2, 2))
	assert.False(t, g.InBounds(-1, 0))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, 3))

	assert.True(t, g.IsWall(-1, 0))
	assert.True(t, g.IsWall(3, 3))
	assert.Equal(t, gridcode.Wall, g.At(-1, -1))
}

func TestSetAndAtRoundTrip(t *testing.T) {
	g := grid.New(5, 5)
	g.Set(2, 2, gridcode.Passable)
	assert.Equal(t, gridcode.Passable, g.At(2, 2))
	assert.False(t, g.IsWall(2, 2))

	// Set outside bounds is a silent no-op, not a panic.
	require.NotPanics(t, func() { g.Set(-5, -5, gridcode.Passable) })
}

func TestKeyIsRowMajor(t *testing.T) {
	g := grid.New(7, 9)
	assert.Equal(t, uint32(0), g.Key(0, 0))
	assert.Equal(t, uint32(7), g.Key(0, 1))
	assert.Equal(t, uint32(9), g.Key(2, 1))

	p := g.Unkey(g.Key(3, 4))
	assert.Equal(t, grid.Point{X: 3, Y: 4}, p)
}

func TestKey3RoundTrip(t *testing.T) {
	g := grid.New(7, 9)
	for b := 0; b < 4; b++ {
		k := g.Key3(3, 4, b)
		p := g.Unkey3(k)
		assert.Equal(t, grid.Point{X: 3, Y: 4}, p, "layer %d", b)
	}
	// Distinct layers never collide.
	assert.NotEqual(t, g.Key3(3, 4, 0), g.Key3(3, 4, 1))
}

func TestCloneIsIndependent(t *testing.T) {
	g := grid.New(4, 4)
	g.Set(1, 1, gridcode.Passable)
	clone := g.Clone()
	clone.Set(1, 1, gridcode.Wall)

	assert.Equal(t, gridcode.Passable, g.At(1, 1))
	assert.Equal(t, gridcode.Wall, clone.At(1, 1))
}

func TestNeighborOrdersAreFixed(t *testing.T) {
	assert.Equal(t, [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}, grid.NeighborOffsetsDFS)
	assert.Equal(t, [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}, grid.NeighborOffsets)
}
