package corridor_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazelab/corridor"
	"github.com/katalvlaran/mazelab/grid"
)

func TestGraphAddVertexAndEdge(t *testing.T) {
	g := corridor.NewGraph()
	g.AddVertex(0, grid.Point{X: 1, Y: 1})
	g.AddVertex(1, grid.Point{X: 1, Y: 5})
	g.AddEdge(0, 1, 4, []grid.Point{{X: 1, Y: 1}, {X: 1, Y: 5}})

	assert.True(t, g.HasVertex(0))
	assert.False(t, g.HasVertex(99))
	assert.Equal(t, 2, g.VertexCount())

	neighbors := g.Neighbors(0)
	require.Len(t, neighbors, 1)
	assert.Equal(t, uint32(1), neighbors[0].To)
	assert.Equal(t, 4, neighbors[0].Weight)
}

func TestFloydWarshallShortestPathAndReconstruction(t *testing.T) {
	// 0 -> 1 -> 2 directly (weight 5), and a longer 0 -> 2 direct edge
	// (weight 9) that the relaxation must beat with the two-hop route.
	d := corridor.NewDense(3)
	d.SetEdge(0, 1, 2)
	d.SetEdge(1, 2, 3)
	d.SetEdge(0, 2, 9)

	require.NoError(t, corridor.FloydWarshall(d, nil))

	assert.Equal(t, float64(5), d.At(0, 2))

	path, ok := d.ReconstructPath(0, 2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, path)
}

func TestFloydWarshallUnreachableHasNoPath(t *testing.T) {
	d := corridor.NewDense(2)
	require.NoError(t, corridor.FloydWarshall(d, nil))

	_, ok := d.ReconstructPath(0, 1)
	assert.False(t, ok)
}

func TestFloydWarshallHonorsCancellation(t *testing.T) {
	d := corridor.NewDense(4)
	d.SetEdge(0, 1, 1)
	d.SetEdge(1, 2, 1)
	d.SetEdge(2, 3, 1)

	var cancel atomic.Bool
	cancel.Store(true)

	err := corridor.FloydWarshall(d, &cancel)
	assert.ErrorIs(t, err, corridor.ErrCancelled)
}

func TestReconstructPathSameNodeIsSingleElement(t *testing.T) {
	d := corridor.NewDense(3)
	path, ok := d.ReconstructPath(1, 1)
	require.True(t, ok)
	assert.Equal(t, []int{1}, path)
}
