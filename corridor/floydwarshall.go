package corridor

import (
	"math"
	"sync/atomic"
)

// Dense is a flat row-major n×n distance matrix with a parallel next-hop
// matrix, the storage shape carried over from the teacher's
// matrix/impl_dense.go Dense type. next[i*n+j] holds the index of the first
// hop from i towards j (or -1 if none/unreachable), the one addition this
// module needs beyond the teacher's distance-only Floyd-Warshall, since
// §4.C.6 phase 3 must reconstruct the node path, not just its length.
type Dense struct {
	n    int
	dist []float64
	next []int
}

// NewDense allocates an n×n matrix: diagonal zeroed, every other cell at
// +Inf with no next hop, ready for the caller to overlay edge weights.
func NewDense(n int) *Dense {
	d := &Dense{n: n, dist: make([]float64, n*n), next: make([]int, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			idx := i*n + j
			d.next[idx] = -1
			if i == j {
				d.dist[idx] = 0
			} else {
				d.dist[idx] = math.Inf(1)
			}
		}
	}
	return d
}

// N returns the matrix dimension.
func (d *Dense) N() int { return d.n }

// SetEdge records a directed edge i→j of the given weight, along with its
// immediate next-hop (j itself, before any Floyd-Warshall relaxation).
// Smaller of any duplicate weights wins, matching a simple-graph assumption.
func (d *Dense) SetEdge(i, j int, weight float64) {
	idx := i*d.n + j
	if weight < d.dist[idx] {
		d.dist[idx] = weight
		d.next[idx] = j
	}
}

// At returns the current distance between i and j.
func (d *Dense) At(i, j int) float64 { return d.dist[i*d.n+j] }

// NextHop returns the first hop on the shortest path from i to j, or -1 if
// none has been recorded (i == j, or i and j are not connected).
func (d *Dense) NextHop(i, j int) int { return d.next[i*d.n+j] }

// ErrCancelled is returned by FloydWarshall when the shared cancel flag
// flips mid-computation.
type cancelledError struct{}

func (cancelledError) Error() string { return "corridor: cancelled" }

// ErrCancelled is the sentinel FloydWarshall returns on cancellation.
var ErrCancelled error = cancelledError{}

// FloydWarshall runs the canonical in-place k→i→j triple loop over d,
// relaxing both the distance and next-hop matrices in lock-step — the
// teacher's matrix/impl_floydwarshall.go loop order and "single source of
// truth" in-place update, extended with next-hop propagation. cancel is
// polled once per outer k iteration (spec §4.C.6 phase 2: "cancellation
// check once per outer iteration"); a nil cancel disables polling.
func FloydWarshall(d *Dense, cancel *atomic.Bool) error {
	n := d.n
	for k := 0; k < n; k++ {
		if cancel != nil && cancel.Load() {
			return ErrCancelled
		}

		dk := k * n
		for i := 0; i < n; i++ {
			ik := i*n + k
			dik := d.dist[ik]
			if math.IsInf(dik, 1) {
				continue
			}
			in := i * n
			for j := 0; j < n; j++ {
				viaK := dik + d.dist[dk+j]
				if viaK < d.dist[in+j] {
					d.dist[in+j] = viaK
					d.next[in+j] = d.next[ik]
				}
			}
		}
	}
	return nil
}

// ReconstructPath walks the next-hop matrix from i to j, returning the
// sequence of node indices including both endpoints. Returns ok=false if i
// and j are disconnected (no next hop recorded) or i == j with i already
// unreachable from itself (never happens since the diagonal is always 0).
func (d *Dense) ReconstructPath(i, j int) (path []int, ok bool) {
	if d.next[i*d.n+j] == -1 && i != j {
		return nil, false
	}
	path = []int{i}
	cur := i
	for cur != j {
		cur = d.next[cur*d.n+j]
		if cur == -1 {
			return nil, false
		}
		path = append(path, cur)
	}
	return path, true
}
