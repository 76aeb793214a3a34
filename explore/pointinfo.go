package explore

// PointInfo is one visited record: a grid coordinate, the step index at
// which it was recorded, and a distance scalar (spec §3 "PointInfo").
// Distance carries the strategy's own scalar: the walls broken so far for
// BFS+, and the settled distance (g) for Dijkstra/A*; DFS, BFS and Floyd
// leave it zero. It is informational only, never read back by path
// reconstruction.
type PointInfo struct {
	X, Y     int
	Step     int
	Distance float64
}
