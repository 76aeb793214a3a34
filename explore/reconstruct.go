package explore

import "github.com/katalvlaran/mazelab/grid"

// reconstructSafetyBound caps the back-walk length so corrupted parent data
// can never spin forever (spec §4.D: "abort reconstruction with empty
// output if the back-walk exceeds a conservative safety bound").
const reconstructSafetyBound = 5_000_000

// reconstructPath walks parent from endKey back to startKey and reverses
// the result, projecting each key to a grid coordinate via project — the
// single shared back-walk used by DFS/BFS/Dijkstra/A* directly (with
// project = a 2-D unkey) and by BFS+ (with project = a 3-D-to-2-D unkey),
// per spec §4.D and the Design Note generalizing Exploer.cpp's four
// duplicated back-walks into one.
//
// end == start is a valid one-element path. end with no parent entry (and
// end != start) yields a nil path.
func reconstructPath(parent map[uint32]uint32, startKey, endKey uint32, project func(uint32) grid.Point) []PointInfo {
	if endKey == startKey {
		p := project(startKey)
		return []PointInfo{{X: p.X, Y: p.Y, Step: 0}}
	}

	if _, ok := parent[endKey]; !ok {
		return nil
	}

	keys := []uint32{endKey}
	cur := endKey
	for cur != startKey {
		next, ok := parent[cur]
		if !ok {
			return nil
		}
		cur = next
		keys = append(keys, cur)
		if len(keys) > reconstructSafetyBound {
			return nil
		}
	}

	out := make([]PointInfo, len(keys))
	for i, k := range keys {
		p := project(k)
		out[len(keys)-1-i] = PointInfo{X: p.X, Y: p.Y, Step: len(keys) - 1 - i}
	}
	return out
}
