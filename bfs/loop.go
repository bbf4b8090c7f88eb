package bfs

import "github.com/katalvlaran/pathkit/search"

// BFSLoop returns one of the shortest cycles from start back to start,
// if one exists. The returned path begins and ends with start; no other
// node repeats in it. ok is false if start lies on no cycle.
//
// Grounded on the reference implementation's bfs_loop(): a direct
// self-loop short-circuits immediately, otherwise every successor of
// start is tried as the head of a plain BFS back to start, keeping the
// shortest result (and stopping early on a length-2 path, which cannot
// be beaten).
func BFSLoop[N search.Node](
	start N,
	next search.NeighborFunc[N],
	opts ...Option[N],
) (cycle []N, ok bool, err error) {
	cfg := buildOptions(opts)
	if cfg.err != nil {
		return nil, false, cfg.err
	}

	for succ := range next(start) {
		if succ == start {
			return []N{start, start}, true, nil
		}
	}

	var shortest []N
	for succ := range next(start) {
		path, found, pathErr := BFS(succ, next, func(n N) bool { return n == start }, opts...)
		if pathErr != nil {
			return nil, false, pathErr
		}
		if !found {
			continue
		}
		if shortest == nil || len(path) < len(shortest) {
			shortest = path
		}
		if len(path) == 2 {
			break
		}
	}
	if shortest == nil {
		return nil, false, nil
	}

	cycle = make([]N, 0, len(shortest)+1)
	cycle = append(cycle, start)
	cycle = append(cycle, shortest...)
	return cycle, true, nil
}
