// Package countpaths counts the number of distinct paths through a DAG
// from a start node to any node accepted by a success predicate, using
// memoised successor enumeration: paths(n) = 1 if success(n) else the
// sum of paths(n') over n's successors.
//
// Grounded on the reference implementation's count_paths()
// (cached_count_paths over a hash-map memo), generalized from a caller
// panic on cycles to an explicit ErrCycleDetected, tracked with a
// per-node visitation state (unvisited, in progress, settled) rather
// than a raw "in progress" bool.
package countpaths

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// ErrCycleDetected is returned when the recursion revisits a node that
// is still on the current call stack, meaning the graph is not the DAG
// CountPaths requires.
var ErrCycleDetected = errors.New("countpaths: cycle detected")

type visitState int

const (
	unvisited visitState = iota
	inProgress
	settled
)

// CountPaths counts the distinct paths from start to any node accepted
// by success. next must describe a DAG; a cycle reachable from start is
// reported as ErrCycleDetected rather than recursing forever.
func CountPaths[N search.Node](
	start N,
	next search.NeighborFunc[N],
	success search.GoalFunc[N],
) (int64, error) {
	cache := make(map[N]int64)
	status := make(map[N]visitState)
	return countPaths(start, next, success, cache, status)
}

func countPaths[N search.Node](
	node N,
	next search.NeighborFunc[N],
	success search.GoalFunc[N],
	cache map[N]int64,
	status map[N]visitState,
) (int64, error) {
	if n, ok := cache[node]; ok {
		return n, nil
	}
	if status[node] == inProgress {
		return 0, fmt.Errorf("%w: %v", ErrCycleDetected, node)
	}
	status[node] = inProgress

	var total int64
	if success(node) {
		total = 1
	} else {
		for succ := range next(node) {
			count, err := countPaths(succ, next, success, cache, status)
			if err != nil {
				return 0, err
			}
			total += count
		}
	}

	status[node] = settled
	cache[node] = total
	return total, nil
}
