package dfs_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/dfs"
	"github.com/katalvlaran/pathkit/internal/fixtures"
	"github.com/katalvlaran/pathkit/search"
)

// climbTo17 mirrors the classic "add 1 or multiply the number by
// itself" reachability puzzle: from n, the successors are n+1 and n*n,
// filtered to stay at or below 17.
func climbTo17(order func(n int) [2]int) search.NeighborFunc[int] {
	return func(n int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, next := range order(n) {
				if next <= 17 && !yield(next) {
					return
				}
			}
		}
	}
}

func TestDFS_AdderFirstFindsTheLongPath(t *testing.T) {
	next := climbTo17(func(n int) [2]int { return [2]int{n + 1, n * n} })
	path, ok, err := dfs.DFS(1, next, func(n int) bool { return n == 17 })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}, path)
}

func TestDFS_MultiplierFirstFindsAShorterPath(t *testing.T) {
	next := climbTo17(func(n int) [2]int { return [2]int{n * n, n + 1} })
	path, ok, err := dfs.DFS(1, next, func(n int) bool { return n == 17 })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 4, 16, 17}, path)
}

func TestDFS_Unreachable(t *testing.T) {
	next := climbTo17(func(n int) [2]int { return [2]int{n + 1, n * n} })
	_, ok, err := dfs.DFS(1, next, func(n int) bool { return n == 1000 })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDFS_GlobalSeenSetTerminatesOnACycle(t *testing.T) {
	// A -> B -> A -> C, a two-node cycle plus a spur. Without a shared
	// seen set this would recurse forever chasing A<->B.
	adj := map[string][]string{
		"A": {"B", "C"},
		"B": {"A"},
		"C": {},
	}
	next := func(n string) iter.Seq[string] {
		return func(yield func(string) bool) {
			for _, s := range adj[n] {
				if !yield(s) {
					return
				}
			}
		}
	}
	path, ok, err := dfs.DFS("A", next, func(n string) bool { return n == "C" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A", path[0])
	assert.Equal(t, "C", path[len(path)-1])
}

func TestDFSReach_YieldsPreOrderWithParents(t *testing.T) {
	next := climbTo17(func(n int) [2]int { return [2]int{n * n, n + 1} })
	steps, errFn := dfs.DFSReach(1, next, dfs.WithMaxDepth[int](2))

	var order []int
	parents := make(map[int]int)
	for s := range steps {
		order = append(order, s.Node)
		if s.HasParent {
			parents[s.Node] = s.Parent
		}
	}
	require.NoError(t, errFn())
	assert.Equal(t, 1, order[0])
	assert.Equal(t, []int{1, 2, 4, 3}, order)
	assert.Equal(t, map[int]int{2: 1, 4: 2, 3: 2}, parents)
}

func TestIDDFS_KnightsTourFindsTheShortestPath(t *testing.T) {
	next := fixtures.KnightMoves(8)
	start := fixtures.Square{Rank: 1, File: 1}
	goal := fixtures.Square{Rank: 4, File: 6}

	path, ok, err := dfs.IDDFS(start, next, func(s fixtures.Square) bool { return s == goal })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, path, 5)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
}

func TestIDDFS_Unreachable(t *testing.T) {
	next := fixtures.KnightMoves(1)
	start := fixtures.Square{Rank: 0, File: 0}

	_, ok, err := dfs.IDDFS(start, next, func(s fixtures.Square) bool { return false })
	require.NoError(t, err)
	assert.False(t, ok)
}
