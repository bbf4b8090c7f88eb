package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/internal/fixtures"
)

func TestBFS_KnightsTour(t *testing.T) {
	next := fixtures.KnightMoves(8)
	start := fixtures.Square{Rank: 1, File: 1}
	goal := fixtures.Square{Rank: 4, File: 6}

	path, ok, err := bfs.BFS(start, next, func(s fixtures.Square) bool { return s == goal })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, path, 5)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
}

func TestBFS_Unreachable(t *testing.T) {
	next := fixtures.KnightMoves(1) // a 1x1 board has no legal moves at all
	start := fixtures.Square{Rank: 0, File: 0}

	_, ok, err := bfs.BFS(start, next, func(s fixtures.Square) bool { return false })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBFS_MaxDepthPrunesExploration(t *testing.T) {
	next := fixtures.KnightMoves(8)
	start := fixtures.Square{Rank: 1, File: 1}
	goal := fixtures.Square{Rank: 4, File: 6}

	_, ok, err := bfs.BFS(start, next, func(s fixtures.Square) bool { return s == goal }, bfs.WithMaxDepth[fixtures.Square](2))
	require.NoError(t, err)
	assert.False(t, ok, "the shortest knight's path here needs 4 moves")
}

func TestBFS_NegativeMaxDepthIsAnOptionViolation(t *testing.T) {
	next := fixtures.KnightMoves(8)
	start := fixtures.Square{Rank: 1, File: 1}

	_, _, err := bfs.BFS(start, next, func(s fixtures.Square) bool { return false }, bfs.WithMaxDepth[fixtures.Square](-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFSBidirectional_MatchesPlainBFSDistance(t *testing.T) {
	next := fixtures.KnightMoves(8)
	start := fixtures.Square{Rank: 1, File: 1}
	goal := fixtures.Square{Rank: 4, File: 6}

	path, ok, err := bfs.BFSBidirectional(start, goal, next, next)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	assert.Len(t, path, 5)
}

func TestBFSLoop_FindsShortestCycle(t *testing.T) {
	next := fixtures.KnightMoves(8)
	start := fixtures.Square{Rank: 3, File: 3}

	cycle, ok, err := bfs.BFSLoop(start, next)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, cycle, 3, "a knight move can always be undone, so the shortest cycle is start->x->start")
	assert.Equal(t, start, cycle[0])
	assert.Equal(t, start, cycle[len(cycle)-1])
}
