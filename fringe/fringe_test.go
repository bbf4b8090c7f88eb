package fringe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/fringe"
	"github.com/katalvlaran/pathkit/internal/fixtures"
)

func TestFringe_ObstacleGrid(t *testing.T) {
	next := fixtures.ObstacleGrid()
	goal := fixtures.Cell{Row: 4, Col: 4}
	heuristic := fixtures.ObstacleGridHeuristic(goal)

	path, cost, ok, err := fringe.Fringe(
		fixtures.Cell{Row: 0, Col: 0},
		next,
		heuristic,
		func(c fixtures.Cell) bool { return c == goal },
	)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, cost)
	assert.Equal(t, goal, path[len(path)-1])
}

func TestFringe_Unreachable(t *testing.T) {
	next := fixtures.WeightedDAG()
	zeroH := func(n string) int { return 0 }

	_, _, ok, err := fringe.Fringe("E", next, zeroH, func(n string) bool { return n == "A" })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFringe_MatchesDijkstraCostOnDAG(t *testing.T) {
	next := fixtures.WeightedDAG()
	zeroH := func(n string) int { return 0 }

	_, cost, ok, err := fringe.Fringe("A", next, zeroH, func(n string) bool { return n == "E" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 11, cost)
}
