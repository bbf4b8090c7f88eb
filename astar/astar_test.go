package astar_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/astar"
	"github.com/katalvlaran/pathkit/internal/fixtures"
	"github.com/katalvlaran/pathkit/search"
)

func TestAStar_ObstacleGrid(t *testing.T) {
	next := fixtures.ObstacleGrid()
	goal := fixtures.Cell{Row: 4, Col: 4}
	heuristic := fixtures.ObstacleGridHeuristic(goal)

	path, cost, ok, err := astar.AStar(
		fixtures.Cell{Row: 0, Col: 0},
		next,
		heuristic,
		func(c fixtures.Cell) bool { return c == goal },
	)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 8, cost)
	assert.Equal(t, fixtures.Cell{Row: 0, Col: 0}, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	assert.Len(t, path, 9)
}

func TestAStar_ZeroHeuristicMatchesDijkstraCost(t *testing.T) {
	next := fixtures.WeightedDAG()
	zeroH := func(n string) int { return 0 }

	_, cost, ok, err := astar.AStar("A", next, zeroH, func(n string) bool { return n == "E" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 11, cost)
}

func TestAStar_Unreachable(t *testing.T) {
	next := fixtures.WeightedDAG()
	zeroH := func(n string) int { return 0 }

	_, _, ok, err := astar.AStar("E", next, zeroH, func(n string) bool { return n == "A" })
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAStarBag_NegativeGoalHeuristicDoesNotDuplicateASink(t *testing.T) {
	// A is relaxed twice (via S->A direct cost 5, then via S->B->A cost
	// 2), and both relaxations reach G. A deeply negative, technically
	// admissible heuristic on A and G pulls G's heap entries out of
	// true-cost order, so G is popped non-stale, accepted, and then
	// popped non-stale a second time after A's second relaxation
	// improves it further from cost 6 down to cost 3.
	adj := map[string][]search.Edge[string, int]{
		"S": {{To: "A", Cost: 5}, {To: "B", Cost: 1}},
		"B": {{To: "A", Cost: 1}},
		"A": {{To: "G", Cost: 1}},
		"G": {},
	}
	next := func(n string) iter.Seq2[string, int] { return search.FromEdges(adj[n]) }
	h := func(n string) int {
		switch n {
		case "A":
			return -1000
		case "G":
			return -2000
		default:
			return 0
		}
	}

	paths, cost, ok, err := astar.AStarBagCollect("S", next, h, func(n string) bool { return n == "G" })
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, cost)
	require.Len(t, paths, 1, "G must be recorded as a sink exactly once despite being popped non-stale twice")
	assert.Equal(t, []string{"S", "B", "A", "G"}, paths[0])
}

func TestAStarBag_EnumeratesAllTiedOptimalPaths(t *testing.T) {
	next := fixtures.TiedDiamond()
	zeroH := func(n string) int { return 0 }

	paths, cost, ok, err := astar.AStarBagCollect(
		"A", next, zeroH,
		func(n string) bool { return n == "D" },
	)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, cost, "A->B->D and A->C->D both cost 1+2=3")
	require.Len(t, paths, 2)
	assert.Contains(t, paths, []string{"A", "B", "D"})
	assert.Contains(t, paths, []string{"A", "C", "D"})
	for _, p := range paths {
		require.Len(t, p, 3)
		assert.Equal(t, "A", p[0])
		assert.Equal(t, "D", p[2])
	}
}
