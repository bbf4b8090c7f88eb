package countpaths_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathkit/countpaths"
)

type cell struct{ x, y int }

// monotonicGrid moves only right or up, staying within an n x n board.
func monotonicGrid(n int) func(cell) iter.Seq[cell] {
	return func(c cell) iter.Seq[cell] {
		return func(yield func(cell) bool) {
			candidates := [2]cell{{c.x + 1, c.y}, {c.x, c.y + 1}}
			for _, next := range candidates {
				if next.x < n && next.y < n && !yield(next) {
					return
				}
			}
		}
	}
}

func TestCountPaths_EightByEightGridMatchesBinomialCoefficient(t *testing.T) {
	next := monotonicGrid(8)
	n, err := countpaths.CountPaths(cell{0, 0}, next, func(c cell) bool { return c == cell{7, 7} })
	require.NoError(t, err)
	assert.EqualValues(t, 3432, n) // C(14, 7)
}

func TestCountPaths_UnreachableGoalCountsZero(t *testing.T) {
	next := monotonicGrid(2)
	n, err := countpaths.CountPaths(cell{0, 0}, next, func(c cell) bool { return c == cell{99, 99} })
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestCountPaths_StartSatisfyingSuccessCountsOne(t *testing.T) {
	next := monotonicGrid(4)
	n, err := countpaths.CountPaths(cell{0, 0}, next, func(c cell) bool { return c == cell{0, 0} })
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCountPaths_CycleIsReportedNotOverflowed(t *testing.T) {
	adj := map[string][]string{
		"A": {"B"},
		"B": {"A"},
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
	_, err := countpaths.CountPaths("A", next, func(n string) bool { return n == "Z" })
	require.ErrorIs(t, err, countpaths.ErrCycleDetected)
}
