package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/bfs"
	"github.com/katalvlaran/pathkit/internal/fixtures"
)

// ExampleBFS finds the shortest sequence of knight moves from (1,1) to
// (4,6) on an 8x8 board.
func ExampleBFS() {
	next := fixtures.KnightMoves(8)
	start := fixtures.Square{Rank: 1, File: 1}
	goal := fixtures.Square{Rank: 4, File: 6}

	path, ok, err := bfs.BFS(start, next, func(s fixtures.Square) bool { return s == goal })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !ok {
		fmt.Println("no path found")
		return
	}

	fmt.Println(len(path))
	// Output: 5
}
