package countpaths_test

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/pathkit/countpaths"
)

// ExampleCountPaths counts the monotonic (right- or up-only) paths
// across an 8x8 board from the bottom-left to the top-right corner.
func ExampleCountPaths() {
	type point struct{ x, y int }
	next := func(p point) iter.Seq[point] {
		return func(yield func(point) bool) {
			for _, candidate := range [2]point{{p.x + 1, p.y}, {p.x, p.y + 1}} {
				if candidate.x < 8 && candidate.y < 8 && !yield(candidate) {
					return
				}
			}
		}
	}

	n, err := countpaths.CountPaths(point{0, 0}, next, func(p point) bool { return p == (point{7, 7}) })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(n)
	// Output: 3432
}
