package yen_test

import (
	"fmt"

	"github.com/katalvlaran/pathkit/internal/fixtures"
	"github.com/katalvlaran/pathkit/yen"
)

// ExampleYen reproduces Yen's algorithm's canonical worked example: the
// 3 shortest loopless paths from C to H.
func ExampleYen() {
	next := fixtures.YenGraph()

	paths, err := yen.Yen("C", next, func(n string) bool { return n == "H" }, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, p := range paths {
		fmt.Printf("%v cost=%d\n", p.Nodes, p.Cost)
	}
	// Output:
	// [C E F H] cost=5
	// [C E G H] cost=7
	// [C D F H] cost=8
}
