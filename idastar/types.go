// Package idastar implements IDA* (Iterative Deepening A*): a
// memory-bounded alternative to astar.AStar that trades the heap and
// node table for repeated depth-first searches bounded by a rising
// f-cost threshold.
package idastar

import (
	"context"

	"github.com/katalvlaran/pathkit/search"
)

// Options configures IDAStar.
type Options[N search.Node, C search.Cost] struct {
	onVisit  func(n N, cost C)
	maxCost  *C
	hasMax   bool
	ctxCheck func() error
}

// Option is a functional option for IDAStar.
type Option[N search.Node, C search.Cost] func(*Options[N, C])

// WithOnVisit registers a hook invoked whenever a node on the current
// search path is examined within the current f-cost bound (nodes pruned
// by the bound do not trigger it), which may happen more than once
// across iterations as the bound is raised.
func WithOnVisit[N search.Node, C search.Cost](fn func(n N, cost C)) Option[N, C] {
	return func(o *Options[N, C]) { o.onVisit = fn }
}

// WithMaxCost prunes any branch whose accumulated cost would exceed max,
// independent of the iterative f-cost bound.
func WithMaxCost[N search.Node, C search.Cost](max C) Option[N, C] {
	return func(o *Options[N, C]) {
		o.maxCost = &max
		o.hasMax = true
	}
}

// WithContext makes the search cooperatively cancellable, checked once
// per node examined.
func WithContext[N search.Node, C search.Cost](ctx context.Context) Option[N, C] {
	return func(o *Options[N, C]) { o.ctxCheck = ctx.Err }
}

func buildOptions[N search.Node, C search.Cost](opts []Option[N, C]) Options[N, C] {
	var cfg Options[N, C]
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func zero[C search.Cost]() C {
	var z C
	return z
}
