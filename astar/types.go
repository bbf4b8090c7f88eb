package astar

import (
	"context"

	"github.com/katalvlaran/pathkit/search"
)

// Options configures AStar/AStarBag/AStarBagCollect.
type Options[N search.Node, C search.Cost] struct {
	onVisit  func(n N, cost C)
	onRelax  func(from, to N, cost C)
	maxCost  *C
	hasMax   bool
	ctxCheck func() error
}

// Option is a functional option shared by every entry point in this package.
type Option[N search.Node, C search.Cost] func(*Options[N, C])

// WithOnVisit registers a hook invoked when a node's cost becomes final.
func WithOnVisit[N search.Node, C search.Cost](fn func(n N, cost C)) Option[N, C] {
	return func(o *Options[N, C]) { o.onVisit = fn }
}

// WithOnRelax registers a hook invoked whenever a successor's tentative
// cost strictly improves.
func WithOnRelax[N search.Node, C search.Cost](fn func(from, to N, cost C)) Option[N, C] {
	return func(o *Options[N, C]) { o.onRelax = fn }
}

// WithMaxCost prunes exploration of any node whose tentative cost would
// exceed max.
func WithMaxCost[N search.Node, C search.Cost](max C) Option[N, C] {
	return func(o *Options[N, C]) {
		o.maxCost = &max
		o.hasMax = true
	}
}

// WithContext makes the search cooperatively cancellable, checked once
// per node settled.
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

func reverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
