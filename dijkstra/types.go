package dijkstra

import (
	"context"

	"github.com/katalvlaran/pathkit/search"
)

// Options configures the behavior of a Dijkstra-family call.
type Options[N search.Node, C search.Cost] struct {
	onVisit  func(n N, cost C)
	onRelax  func(from, to N, cost C)
	maxCost  *C
	hasMax   bool
	ctxCheck func() error
}

// Option is a functional option for Dijkstra, DijkstraAll and DijkstraPartial.
type Option[N search.Node, C search.Cost] func(*Options[N, C])

// WithOnVisit registers a hook invoked exactly once per node, when that
// node's shortest-path cost becomes final (i.e. it is popped from the
// open set).
func WithOnVisit[N search.Node, C search.Cost](fn func(n N, cost C)) Option[N, C] {
	return func(o *Options[N, C]) { o.onVisit = fn }
}

// WithOnRelax registers a hook invoked whenever a successor's tentative
// cost strictly improves (an OpenSet "Decreased" outcome).
func WithOnRelax[N search.Node, C search.Cost](fn func(from, to N, cost C)) Option[N, C] {
	return func(o *Options[N, C]) { o.onRelax = fn }
}

// WithMaxCost stops exploring once a node's tentative cost would exceed
// max; such nodes are never settled and never contribute further
// relaxations. Generalizes the reference library's dijkstra.WithMaxDistance
// to an arbitrary numeric Cost.
func WithMaxCost[N search.Node, C search.Cost](max C) Option[N, C] {
	return func(o *Options[N, C]) {
		o.maxCost = &max
		o.hasMax = true
	}
}

// WithContext makes the search cooperatively cancellable: ctx.Err() is
// checked once per node settled, mirroring the per-iteration ctx.Done()
// poll used across this module's bfs/dfs traversals. A cancelled context
// surfaces as ctx.Err() wrapped by search.ErrCancelled.
func WithContext[N search.Node, C search.Cost](ctx context.Context) Option[N, C] {
	return func(o *Options[N, C]) {
		o.ctxCheck = ctx.Err
	}
}

func defaultOptions[N search.Node, C search.Cost]() Options[N, C] {
	return Options[N, C]{}
}

func buildOptions[N search.Node, C search.Cost](opts []Option[N, C]) Options[N, C] {
	cfg := defaultOptions[N, C]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
