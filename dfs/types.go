// Package dfs implements depth-first search over an implicit,
// unweighted graph: DFS for a single path to a goal predicate, DFSReach
// as a lazy pre-order stream, and IDDFS for the shortest such path
// found under successive depth bounds.
//
// Options and hooks are generalized from the reference library's
// dfs/types.go (OnVisit/OnExit/MaxDepth/FilterNeighbor over a
// *core.Graph) to an arbitrary search.NeighborFunc.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/pathkit/search"
)

// ErrOptionViolation is returned when an invalid Option was supplied
// (e.g. a negative MaxDepth).
var ErrOptionViolation = errors.New("dfs: invalid option supplied")

// Options holds parameters and callbacks that customize a DFS traversal.
type Options[N search.Node] struct {
	ctx            context.Context
	OnVisit        func(n N, depth int) error
	OnExit         func(n N, depth int) error
	MaxDepth       int
	FilterNeighbor func(from, to N) bool
	err            error
}

// Option is a functional option for DFS, DFSReach and IDDFS.
type Option[N search.Node] func(*Options[N])

func defaultOptions[N search.Node]() Options[N] {
	return Options[N]{ctx: context.Background(), MaxDepth: -1}
}

func buildOptions[N search.Node](opts []Option[N]) Options[N] {
	cfg := defaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContext makes the search cooperatively cancellable: ctx.Err() is
// checked once per node visited. A cancelled context surfaces wrapped
// by search.ErrCancelled.
func WithContext[N search.Node](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook called when a node is first
// discovered. Returning an error aborts the traversal with that error.
func WithOnVisit[N search.Node](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook called after all of a node's
// descendants have been explored. Returning an error aborts the
// traversal with that error.
func WithOnExit[N search.Node](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) { o.OnExit = fn }
}

// WithMaxDepth limits recursion to the given depth; a depth of 0 visits
// only the start node. A negative limit is an ErrOptionViolation.
func WithMaxDepth[N search.Node](limit int) Option[N] {
	return func(o *Options[N]) {
		if limit < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor filters candidate edges before they are recursed
// into. Returning false skips that neighbor.
func WithFilterNeighbor[N search.Node](fn func(from, to N) bool) Option[N] {
	return func(o *Options[N]) { o.FilterNeighbor = fn }
}
