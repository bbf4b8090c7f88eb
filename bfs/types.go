// Package bfs implements breadth-first search over an implicit,
// unweighted graph: BFS to the first node matching a goal predicate,
// BFSReach as a lazy level-order stream, BFSBidirectional for a
// two-frontier meet-in-the-middle search, and BFSLoop for the shortest
// cycle back to the start.
//
// Options and hooks are generalized from the reference library's
// bfs/types.go (OnEnqueue/OnDequeue/OnVisit/MaxDepth/FilterNeighbor over
// a *core.Graph) to an arbitrary search.NeighborFunc.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathkit/search"
)

// ErrOptionViolation is returned when an invalid Option was supplied
// (e.g. a negative MaxDepth), matching the reference library's own
// bfs.ErrOptionViolation contract.
var ErrOptionViolation = errors.New("bfs: invalid option supplied")

// Options holds parameters and callbacks that customize a BFS traversal.
type Options[N search.Node] struct {
	ctx context.Context

	// OnEnqueue is called when a node is enqueued, before it is visited.
	OnEnqueue func(n N, depth int)
	// OnDequeue is called immediately before a node is visited.
	OnDequeue func(n N, depth int)
	// OnVisit is called when visiting a node; an error return aborts the
	// traversal and is propagated to the caller.
	OnVisit func(n N, depth int) error
	// MaxDepth, if > 0, stops exploring beyond this depth. 0 disables
	// the limit.
	MaxDepth int
	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(cur, neighbor N) bool

	err error
}

// Option configures a BFS-family call.
type Option[N search.Node] func(*Options[N])

func defaultOptions[N search.Node]() Options[N] {
	return Options[N]{ctx: context.Background()}
}

func buildOptions[N search.Node](opts []Option[N]) Options[N] {
	cfg := defaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContext sets a custom context for cancellation, checked once per
// node dequeued.
func WithContext[N search.Node](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run when a node is enqueued.
func WithOnEnqueue[N search.Node](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) { o.OnEnqueue = fn }
}

// WithOnDequeue registers a callback run immediately before a node is
// visited.
func WithOnDequeue[N search.Node](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) { o.OnDequeue = fn }
}

// WithOnVisit registers a callback run on visit; a non-nil error aborts
// the search.
func WithOnVisit[N search.Node](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) { o.OnVisit = fn }
}

// WithMaxDepth stops the search at the given depth: nodes at depth d are
// still visited, but their successors are not explored. 0 disables the
// limit. A negative depth is recorded as an option violation, surfaced as
// ErrOptionViolation when the search runs.
func WithMaxDepth[N search.Node](d int) Option[N] {
	return func(o *Options[N]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[N search.Node](fn func(cur, neighbor N) bool) Option[N] {
	return func(o *Options[N]) { o.FilterNeighbor = fn }
}
