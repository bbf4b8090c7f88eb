package search

import "errors"

// Sentinel errors shared by every engine built on this substrate.
var (
	// ErrNegativeWeight indicates a successor callback returned a negative
	// edge cost to an engine that requires non-negative weights
	// (Dijkstra, A*, Fringe, IDA*). Detected and reported the first time
	// it is observed during relaxation, rather than producing a silently
	// wrong path — mirroring the reference library's dijkstra.ErrNegativeWeight.
	ErrNegativeWeight = errors.New("search: negative edge cost encountered")

	// ErrStartNotFound indicates the caller-supplied predicate rejected
	// the start node before any expansion could occur, where the engine
	// contract requires the start to be a valid node.
	ErrStartNotFound = errors.New("search: start node invalid")

	// ErrCancelled indicates a search was aborted because its context was
	// cancelled or timed out. Wrap it with the context's own error via
	// fmt.Errorf("%w: %w", ErrCancelled, ctx.Err()) at the call site that
	// detects cancellation, so callers can errors.Is against either.
	ErrCancelled = errors.New("search: cancelled")
)

// Cost is the totally-ordered, zero-having, additive type carried by every
// edge weight and accumulated path cost. It is restricted to Go's numeric
// kinds because the engines rely on the built-in `+` and comparison
// operators rather than an interface method set — there is no
// "AddableOrdered" numeric constraint in the standard library, only
// cmp.Ordered (which also admits strings, for which `+` means
// concatenation and "zero" is ambiguous as a search cost). Restricting to
// numeric kinds keeps "zero value == additive identity" true by
// construction, enforced at compile time rather than with a runtime check.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Node is any value usable as a map key: equality plus a stable hash.
// Values are copied into the parent store on discovery (Go's assignment
// semantics give this for free on comparable types; there is no separate
// Clone step as in languages without value-type copy semantics).
type Node interface {
	comparable
}

// Predecessor records the optimal parent and accumulated cost of a
// reachable node, as returned by DijkstraAll/DijkstraPartial.
type Predecessor[N Node, C Cost] struct {
	Parent N
	Cost   C
}

// Step is a single record yielded by a reach stream: the node just
// settled, its parent, and the accumulated cost to reach it.
type Step[N Node, C Cost] struct {
	Node   N
	Parent N
	Cost   C
	// HasParent is false only for the start node of the traversal, whose
	// Parent field is otherwise indistinguishable from a real predecessor.
	HasParent bool
}
