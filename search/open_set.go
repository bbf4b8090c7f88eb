// This file implements an indexed open set: a priority queue keyed by
// tentative cost, backed by a binary heap over indices into a parallel
// insertion-ordered map. Decrease-key is achieved lazily — an improvement
// pushes a fresh heap entry rather than mutating the existing one in
// place, and PopMin discards any entry whose cost no longer matches the
// authoritative cost recorded for its index.
//
// This trades a log-factor of wasted heap slots (bounded by the number of
// successful relaxations, i.e. O(E) in the worst case) for a much simpler
// implementation than a true decrease-key heap (pairing heap, Fibonacci
// heap) — the same "lazy decrease-key over container/heap" trade-off the
// reference dijkstra.go documents.
package search

import "container/heap"

// UpdateKind reports what PushOrDecrease did to the open set.
type UpdateKind int

const (
	// Inserted means the node was previously unknown and has been added
	// at a new index.
	Inserted UpdateKind = iota
	// Decreased means the node was known and a strictly better cost (and
	// parent) has been recorded for its existing index.
	Decreased
	// Unchanged means the node was known and the candidate cost was not
	// strictly better than the recorded one; nothing was modified.
	Unchanged
)

// entry is one row of the insertion-ordered node table: the node itself,
// its best known cost, and the store index of its parent (its own index
// for the root, whose parent-index equals its own index).
type entry[N Node, C Cost] struct {
	node   N
	cost   C
	parent int
}

// heapItem is a (cost, index) pair queued for expansion. index refers into
// OpenSet.entries; it is also the tie-break key when two items share a
// cost: ties are broken by ascending insertion index.
type heapItem[C Cost] struct {
	cost  C
	index int
}

// minHeap is a container/heap.Interface over heapItem, ordered by
// ascending cost and, for ties, ascending index.
type minHeap[C Cost] []heapItem[C]

func (h minHeap[C]) Len() int { return len(h) }
func (h minHeap[C]) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].index < h[j].index
}
func (h minHeap[C]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *minHeap[C]) Push(x interface{}) {
	*h = append(*h, x.(heapItem[C]))
}
func (h *minHeap[C]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// OpenSet is the indexed open set shared by every engine in this module:
// an insertion-ordered map from Node to (cost, parent index) joined with
// a lazy decrease-key min-heap over that map's indices. It also doubles
// as the parent store used for path reconstruction.
//
// The zero value is not usable; construct with NewOpenSet.
type OpenSet[N Node, C Cost] struct {
	entries []entry[N, C]
	index   map[N]int
	heap    minHeap[C]
}

// NewOpenSet returns an empty OpenSet ready for use.
func NewOpenSet[N Node, C Cost]() *OpenSet[N, C] {
	return &OpenSet[N, C]{
		index: make(map[N]int),
	}
}

// Seed inserts the start node as the root of the store (its own parent)
// with the given initial cost, and pushes it onto the heap. It must be
// called exactly once, before any PushOrDecrease, and returns the root's
// index (always 0).
func (s *OpenSet[N, C]) Seed(start N, initial C) int {
	idx := len(s.entries)
	s.entries = append(s.entries, entry[N, C]{node: start, cost: initial, parent: idx})
	s.index[start] = idx
	heap.Push(&s.heap, heapItem[C]{cost: initial, index: idx})
	return idx
}

// PushOrDecrease inserts n at a fresh index if unknown, or improves its
// recorded cost and parent if a strictly smaller cost is offered. It
// returns the node's store index and which of the three outcomes
// occurred.
func (s *OpenSet[N, C]) PushOrDecrease(n N, cost C, parentIdx int) (int, UpdateKind) {
	if idx, ok := s.index[n]; ok {
		if cost < s.entries[idx].cost {
			s.entries[idx].cost = cost
			s.entries[idx].parent = parentIdx
			heap.Push(&s.heap, heapItem[C]{cost: cost, index: idx})
			return idx, Decreased
		}
		return idx, Unchanged
	}
	idx := len(s.entries)
	s.entries = append(s.entries, entry[N, C]{node: n, cost: cost, parent: parentIdx})
	s.index[n] = idx
	heap.Push(&s.heap, heapItem[C]{cost: cost, index: idx})
	return idx, Inserted
}

// PopMin repeatedly pops heap entries, discarding any whose cost differs
// from the authoritative cost currently recorded at that index (a stale
// entry left behind by a later improvement), and returns the first live
// one. ok is false once the open set is exhausted.
func (s *OpenSet[N, C]) PopMin() (idx int, node N, cost C, ok bool) {
	for s.heap.Len() > 0 {
		top := heap.Pop(&s.heap).(heapItem[C])
		if top.cost != s.entries[top.index].cost {
			continue // stale: a cheaper path to this index was found later
		}
		e := s.entries[top.index]
		return top.index, e.node, e.cost, true
	}
	var zeroN N
	var zeroC C
	return -1, zeroN, zeroC, false
}

// Peek reports the cost at the top of the heap without popping it,
// skipping stale entries as PopMin would. It is the mechanism behind
// DijkstraReach's RemainingLowBound: any node not yet yielded costs at
// least this much. ok is false once the open set is exhausted.
func (s *OpenSet[N, C]) Peek() (cost C, ok bool) {
	for s.heap.Len() > 0 {
		top := s.heap[0]
		if top.cost != s.entries[top.index].cost {
			heap.Pop(&s.heap)
			continue
		}
		return top.cost, true
	}
	var zeroC C
	return zeroC, false
}

// Get returns the store index of a previously discovered node.
func (s *OpenSet[N, C]) Get(n N) (idx int, ok bool) {
	idx, ok = s.index[n]
	return idx, ok
}

// At returns the node, cost, and parent index recorded at idx.
func (s *OpenSet[N, C]) At(idx int) (node N, cost C, parent int) {
	e := s.entries[idx]
	return e.node, e.cost, e.parent
}

// Len returns the number of distinct nodes ever discovered.
func (s *OpenSet[N, C]) Len() int { return len(s.entries) }
