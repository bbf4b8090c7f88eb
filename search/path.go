package search

// PathTo reconstructs the path from the root to idx by walking parent
// links from idx back to the root and reversing. idx must have been
// returned by Seed, PushOrDecrease, PopMin, or At on the same OpenSet.
func (s *OpenSet[N, C]) PathTo(idx int) []N {
	var rev []N
	cur := idx
	for {
		e := s.entries[cur]
		rev = append(rev, e.node)
		if e.parent == cur {
			break
		}
		cur = e.parent
	}
	reverseInPlace(rev)
	return rev
}

// Reachable is the result of DijkstraAll/DijkstraPartial: for every node
// reached (other than the start), its optimal parent and accumulated
// cost from the start.
type Reachable[N Node, C Cost] map[N]Predecessor[N, C]

// BuildPath reconstructs a path leading to target from a Reachable map.
// If target is not present in parents, the returned path is just
// [target] (matching the reference behaviour: a node absent from the
// map is treated as its own, unreached, start).
//
// BuildPath will loop forever building an ever-longer path if parents
// contains a cycle; the map produced by DijkstraAll/DijkstraPartial is
// guaranteed acyclic because it only ever records the parent along a
// non-negative-cost shortest-path tree.
func BuildPath[N Node, C Cost](target N, parents Reachable[N, C]) []N {
	rev := []N{target}
	next := target
	for {
		pred, ok := parents[next]
		if !ok {
			break
		}
		rev = append(rev, pred.Parent)
		next = pred.Parent
	}
	reverseInPlace(rev)
	return rev
}

func reverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
