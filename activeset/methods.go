package activeset

// Remove unlinks slot from the live list. Removing an already-dead or
// out-of-range slot is undefined behavior — the clustering core never does
// this, since it tracks which label was just merged away.
//
// Complexity: O(1).
func (s *Set) Remove(slot int) {
	p := s.prev[slot]
	n := s.next[slot]
	if p != none {
		s.next[p] = n
	} else {
		s.head = n
	}
	if n != none {
		s.prev[n] = p
	} else {
		s.tail = p
	}
	s.dead[slot] = true
	s.size--
}

// IsLive reports whether slot is still present in the active set.
//
// Complexity: O(1).
func (s *Set) IsLive(slot int) bool {
	return !s.dead[slot]
}

// Successor returns the next live slot after slot, or none if slot is the
// last live slot. slot itself need not be live (e.g. it may be the label
// just removed); the caller is responsible for only querying meaningful
// positions.
//
// Complexity: O(1).
func (s *Set) Successor(slot int) int {
	return s.next[slot]
}

// Predecessor returns the previous live slot before slot, or none if slot
// is the first live slot.
//
// Complexity: O(1).
func (s *Set) Predecessor(slot int) int {
	return s.prev[slot]
}

// First returns the first live slot, or none if the set is empty.
func (s *Set) First() int {
	return s.head
}

// None is the sentinel value returned by Successor/Predecessor/First when
// there is no such slot.
const None = none

// Live calls fn for every live slot in ascending order. fn must not mutate
// the set while Live is iterating.
//
// Complexity: O(size).
func (s *Set) Live(fn func(slot int)) {
	for i := s.head; i != none; i = s.next[i] {
		fn(i)
	}
}

// LiveSlice materializes the live slots in ascending order. Convenience for
// callers (e.g. tests) that want a snapshot rather than a callback.
//
// Complexity: O(size).
func (s *Set) LiveSlice() []int {
	out := make([]int, 0, s.size)
	s.Live(func(slot int) { out = append(out, slot) })

	return out
}
