package activeset

// none marks an absent link (no predecessor/no successor) in next/prev.
const none = -1

// Set is a doubly linked list over the slots [0, N), implemented with two
// flat int slices rather than pointer-chasing nodes — N is fixed for the
// life of a run, so a slice-backed list gives the same O(1) link/unlink
// operations with better cache locality than allocating a node per slot.
//
// The zero value is not usable; construct with New.
type Set struct {
	next []int  // next[i]: successor live slot, or none
	prev []int  // prev[i]: predecessor live slot, or none
	dead []bool // dead[i]: true once slot i has been removed
	head int    // first live slot, or none if empty
	tail int    // last live slot, or none if empty
	size int    // number of live slots
}

// Len returns the number of currently live slots.
func (s *Set) Len() int {
	return s.size
}
