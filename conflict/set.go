package conflict

import (
	"github.com/emirpasic/gods/sets/treeset"
)

func itemComparator(a, b interface{}) int {
	return a.(Item).Compare(b.(Item))
}

// Set is an ordered collection of conflict Items, backed by a red-black
// tree rather than a hash table so that iteration order always matches
// Item's total order — load-bearing for the merge-style disjointness
// check below, which walks two sets in lockstep.
type Set struct {
	tree *treeset.Set
}

// NewSet returns an empty conflict set.
func NewSet() *Set {
	return &Set{tree: treeset.NewWith(itemComparator)}
}

// Add inserts items into the set, ignoring duplicates.
func (s *Set) Add(items ...Item) {
	for _, it := range items {
		s.tree.Add(it)
	}
}

// Len returns the number of distinct items in the set.
func (s *Set) Len() int {
	return s.tree.Size()
}

// Contains reports whether item is already a member of the set.
func (s *Set) Contains(item Item) bool {
	return s.tree.Contains(item)
}

// Remove deletes item from the set, if present.
func (s *Set) Remove(item Item) {
	s.tree.Remove(item)
}

// Items returns the set's contents in ascending order.
func (s *Set) Items() []Item {
	vals := s.tree.Values()
	out := make([]Item, len(vals))
	for i, v := range vals {
		out[i] = v.(Item)
	}
	return out
}

// Disjoint reports whether s and other share no items. It walks both
// sets' sorted iterators in lockstep and returns as soon as a common
// item is found, so two sets that share an early item are rejected in
// sub-linear time rather than requiring a full scan.
func (s *Set) Disjoint(other *Set) bool {
	a, b := s.tree.Iterator(), other.tree.Iterator()
	okA, okB := a.Next(), b.Next()
	for okA && okB {
		ia, ib := a.Value().(Item), b.Value().(Item)
		switch c := ia.Compare(ib); {
		case c < 0:
			okA = a.Next()
		case c > 0:
			okB = b.Next()
		default:
			return false
		}
	}
	return true
}

// Union returns a new set containing every item from both s and other.
func (s *Set) Union(other *Set) *Set {
	out := NewSet()
	out.Add(s.Items()...)
	out.Add(other.Items()...)
	return out
}
