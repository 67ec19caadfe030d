package perm

import (
	"strconv"
	"strings"
)

// ClassFilter wraps KPermutations, skipping any permutation whose
// sequence of element classes duplicates one already yielded. Two
// trains of the same type are interchangeable, so only one permutation
// per distinct class ordering is useful; the set of class orderings
// already seen is purely an internal dedup cache, not an order callers
// observe, so a hash set is the right tool here.
type ClassFilter struct {
	classes []int
	seen    map[string]bool
	perms   *KPermutations
}

// NewClassFilter returns an iterator over k-permutations of
// {0, ..., len(classes)-1}, unique up to the sequence of classes
// each permutation's indices map to.
func NewClassFilter(classes []int, k int) *ClassFilter {
	return &ClassFilter{
		classes: classes,
		seen:    map[string]bool{},
		perms:   NewKPermutations(len(classes), k),
	}
}

// Next returns the next class-unique permutation, and false once
// exhausted.
func (f *ClassFilter) Next() ([]int, bool) {
	for {
		ixs, ok := f.perms.Next()
		if !ok {
			return nil, false
		}
		key := f.classKey(ixs)
		if !f.seen[key] {
			f.seen[key] = true
			return ixs, true
		}
	}
}

func (f *ClassFilter) classKey(ixs []int) string {
	var b strings.Builder
	for _, ix := range ixs {
		b.WriteString(strconv.Itoa(f.classes[ix]))
		b.WriteByte(',')
	}
	return b.String()
}
