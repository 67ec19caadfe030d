// Package comb enumerates k-subsets (for every k from 1 up to a limit)
// of a set of indices, optionally pruning subsets that contain a pair
// flagged as mutually exclusive. It is the engine behind choosing which
// of a company's candidate paths to operate together.
package comb

// Iterator lazily walks every subset {i1 < i2 < ... < im} of {0, ..., n-1}
// with 1 <= m <= kMax, depth-first, restarting exactly where it left off
// each call to Next. It never reuses the seen combination, so callers
// can resume from any point (e.g. after a shard boundary) by constructing
// a new Iterator covering the remaining range.
type Iterator struct {
	n, kMax int
	topLo   int
	topHi   int
	exact   bool
	ignore  func(i, j int) bool

	items []int
	cur   int
}

// New returns an iterator over every subset of {0,...,n-1} of size 1..kMax.
func New(n, kMax int) *Iterator {
	return NewFiltered(n, kMax, nil)
}

// NewFiltered is like New, but skips any subset containing a pair (i, j)
// for which ignore reports true. Because the search is depth-first,
// pruning on a pair eliminates every subset that would have contained it
// without visiting them individually.
func NewFiltered(n, kMax int, ignore func(i, j int) bool) *Iterator {
	return &Iterator{n: n, kMax: kMax, topLo: 0, topHi: n, ignore: ignore, items: make([]int, 0, kMax)}
}

// NewExactK returns an iterator over every subset of {0,...,n-1} of
// exactly size k.
func NewExactK(n, k int) *Iterator {
	it := NewFiltered(n, k, nil)
	it.exact = true
	return it
}

// NewShard returns an iterator restricted to subsets whose smallest
// (leading) index falls in [lo, hi). Running one Shard per disjoint
// range over {0,...,n-1} and merging their outputs produces exactly the
// same combinations as a single unsharded Iterator, letting the search
// be split across workers.
func NewShard(n, kMax, lo, hi int, ignore func(i, j int) bool) *Iterator {
	it := NewFiltered(n, kMax, ignore)
	it.topLo, it.topHi = lo, hi
	it.cur = lo
	return it
}

// Next returns the next combination in the sequence, and false once
// exhausted. The returned slice is owned by the caller.
func (it *Iterator) Next() ([]int, bool) {
	for {
		boundary := it.n
		if len(it.items) == 0 {
			boundary = it.topHi
		}

		if it.cur >= boundary {
			if len(it.items) == 0 {
				return nil, false
			}
			prev := it.items[len(it.items)-1]
			it.items = it.items[:len(it.items)-1]
			it.cur = prev + 1
			continue
		}

		if it.ignore != nil {
			conflict := false
			for _, x := range it.items {
				if it.ignore(x, it.cur) {
					conflict = true
					break
				}
			}
			if conflict {
				it.cur++
				continue
			}
		}

		it.items = append(it.items, it.cur)
		full := len(it.items) >= it.kMax

		if !full {
			it.cur = it.items[len(it.items)-1] + 1
			if it.exact {
				continue
			}
			return clone(it.items), true
		}

		out := clone(it.items)
		it.items = it.items[:len(it.items)-1]
		it.cur++
		return out, true
	}
}

func clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
