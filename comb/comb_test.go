package comb

import "testing"

func drain(it *Iterator) [][]int {
	var out [][]int
	for {
		c, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func TestIteratorCountsAllSizesUpToMax(t *testing.T) {
	combs := drain(New(5, 3))
	// 5 1-combinations + 10 2-combinations + 10 3-combinations.
	want := 5 + 10 + 10
	if len(combs) != want {
		t.Fatalf("got %d combinations, want %d", len(combs), want)
	}
	for _, c := range combs {
		if len(c) < 1 || len(c) > 3 {
			t.Errorf("combination %v has invalid size", c)
		}
	}
}

func TestIteratorFilteredPrunesPairs(t *testing.T) {
	ignore := func(i, j int) bool { return j == 2*i }
	combs := drain(NewFiltered(5, 3, ignore))
	want := 5 + 10 + 10 - 7
	if len(combs) != want {
		t.Fatalf("got %d combinations, want %d", len(combs), want)
	}
	for _, c := range combs {
		for a := 0; a < len(c); a++ {
			for b := 0; b < len(c); b++ {
				if a == b {
					continue
				}
				if ignore(c[a], c[b]) {
					t.Errorf("combination %v contains an ignored pair (%d, %d)", c, c[a], c[b])
				}
			}
		}
	}
}

func TestIteratorExactKSizes(t *testing.T) {
	for k, want := range map[int]int{1: 5, 2: 10, 3: 10} {
		combs := drain(NewExactK(5, k))
		if len(combs) != want {
			t.Errorf("k=%d: got %d combinations, want %d", k, len(combs), want)
		}
		for _, c := range combs {
			if len(c) != k {
				t.Errorf("k=%d: combination %v has wrong size", k, c)
			}
		}
	}
}

func TestShardsPartitionTheSameSpace(t *testing.T) {
	whole := drain(New(6, 2))

	var sharded [][]int
	sharded = append(sharded, drain(NewShard(6, 2, 0, 3, nil))...)
	sharded = append(sharded, drain(NewShard(6, 2, 3, 6, nil))...)

	if len(whole) != len(sharded) {
		t.Fatalf("sharded total = %d, unsharded total = %d", len(sharded), len(whole))
	}

	seen := map[string]bool{}
	for _, c := range whole {
		seen[key(c)] = true
	}
	for _, c := range sharded {
		if !seen[key(c)] {
			t.Errorf("shard produced combination %v not in unsharded result", c)
		}
		delete(seen, key(c))
	}
	if len(seen) != 0 {
		t.Errorf("sharded result missing %d combinations", len(seen))
	}
}

func key(c []int) string {
	s := ""
	for _, v := range c {
		s += string(rune('a' + v))
	}
	return s
}
