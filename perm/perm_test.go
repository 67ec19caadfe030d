package perm

import "testing"

func drainPerms(p *KPermutations) [][]int {
	var out [][]int
	for {
		v, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestKPermutations1of1(t *testing.T) {
	got := drainPerms(NewKPermutations(1, 1))
	if len(got) != 1 {
		t.Fatalf("got %d permutations, want 1", len(got))
	}
}

func TestKPermutations1of5(t *testing.T) {
	got := drainPerms(NewKPermutations(5, 1))
	if len(got) != 5 {
		t.Fatalf("got %d permutations, want 5", len(got))
	}
}

func TestKPermutations2of5(t *testing.T) {
	got := drainPerms(NewKPermutations(5, 2))
	if len(got) != 20 {
		t.Fatalf("got %d permutations, want 20", len(got))
	}
	seen := map[[2]int]bool{}
	for _, p := range got {
		key := [2]int{p[0], p[1]}
		if seen[key] {
			t.Errorf("permutation %v repeated", p)
		}
		seen[key] = true
	}
}

func TestKPermutations2of2(t *testing.T) {
	got := drainPerms(NewKPermutations(2, 2))
	if len(got) != 2 {
		t.Fatalf("got %d permutations, want 2", len(got))
	}
}

func TestClassFilter5With2Classes(t *testing.T) {
	classes := []int{0, 0, 1, 1, 1}
	cf := NewClassFilter(classes, 2)
	var got [][]int
	for {
		v, ok := cf.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}
	if len(got) != 4 {
		t.Fatalf("got %d permutations, want 4", len(got))
	}
}

func TestClassFilter2With1Class(t *testing.T) {
	classes := []int{0, 0}
	cf := NewClassFilter(classes, 2)
	var count int
	for {
		if _, ok := cf.Next(); !ok {
			break
		}
		count++
	}
	if count != 1 {
		t.Fatalf("got %d permutations, want 1", count)
	}
}

func TestClassFilter2With2Classes(t *testing.T) {
	classes := []int{0, 1}
	cf := NewClassFilter(classes, 2)
	var count int
	for {
		if _, ok := cf.Next(); !ok {
			break
		}
		count++
	}
	if count != 2 {
		t.Fatalf("got %d permutations, want 2", count)
	}
}
