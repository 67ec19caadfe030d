// Package perm enumerates k-permutations of a set, used to assign an
// ordered set of trains to an ordered set of paths. When several trains
// share the same type, only one permutation per distinct class ordering
// is produced, since interchanging two identical trains can never change
// the revenue an assignment earns.
package perm

// KPermutations iterates over every k-permutation of {0, ..., n-1} using
// the "Simple, Efficient P(n, k) Algorithm" (Alistair Israel, 2009): a
// single array of n elements is repeatedly partially permuted in place,
// yielding its leading k elements as the next permutation each step.
type KPermutations struct {
	n, k  int
	a     []int
	edge  int
	first bool
}

// NewKPermutations returns an iterator over every k-permutation of
// {0, ..., n-1}.
func NewKPermutations(n, k int) *KPermutations {
	a := make([]int, n)
	for i := range a {
		a[i] = i
	}
	return &KPermutations{n: n, k: k, a: a, edge: k - 1, first: true}
}

// Next returns the next permutation, and false once exhausted.
func (p *KPermutations) Next() ([]int, bool) {
	if p.k == 1 {
		if len(p.a) == 0 {
			return nil, false
		}
		ix := p.a[len(p.a)-1]
		p.a = p.a[:len(p.a)-1]
		return []int{ix}, true
	}

	if p.first {
		p.first = false
		return clone(p.a[0:p.k]), true
	}

	j := p.k
	for j < p.n && p.a[p.edge] >= p.a[j] {
		j++
	}
	if j < p.n {
		p.a[p.edge], p.a[j] = p.a[j], p.a[p.edge]
	} else {
		if p.k < p.n+2 {
			numItems := (p.n - p.k) / 2
			for ix := 0; ix < numItems; ix++ {
				p.a[p.k+ix], p.a[p.n-ix-1] = p.a[p.n-ix-1], p.a[p.k+ix]
			}
		}

		i := p.edge - 1
		for p.a[i] >= p.a[i+1] {
			if i == 0 {
				return nil, false
			}
			i--
		}

		j = p.n - 1
		for j > i && p.a[i] >= p.a[j] {
			j--
		}
		p.a[i], p.a[j] = p.a[j], p.a[i]

		if (i + 1) < p.n+2 {
			numItems := (p.n - i - 1) / 2
			for ix := 0; ix < numItems; ix++ {
				p.a[i+1+ix], p.a[p.n-ix-1] = p.a[p.n-ix-1], p.a[i+1+ix]
			}
		}
	}

	return clone(p.a[0:p.k]), true
}

func clone(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
