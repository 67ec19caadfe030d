package main

import "hexroute/connectivity"

// synthMap is a generated linear chain of n cities, each joined to its
// neighbor by a single face crossing, with a short dead-end spur off
// every third city to give the path builder branches to explore. The
// company holds tokens at the first and last city, so path enumeration
// has to walk (and the store has to join) the whole chain. Size scales
// the combinatorial cost of Optimize linearly in enumeration work and
// roughly exponentially in the combination/permutation search, the same
// shape graphbench.go exercises over OSM graphs at varying sizes.
type synthMap struct {
	neighbors map[connectivity.Element][]connectivity.Element
	terminal  map[connectivity.Element]bool
	revenue   map[connectivity.Element]int
	tokens    []connectivity.TokenSpace
}

func newSynthMap(n int) *synthMap {
	m := &synthMap{
		neighbors: make(map[connectivity.Element][]connectivity.Element),
		terminal:  make(map[connectivity.Element]bool),
		revenue:   make(map[connectivity.Element]int),
	}

	link := func(a, b connectivity.Element) {
		m.neighbors[a] = append(m.neighbors[a], b)
		m.neighbors[b] = append(m.neighbors[b], a)
	}

	cityAt := func(col int) connectivity.Element {
		return connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 0, Col: col}, Index: 0}
	}
	faceAt := func(col, ix int) connectivity.Element {
		return connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: col}, Index: ix}
	}

	for col := 0; col < n; col++ {
		c := cityAt(col)
		m.revenue[c] = 10 * (col%6 + 1)
		if col+1 < n {
			fOut := faceAt(col, 0)
			fIn := faceAt(col+1, 1)
			link(c, fOut)
			link(fOut, fIn)
			link(fIn, cityAt(col+1))
		}
		if col%3 == 1 {
			spurFace := faceAt(col, 2)
			spurCity := connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 1, Col: col}, Index: 0}
			link(c, spurFace)
			link(spurFace, spurCity)
			m.revenue[spurCity] = 5 * (col%4 + 1)
			m.terminal[spurCity] = true
		}
	}

	m.tokens = []connectivity.TokenSpace{
		{Hex: cityAt(0).Hex, SpaceIx: 0},
		{Hex: cityAt(n - 1).Hex, SpaceIx: 0},
	}

	return m
}

func (m *synthMap) Neighbors(e connectivity.Element) []connectivity.Element {
	return m.neighbors[e]
}

func (m *synthMap) IsTerminal(e connectivity.Element) bool {
	return m.terminal[e]
}

func (m *synthMap) TokensOf(company string) []connectivity.TokenSpace {
	return m.tokens
}

func (m *synthMap) OwnTokenAt(company string, e connectivity.Element) (connectivity.TokenSpace, bool) {
	if e.Kind != connectivity.KindCity {
		return connectivity.TokenSpace{}, false
	}
	for _, ts := range m.tokens {
		if ts.Hex == e.Hex && ts.SpaceIx == e.Index {
			return ts, true
		}
	}
	return connectivity.TokenSpace{}, false
}

func (m *synthMap) Revenue(e connectivity.Element, _ connectivity.Phase) int {
	return m.revenue[e]
}
