package main

import "hexroute/connectivity"

// fixtureMap is a small hand-built board used to demonstrate Optimize end
// to end: a Y-shaped network anchored at two company-held cities, with a
// branch to an off-board terminal. It plays the same role as the
// teacher's mock distance provider and JSON seed data — enough of a
// fixture to run the pipeline without a real map package.
//
//	cityA(20) -- faceA -- faceJ -- dit(10) -- faceJ2 -- faceC -- cityC(40)
//	                                  \
//	                                   faceT -- faceB -- cityB(30, terminal)
type fixtureMap struct {
	neighbors map[connectivity.Element][]connectivity.Element
	terminal  map[connectivity.Element]bool
	revenue   map[connectivity.Element]int
	tokens    map[string][]connectivity.TokenSpace
}

var (
	cityA = connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 0, Col: 0}, Index: 0}
	faceA = connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: 0}, Index: 0}
	faceJ = connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 1, Col: 0}, Index: 0}
	dit   = connectivity.Element{Kind: connectivity.KindDit, Hex: connectivity.HexAddr{Row: 1, Col: 0}, Index: 0}
	faceT = connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 1, Col: 0}, Index: 1}
	faceB = connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 1, Col: 1}, Index: 4}
	cityB = connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 1, Col: 1}, Index: 0}
	faceJ2 = connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 1, Col: 0}, Index: 2}
	faceC = connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 2, Col: 0}, Index: 3}
	cityC = connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 2, Col: 0}, Index: 0}
)

func newFixtureMap(company string) *fixtureMap {
	edges := [][2]connectivity.Element{
		{cityA, faceA},
		{faceA, faceJ},
		{faceJ, dit},
		{dit, faceT},
		{faceT, faceB},
		{faceB, cityB},
		{dit, faceJ2},
		{faceJ2, faceC},
		{faceC, cityC},
	}

	neighbors := make(map[connectivity.Element][]connectivity.Element)
	for _, e := range edges {
		neighbors[e[0]] = append(neighbors[e[0]], e[1])
		neighbors[e[1]] = append(neighbors[e[1]], e[0])
	}

	return &fixtureMap{
		neighbors: neighbors,
		terminal:  map[connectivity.Element]bool{cityB: true},
		revenue:   map[connectivity.Element]int{cityA: 20, cityB: 30, cityC: 40, dit: 10},
		tokens: map[string][]connectivity.TokenSpace{
			company: {
				{Hex: cityA.Hex, SpaceIx: cityA.Index},
				{Hex: cityC.Hex, SpaceIx: cityC.Index},
			},
		},
	}
}

func (m *fixtureMap) Neighbors(e connectivity.Element) []connectivity.Element {
	return m.neighbors[e]
}

func (m *fixtureMap) IsTerminal(e connectivity.Element) bool {
	return m.terminal[e]
}

func (m *fixtureMap) TokensOf(company string) []connectivity.TokenSpace {
	return m.tokens[company]
}

func (m *fixtureMap) OwnTokenAt(company string, e connectivity.Element) (connectivity.TokenSpace, bool) {
	if e.Kind != connectivity.KindCity {
		return connectivity.TokenSpace{}, false
	}
	for _, ts := range m.tokens[company] {
		if ts.Hex == e.Hex && ts.SpaceIx == e.Index {
			return ts, true
		}
	}
	return connectivity.TokenSpace{}, false
}

func (m *fixtureMap) Revenue(e connectivity.Element, _ connectivity.Phase) int {
	return m.revenue[e]
}

// mapHash is a stable identifier for fixtureMap's one hard-coded layout,
// the kind of value a real map package would derive from its tile
// placements. Since this demo only ever builds one map, a constant is
// enough; routecache.Key just needs any caller-supplied string that
// changes when the underlying board does.
const mapHash = "fixture-y-network-v1"
