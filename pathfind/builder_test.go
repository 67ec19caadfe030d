package pathfind

import (
	"context"
	"testing"

	"hexroute/conflict"
	"hexroute/connectivity"
)

// fakeView is a tiny three-hex linear map used to exercise the DFS
// builder: hex A (anchor) -- face crossing -- hex B -- face crossing --
// hex C, where C is a terminal (off-board) city.
type fakeView struct {
	neighbors map[connectivity.Element][]connectivity.Element
	terminal  map[connectivity.Element]bool
	revenue   map[connectivity.Element]int
	ownTokens map[connectivity.Element]connectivity.TokenSpace
}

func (v *fakeView) Neighbors(e connectivity.Element) []connectivity.Element {
	return v.neighbors[e]
}

func (v *fakeView) IsTerminal(e connectivity.Element) bool {
	return v.terminal[e]
}

func (v *fakeView) TokensOf(company string) []connectivity.TokenSpace {
	return []connectivity.TokenSpace{{Hex: connectivity.HexAddr{Row: 0, Col: 0}, SpaceIx: 0}}
}

func (v *fakeView) OwnTokenAt(company string, e connectivity.Element) (connectivity.TokenSpace, bool) {
	ts, ok := v.ownTokens[e]
	return ts, ok
}

func (v *fakeView) Revenue(e connectivity.Element, phase connectivity.Phase) int {
	return v.revenue[e]
}

func hexAddr(row, col int) connectivity.HexAddr { return connectivity.HexAddr{Row: row, Col: col} }

func city(row, col, ix int) connectivity.Element {
	return connectivity.Element{Kind: connectivity.KindCity, Hex: hexAddr(row, col), Index: ix}
}

func face(row, col, ix int) connectivity.Element {
	return connectivity.Element{Kind: connectivity.KindFace, Hex: hexAddr(row, col), Index: ix}
}

func linearMap() (*fakeView, connectivity.TokenSpace) {
	startCity := city(0, 0, 0)
	faceA := face(0, 0, 0)
	faceB := face(0, 1, 3)
	cityB := city(0, 1, 0)
	faceB2 := face(0, 1, 1)
	faceC := face(0, 2, 4)
	cityC := city(0, 2, 0)

	v := &fakeView{
		neighbors: map[connectivity.Element][]connectivity.Element{
			startCity: {faceA},
			faceA:     {faceB},
			faceB:     {cityB},
			cityB:     {faceB2},
			faceB2:    {faceC},
			faceC:     {cityC},
			cityC:     {},
		},
		terminal: map[connectivity.Element]bool{cityC: true},
		revenue: map[connectivity.Element]int{
			startCity: 10,
			cityB:     20,
			cityC:     30,
		},
		ownTokens: map[connectivity.Element]connectivity.TokenSpace{
			startCity: {Hex: hexAddr(0, 0), SpaceIx: 0},
		},
	}
	return v, connectivity.TokenSpace{Hex: hexAddr(0, 0), SpaceIx: 0}
}

func TestBuilderPathsFromLinearMap(t *testing.T) {
	view, anchor := linearMap()
	criteria, err := NewCriteria(nil, nil, conflict.RuleFacesAndCenters, nil, false)
	if err != nil {
		t.Fatalf("unexpected error building criteria: %v", err)
	}
	b := New("X", criteria, "phase1")

	paths, err := b.PathsFrom(context.Background(), view, anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(paths))
	}

	revenues := map[connectivity.Element]int{}
	hexes := map[connectivity.Element]int{}
	for _, p := range paths {
		revenues[p.End()] = p.TotalRevenue()
		hexes[p.End()] = p.NumHexes
	}

	if revenues[city(0, 0, 0)] != 10 || hexes[city(0, 0, 0)] != 1 {
		t.Errorf("anchor path wrong: revenue=%d hexes=%d", revenues[city(0, 0, 0)], hexes[city(0, 0, 0)])
	}
	if revenues[city(0, 1, 0)] != 30 || hexes[city(0, 1, 0)] != 2 {
		t.Errorf("path to B wrong: revenue=%d hexes=%d", revenues[city(0, 1, 0)], hexes[city(0, 1, 0)])
	}
	if revenues[city(0, 2, 0)] != 60 || hexes[city(0, 2, 0)] != 3 {
		t.Errorf("path to C wrong: revenue=%d hexes=%d", revenues[city(0, 2, 0)], hexes[city(0, 2, 0)])
	}
}

func TestBuilderRespectsMaxLength(t *testing.T) {
	view, anchor := linearMap()
	maxLen := 2
	criteria, err := NewCriteria(nil, &maxLen, conflict.RuleFacesAndCenters, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := New("X", criteria, "phase1")

	paths, err := b.PathsFrom(context.Background(), view, anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2 (anchor + B, not C)", len(paths))
	}
}

func TestBuilderStopsAtTerminal(t *testing.T) {
	view, anchor := linearMap()
	criteria, _ := NewCriteria(nil, nil, conflict.RuleFacesAndCenters, nil, false)
	b := New("X", criteria, "phase1")

	paths, err := b.PathsFrom(context.Background(), view, anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range paths {
		if p.End() == city(0, 2, 0) && len(p.Elements) != 7 {
			t.Errorf("path ending at terminal city has %d elements, want 7 (no continuation past it)", len(p.Elements))
		}
	}
}

func TestNewCriteriaRejectsTrackOnly(t *testing.T) {
	if _, err := NewCriteria(nil, nil, conflict.RuleTrackOnly, nil, false); err == nil {
		t.Fatalf("expected error for RuleTrackOnly")
	}
}

func TestNewCriteriaRejectsNonPositiveBounds(t *testing.T) {
	zero := 0
	if _, err := NewCriteria(&zero, nil, conflict.RuleFacesAndCenters, nil, false); err == nil {
		t.Fatalf("expected error for zero max stops")
	}
	if _, err := NewCriteria(nil, &zero, conflict.RuleFacesAndCenters, nil, false); err == nil {
		t.Fatalf("expected error for zero max length")
	}
}

func TestNewCriteriaRejectsStricterRouteRule(t *testing.T) {
	stricter := conflict.RuleFacesAndCenters
	if _, err := NewCriteria(nil, nil, conflict.RuleFacesOnly, &stricter, false); err == nil {
		t.Fatalf("expected error: route rule stricter than path rule")
	}
}
