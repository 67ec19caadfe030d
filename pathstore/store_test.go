package pathstore

import (
	"context"
	"testing"

	"hexroute/conflict"
	"hexroute/connectivity"
	"hexroute/pathfind"
)

// forkView is a Y-shaped map: a single anchor city with two independent
// branches, each ending at its own terminal city. This is the minimal
// shape that exercises path joining (two elementary paths sharing only
// the anchor, which contributes no conflict item).
type forkView struct {
	neighbors map[connectivity.Element][]connectivity.Element
	terminal  map[connectivity.Element]bool
	revenue   map[connectivity.Element]int
	anchor    connectivity.Element
}

func (v *forkView) Neighbors(e connectivity.Element) []connectivity.Element { return v.neighbors[e] }
func (v *forkView) IsTerminal(e connectivity.Element) bool                  { return v.terminal[e] }
func (v *forkView) TokensOf(company string) []connectivity.TokenSpace      { return nil }
func (v *forkView) OwnTokenAt(company string, e connectivity.Element) (connectivity.TokenSpace, bool) {
	if e == v.anchor {
		return connectivity.TokenSpace{Hex: e.Hex, SpaceIx: e.Index}, true
	}
	return connectivity.TokenSpace{}, false
}
func (v *forkView) Revenue(e connectivity.Element, phase connectivity.Phase) int { return v.revenue[e] }

func buildForkView() (*forkView, connectivity.TokenSpace) {
	anchor := connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 0, Col: 0}, Index: 0}
	faceLeft := connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: 0}, Index: 0}
	faceLeftIn := connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: -1}, Index: 3}
	cityLeft := connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 0, Col: -1}, Index: 0}

	faceRight := connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: 0}, Index: 1}
	faceRightIn := connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: 1}, Index: 4}
	cityRight := connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 0, Col: 1}, Index: 0}

	v := &forkView{
		anchor: anchor,
		neighbors: map[connectivity.Element][]connectivity.Element{
			anchor:      {faceLeft, faceRight},
			faceLeft:    {faceLeftIn},
			faceLeftIn:  {cityLeft},
			cityLeft:    {},
			faceRight:   {faceRightIn},
			faceRightIn: {cityRight},
			cityRight:   {},
		},
		terminal: map[connectivity.Element]bool{cityLeft: true, cityRight: true},
		revenue: map[connectivity.Element]int{
			anchor:    10,
			cityLeft:  20,
			cityRight: 30,
		},
	}
	return v, connectivity.TokenSpace{Hex: anchor.Hex, SpaceIx: anchor.Index}
}

func TestStoreJoinCombinesBothBranches(t *testing.T) {
	view, anchor := buildForkView()
	criteria, err := pathfind.NewCriteria(nil, nil, conflict.RuleFacesAndCenters, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := pathfind.New("X", criteria, "phase1")

	elementary, err := b.PathsFrom(context.Background(), view, anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// anchor-only, anchor->left, anchor->right
	if len(elementary) != 3 {
		t.Fatalf("got %d elementary paths, want 3", len(elementary))
	}

	store := New(criteria, elementary)
	store.Join()

	paths := store.Paths()
	var joined *pathfind.Path
	for _, p := range paths {
		if len(p.Visits) == 3 {
			joined = p
		}
	}
	if joined == nil {
		t.Fatalf("expected a composite path spanning both branches")
	}
	if got := joined.TotalRevenue(); got != 60 {
		t.Errorf("composite revenue = %d, want 60", got)
	}
	if joined.NumHexes != 3 {
		t.Errorf("composite hexes = %d, want 3", joined.NumHexes)
	}
}

func TestStoreJoinRespectsMaxStops(t *testing.T) {
	view, anchor := buildForkView()
	maxStops := 2
	criteria, err := pathfind.NewCriteria(&maxStops, nil, conflict.RuleFacesAndCenters, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := pathfind.New("X", criteria, "phase1")

	elementary, err := b.PathsFrom(context.Background(), view, anchor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store := New(criteria, elementary)
	store.Join()

	for _, p := range store.Paths() {
		if len(p.Visits) > maxStops {
			t.Errorf("join produced a path with %d visits, exceeding max stops %d", len(p.Visits), maxStops)
		}
	}
}
