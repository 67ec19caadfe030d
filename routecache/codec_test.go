package routecache

import (
	"testing"

	"hexroute/conflict"
	"hexroute/connectivity"
	"hexroute/pathfind"
)

func samplePath() *pathfind.Path {
	anchor := connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: 0, Col: 0}, SpaceIx: 0}
	cityA := connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 0, Col: 0}, Index: 0}
	faceA := connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: 0}, Index: 0}
	faceB := connectivity.Element{Kind: connectivity.KindFace, Hex: connectivity.HexAddr{Row: 0, Col: 1}, Index: 3}
	cityB := connectivity.Element{Kind: connectivity.KindCity, Hex: connectivity.HexAddr{Row: 0, Col: 1}, Index: 0}

	conflicts := conflict.NewSet()
	conflicts.Add(conflict.FacePair(faceA, faceB), conflict.CenterItem(cityA), conflict.CenterItem(cityB))
	routeConflicts := conflict.NewSet()
	routeConflicts.Add(conflict.FacePair(faceA, faceB))

	return &pathfind.Path{
		Anchor:   anchor,
		Elements: []connectivity.Element{cityA, faceA, faceB, cityB},
		Visits: []pathfind.Visit{
			{Elem: cityA, Stop: true, Revenue: 20},
			{Elem: cityB, Stop: true, Revenue: 30},
		},
		NumHexes:       2,
		Conflicts:      conflicts,
		RouteConflicts: routeConflicts,
	}
}

func TestEncodeDecodePathsRoundTrips(t *testing.T) {
	want := []*pathfind.Path{samplePath()}

	data, err := encodePaths(want)
	if err != nil {
		t.Fatalf("encodePaths: %v", err)
	}

	got, err := decodePaths(data)
	if err != nil {
		t.Fatalf("decodePaths: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d paths, want 1", len(got))
	}
	gp, wp := got[0], want[0]

	if gp.Anchor != wp.Anchor {
		t.Errorf("anchor = %v, want %v", gp.Anchor, wp.Anchor)
	}
	if len(gp.Elements) != len(wp.Elements) {
		t.Fatalf("elements len = %d, want %d", len(gp.Elements), len(wp.Elements))
	}
	for i := range wp.Elements {
		if gp.Elements[i] != wp.Elements[i] {
			t.Errorf("element[%d] = %v, want %v", i, gp.Elements[i], wp.Elements[i])
		}
	}
	if gp.TotalRevenue() != wp.TotalRevenue() {
		t.Errorf("total revenue = %d, want %d", gp.TotalRevenue(), wp.TotalRevenue())
	}
	if gp.Conflicts.Len() != wp.Conflicts.Len() {
		t.Errorf("conflicts len = %d, want %d", gp.Conflicts.Len(), wp.Conflicts.Len())
	}
	if !gp.Conflicts.Disjoint(conflict.NewSet()) {
		t.Errorf("expected decoded conflicts to still behave as a conflict.Set")
	}
	for _, it := range wp.Conflicts.Items() {
		if !gp.Conflicts.Contains(it) {
			t.Errorf("decoded conflicts missing item %v", it)
		}
	}
	if gp.RouteConflicts.Len() != wp.RouteConflicts.Len() {
		t.Errorf("route conflicts len = %d, want %d", gp.RouteConflicts.Len(), wp.RouteConflicts.Len())
	}
}

func TestKeyDigestDistinguishesCriteria(t *testing.T) {
	base := Key{MapHash: "m1", Company: "X", Phase: "phase1", Criteria: pathfind.Criteria{ConflictRule: conflict.RuleFacesAndCenters}}
	stops := 3
	withStops := base
	withStops.Criteria.MaxStops = &stops

	if base.digest() == withStops.digest() {
		t.Errorf("expected different digests for criteria differing only in MaxStops")
	}

	other := base
	other.Company = "Y"
	if base.digest() == other.digest() {
		t.Errorf("expected different digests for different companies")
	}

	repeat := Key{MapHash: "m1", Company: "X", Phase: "phase1", Criteria: pathfind.Criteria{ConflictRule: conflict.RuleFacesAndCenters}}
	if base.digest() != repeat.digest() {
		t.Errorf("expected identical Keys to produce identical digests")
	}
}
