package conflict

import (
	"testing"

	"hexroute/connectivity"
)

func hex(row, col int) connectivity.HexAddr {
	return connectivity.HexAddr{Row: row, Col: col}
}

func TestSetDisjointNoOverlap(t *testing.T) {
	a := NewSet()
	a.Add(CenterItem(connectivity.Element{Kind: connectivity.KindCity, Hex: hex(0, 0), Index: 0}))

	b := NewSet()
	b.Add(CenterItem(connectivity.Element{Kind: connectivity.KindCity, Hex: hex(1, 1), Index: 0}))

	if !a.Disjoint(b) {
		t.Fatalf("expected sets to be disjoint")
	}
}

func TestSetDisjointSharedCenter(t *testing.T) {
	shared := connectivity.Element{Kind: connectivity.KindCity, Hex: hex(2, 2), Index: 0}

	a := NewSet()
	a.Add(CenterItem(connectivity.Element{Kind: connectivity.KindCity, Hex: hex(0, 0), Index: 0}), CenterItem(shared))

	b := NewSet()
	b.Add(CenterItem(shared), CenterItem(connectivity.Element{Kind: connectivity.KindCity, Hex: hex(3, 3), Index: 0}))

	if a.Disjoint(b) {
		t.Fatalf("expected sets to conflict on shared center")
	}
}

func TestSetDisjointSharedFacePairCanonicalizes(t *testing.T) {
	left := connectivity.Element{Kind: connectivity.KindFace, Hex: hex(0, 0), Index: 2}
	right := connectivity.Element{Kind: connectivity.KindFace, Hex: hex(0, 1), Index: 5}

	a := NewSet()
	a.Add(FacePair(left, right))

	b := NewSet()
	b.Add(FacePair(right, left)) // traversed in the opposite direction

	if a.Disjoint(b) {
		t.Fatalf("expected face crossing to canonicalize regardless of direction")
	}
}

func TestSetUnionLen(t *testing.T) {
	a := NewSet()
	a.Add(CenterItem(connectivity.Element{Kind: connectivity.KindCity, Hex: hex(0, 0), Index: 0}))
	b := NewSet()
	b.Add(CenterItem(connectivity.Element{Kind: connectivity.KindCity, Hex: hex(1, 0), Index: 0}))

	u := a.Union(b)
	if u.Len() != 2 {
		t.Errorf("union len = %d, want 2", u.Len())
	}
}

func TestRuleValidRejectsTrackOnly(t *testing.T) {
	if RuleTrackOnly.Valid() {
		t.Errorf("RuleTrackOnly must not be valid")
	}
	if !RuleFacesOnly.Valid() || !RuleFacesAndCenters.Valid() {
		t.Errorf("FacesOnly and FacesAndCenters must both be valid")
	}
}

func TestRuleItemForCenterRespectsRule(t *testing.T) {
	e := connectivity.Element{Kind: connectivity.KindCity, Hex: hex(0, 0), Index: 0}
	if _, ok := RuleItemForCenter(RuleFacesOnly, e); ok {
		t.Errorf("FacesOnly must not record center conflicts")
	}
	if _, ok := RuleItemForCenter(RuleFacesAndCenters, e); !ok {
		t.Errorf("FacesAndCenters must record center conflicts")
	}
}
