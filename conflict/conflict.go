// Package conflict represents the face crossings and center elements that
// two paths or routes are forbidden from sharing, and the ordered sets
// used to test that disjointness efficiently.
package conflict

import (
	"fmt"

	"hexroute/connectivity"
)

// Rule selects how coarsely two paths are considered to conflict.
// TrackOnly is deliberately not a usable rule: the path builder already
// forbids revisiting any Element within a single path, so a rule that
// only looks at bare track would never record anything and silently
// let unrelated paths overlap. Constructing a Criteria with it is
// rejected.
type Rule uint8

const (
	RuleTrackOnly Rule = iota
	RuleFacesOnly
	RuleFacesAndCenters
)

func (r Rule) String() string {
	switch r {
	case RuleTrackOnly:
		return "track-only"
	case RuleFacesOnly:
		return "faces-only"
	case RuleFacesAndCenters:
		return "faces-and-centers"
	default:
		return "unknown"
	}
}

// Valid reports whether r may be used to build or combine paths.
func (r Rule) Valid() bool {
	return r == RuleFacesOnly || r == RuleFacesAndCenters
}

// ItemKind distinguishes the two shapes a conflict item can take.
type ItemKind uint8

const (
	// ItemFacePair marks a crossing between two hexes, via one face on
	// each side.
	ItemFacePair ItemKind = iota
	// ItemCenter marks occupancy of a single city or dit element.
	ItemCenter
)

// Item is one thing two paths are forbidden from sharing: either a
// specific hex-to-hex face crossing, or a specific center (city/dit).
// The two FacePair endpoints are stored in canonical (min, max) order
// so the same crossing always produces the same Item regardless of
// which direction it was traversed.
type Item struct {
	Kind ItemKind

	HexA, HexB   connectivity.HexAddr
	FaceA, FaceB int

	Center connectivity.Element
}

// FacePair builds the canonical Item for a crossing between elements a
// and b, which must both be KindFace elements on different hexes.
func FacePair(a, b connectivity.Element) Item {
	type half struct {
		hex  connectivity.HexAddr
		face int
	}
	ha, hb := half{a.Hex, a.Index}, half{b.Hex, b.Index}
	if a.Hex.Compare(b.Hex) > 0 || (a.Hex.Compare(b.Hex) == 0 && a.Index > b.Index) {
		ha, hb = hb, ha
	}
	return Item{Kind: ItemFacePair, HexA: ha.hex, FaceA: ha.face, HexB: hb.hex, FaceB: hb.face}
}

// CenterItem builds the Item recording occupancy of a city or dit element.
func CenterItem(e connectivity.Element) Item {
	return Item{Kind: ItemCenter, Center: e}
}

// Compare gives Item a total order, used to keep ConflictSet sorted.
func (it Item) Compare(o Item) int {
	if it.Kind != o.Kind {
		return int(it.Kind) - int(o.Kind)
	}
	switch it.Kind {
	case ItemFacePair:
		if c := it.HexA.Compare(o.HexA); c != 0 {
			return c
		}
		if it.FaceA != o.FaceA {
			return it.FaceA - o.FaceA
		}
		if c := it.HexB.Compare(o.HexB); c != 0 {
			return c
		}
		return it.FaceB - o.FaceB
	default:
		return it.Center.Compare(o.Center)
	}
}

func (it Item) String() string {
	switch it.Kind {
	case ItemFacePair:
		return fmt.Sprintf("face(%s#%d<->%s#%d)", it.HexA, it.FaceA, it.HexB, it.FaceB)
	default:
		return fmt.Sprintf("center(%s)", it.Center)
	}
}

// RuleItemForCenter returns the Item (if any) that visiting e under rule
// contributes to a path's or route's conflict set. Only FacesAndCenters
// records centers; FacesOnly ignores them.
func RuleItemForCenter(rule Rule, e connectivity.Element) (Item, bool) {
	if rule != RuleFacesAndCenters {
		return Item{}, false
	}
	return CenterItem(e), true
}

// RuleItemForCrossing returns the Item (if any) that crossing from face a
// to face b contributes under rule. Both rules record face crossings.
func RuleItemForCrossing(rule Rule, a, b connectivity.Element) (Item, bool) {
	if !rule.Valid() {
		return Item{}, false
	}
	return FacePair(a, b), true
}
