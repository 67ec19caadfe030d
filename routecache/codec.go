package routecache

import (
	"encoding/json"
	"fmt"

	"hexroute/conflict"
	"hexroute/connectivity"
	"hexroute/pathfind"
)

// The wire* types are the JSON-serializable mirror of pathfind.Path.
// pathfind.Path carries a *conflict.Set, whose backing red-black tree has
// no exported fields a marshaler could walk, so every cache backend goes
// through these instead of marshaling the domain types directly.

type wireElement struct {
	Kind  connectivity.Kind
	Row   int
	Col   int
	Index int
}

func toWireElement(e connectivity.Element) wireElement {
	return wireElement{Kind: e.Kind, Row: e.Hex.Row, Col: e.Hex.Col, Index: e.Index}
}

func (w wireElement) toElement() connectivity.Element {
	return connectivity.Element{Kind: w.Kind, Hex: connectivity.HexAddr{Row: w.Row, Col: w.Col}, Index: w.Index}
}

type wireVisit struct {
	Elem    wireElement
	Stop    bool
	Revenue int
}

type wireItem struct {
	Kind  conflict.ItemKind
	HexA  wireHex
	FaceA int
	HexB  wireHex
	FaceB int
	// Center is only populated for ItemKind == ItemCenter.
	Center wireElement
}

type wireHex struct{ Row, Col int }

func toWireItem(it conflict.Item) wireItem {
	return wireItem{
		Kind:   it.Kind,
		HexA:   wireHex{it.HexA.Row, it.HexA.Col},
		FaceA:  it.FaceA,
		HexB:   wireHex{it.HexB.Row, it.HexB.Col},
		FaceB:  it.FaceB,
		Center: toWireElement(it.Center),
	}
}

func (w wireItem) toItem() conflict.Item {
	return conflict.Item{
		Kind:   w.Kind,
		HexA:   connectivity.HexAddr{Row: w.HexA.Row, Col: w.HexA.Col},
		FaceA:  w.FaceA,
		HexB:   connectivity.HexAddr{Row: w.HexB.Row, Col: w.HexB.Col},
		FaceB:  w.FaceB,
		Center: w.Center.toElement(),
	}
}

type wirePath struct {
	AnchorHex     wireHex
	AnchorSpaceIx int
	Elements      []wireElement
	Visits        []wireVisit
	NumHexes      int
	Conflicts     []wireItem
	RouteConflicts []wireItem
}

func toWirePath(p *pathfind.Path) wirePath {
	elems := make([]wireElement, len(p.Elements))
	for i, e := range p.Elements {
		elems[i] = toWireElement(e)
	}
	visits := make([]wireVisit, len(p.Visits))
	for i, v := range p.Visits {
		visits[i] = wireVisit{Elem: toWireElement(v.Elem), Stop: v.Stop, Revenue: v.Revenue}
	}
	conflicts := make([]wireItem, len(p.Conflicts.Items()))
	for i, it := range p.Conflicts.Items() {
		conflicts[i] = toWireItem(it)
	}
	routeConflicts := make([]wireItem, len(p.RouteConflicts.Items()))
	for i, it := range p.RouteConflicts.Items() {
		routeConflicts[i] = toWireItem(it)
	}
	return wirePath{
		AnchorHex:      wireHex{p.Anchor.Hex.Row, p.Anchor.Hex.Col},
		AnchorSpaceIx:  p.Anchor.SpaceIx,
		Elements:       elems,
		Visits:         visits,
		NumHexes:       p.NumHexes,
		Conflicts:      conflicts,
		RouteConflicts: routeConflicts,
	}
}

func (w wirePath) toPath() *pathfind.Path {
	elems := make([]connectivity.Element, len(w.Elements))
	for i, e := range w.Elements {
		elems[i] = e.toElement()
	}
	visits := make([]pathfind.Visit, len(w.Visits))
	for i, v := range w.Visits {
		visits[i] = pathfind.Visit{Elem: v.Elem.toElement(), Stop: v.Stop, Revenue: v.Revenue}
	}
	conflicts := conflict.NewSet()
	for _, it := range w.Conflicts {
		conflicts.Add(it.toItem())
	}
	routeConflicts := conflict.NewSet()
	for _, it := range w.RouteConflicts {
		routeConflicts.Add(it.toItem())
	}
	return &pathfind.Path{
		Anchor:         connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: w.AnchorHex.Row, Col: w.AnchorHex.Col}, SpaceIx: w.AnchorSpaceIx},
		Elements:       elems,
		Visits:         visits,
		NumHexes:       w.NumHexes,
		Conflicts:      conflicts,
		RouteConflicts: routeConflicts,
	}
}

// encodePaths serializes a set of paths for one anchor to JSON bytes.
func encodePaths(paths []*pathfind.Path) ([]byte, error) {
	wps := make([]wirePath, len(paths))
	for i, p := range paths {
		wps[i] = toWirePath(p)
	}
	data, err := json.Marshal(wps)
	if err != nil {
		return nil, fmt.Errorf("routecache: encode paths: %w", err)
	}
	return data, nil
}

// decodePaths is the inverse of encodePaths.
func decodePaths(data []byte) ([]*pathfind.Path, error) {
	var wps []wirePath
	if err := json.Unmarshal(data, &wps); err != nil {
		return nil, fmt.Errorf("routecache: decode paths: %w", err)
	}
	out := make([]*pathfind.Path, len(wps))
	for i, w := range wps {
		out[i] = w.toPath()
	}
	return out, nil
}
