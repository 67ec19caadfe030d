// Package connectivity defines the read-only view of a committed board
// state that the route optimizer traverses: hexes, their internal track
// connections, and the token spaces companies occupy. Nothing in this
// package mutates a map; it is purely a reader.
package connectivity

import "fmt"

// HexAddr identifies one hex on the board by its row/column coordinates.
type HexAddr struct {
	Row, Col int
}

// Compare orders hexes row-major, giving every HexAddr a total order.
func (a HexAddr) Compare(b HexAddr) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

func (a HexAddr) String() string {
	return fmt.Sprintf("%d,%d", a.Row, a.Col)
}

// Kind distinguishes the four element types a path may traverse.
type Kind uint8

const (
	KindFace Kind = iota
	KindTrack
	KindDit
	KindCity
)

func (k Kind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindTrack:
		return "track"
	case KindDit:
		return "dit"
	case KindCity:
		return "city"
	default:
		return "unknown"
	}
}

// Element is one connection point a path can pass through or stop at: a
// hex face (crossing into a neighbouring hex), a bare track segment, a
// dit, or a city. Index disambiguates multiple elements of the same kind
// on the same hex (e.g. face 0..5, or city 0..n on a multi-city tile).
type Element struct {
	Kind  Kind
	Hex   HexAddr
	Index int
}

// IsCenter reports whether e is a place a train may stop and earn revenue.
func (e Element) IsCenter() bool {
	return e.Kind == KindCity || e.Kind == KindDit
}

// Compare gives Element a total order: by kind, then hex, then index.
func (e Element) Compare(o Element) int {
	if e.Kind != o.Kind {
		return int(e.Kind) - int(o.Kind)
	}
	if c := e.Hex.Compare(o.Hex); c != 0 {
		return c
	}
	return e.Index - o.Index
}

func (e Element) String() string {
	return fmt.Sprintf("%s(%s#%d)", e.Kind, e.Hex, e.Index)
}

// TokenSpace identifies a placeable token slot on a city element. A
// company's network is anchored at the TokenSpaces it occupies.
type TokenSpace struct {
	Hex     HexAddr
	SpaceIx int
}

// Compare gives TokenSpace the total order spec.md requires for
// anchor-minimality pruning: lexicographic by hex, then slot index.
func (t TokenSpace) Compare(o TokenSpace) int {
	if c := t.Hex.Compare(o.Hex); c != 0 {
		return c
	}
	return t.SpaceIx - o.SpaceIx
}

func (t TokenSpace) String() string {
	return fmt.Sprintf("%s@%d", t.Hex, t.SpaceIx)
}

// CityElement returns the city Element this token space is placed on.
func (t TokenSpace) CityElement() Element {
	return Element{Kind: KindCity, Hex: t.Hex, Index: t.SpaceIx}
}
