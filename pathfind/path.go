package pathfind

import (
	"hexroute/conflict"
	"hexroute/connectivity"
)

// Visit records a stop a path makes at a city or dit. Stop is true for
// every visit a Builder records; when a train is allowed to skip, the
// route scorer records its chosen stops in Route.StopIxs and leaves Stop
// unchanged (see hexroute/train).
type Visit struct {
	Elem    connectivity.Element
	Stop    bool
	Revenue int
}

// Path is one legal traversal of the board from a company's token,
// recording every element it crosses, every center it can stop at, and
// the conflicts it would introduce if combined with another path.
type Path struct {
	Anchor    connectivity.TokenSpace
	Elements  []connectivity.Element // every element traversed, in order
	Visits    []Visit                // the subsequence of centers visited
	NumHexes  int
	Conflicts *conflict.Set
	// RouteConflicts is the conflict set recorded under the criteria's
	// route-combining rule, which may be more permissive than Conflicts.
	RouteConflicts *conflict.Set
}

// Start returns the element the path begins at.
func (p *Path) Start() connectivity.Element {
	return p.Elements[0]
}

// End returns the element the path terminates at.
func (p *Path) End() connectivity.Element {
	return p.Elements[len(p.Elements)-1]
}

// TotalRevenue sums the revenue of every visit currently marked Stop.
func (p *Path) TotalRevenue() int {
	total := 0
	for _, v := range p.Visits {
		if v.Stop {
			total += v.Revenue
		}
	}
	return total
}

// Append joins p with other, which must start from the same anchor
// element as p (the shared token city the two elementary paths were
// built from). The result traverses p in reverse from its far end back
// to the anchor, then continues out along other — the composite path a
// train actually runs between its two termini.
func (p *Path) Append(other *Path) *Path {
	if p.Elements[0] != other.Elements[0] {
		panic("pathfind: Append requires paths sharing a start element")
	}

	elems := make([]connectivity.Element, 0, len(p.Elements)+len(other.Elements)-1)
	for i := len(p.Elements) - 1; i >= 0; i-- {
		elems = append(elems, p.Elements[i])
	}
	elems = append(elems, other.Elements[1:]...)

	visits := make([]Visit, 0, len(p.Visits)+len(other.Visits)-1)
	for i := len(p.Visits) - 1; i >= 0; i-- {
		visits = append(visits, p.Visits[i])
	}
	visits = append(visits, other.Visits[1:]...)

	return &Path{
		Anchor:         p.Anchor,
		Elements:       elems,
		Visits:         visits,
		NumHexes:       p.NumHexes + other.NumHexes - 1,
		Conflicts:      p.Conflicts.Union(other.Conflicts),
		RouteConflicts: p.RouteConflicts.Union(other.RouteConflicts),
	}
}
