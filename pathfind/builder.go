package pathfind

import (
	"context"
	"fmt"

	"hexroute/conflict"
	"hexroute/connectivity"
	"hexroute/obs"
)

// Builder enumerates elementary paths outward from a single token space,
// bounded by a Criteria, over a read-only connectivity view.
type Builder struct {
	Company  string
	Criteria Criteria
	Phase    connectivity.Phase
}

// New returns a Builder for company under criteria. It does not validate
// criteria; NewCriteria is where invalid criteria are rejected.
func New(company string, criteria Criteria, phase connectivity.Phase) *Builder {
	return &Builder{Company: company, Criteria: criteria, Phase: phase}
}

// PathsFrom walks every legal path starting at anchor, returning one Path
// per distinct visited center (including the anchor itself, the
// zero-length path). Paths never revisit an Element, never pass through a
// terminal center, and never step through a city holding a smaller token
// of the same company than anchor — the anchor-minimality rule that keeps
// the same pair of elementary paths from being discovered twice.
func (b *Builder) PathsFrom(ctx context.Context, view connectivity.View, anchor connectivity.TokenSpace) (paths []*Path, err error) {
	defer obs.Time(ctx, "pathfind.build")(&err)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("pathfind: build from %s: %w", anchor, err)
	}

	st := &dfsState{
		builder: b,
		view:    view,
		anchor:  anchor,
		visited: map[connectivity.Element]bool{},
	}

	start := anchor.CityElement()
	st.visited[start] = true
	st.elements = []connectivity.Element{start}
	st.numHexes = 1
	st.conflicts = conflict.NewSet()
	st.routeConflicts = conflict.NewSet()

	// The anchor itself never contributes a conflict item: it is the
	// shared join point of every elementary path built from it, and
	// must not prevent two such paths (which diverge immediately past
	// it) from being recognized as conflict-disjoint.
	st.visits = []Visit{{Elem: start, Stop: true, Revenue: view.Revenue(start, b.Phase)}}
	st.paths = append(st.paths, st.snapshot())

	for _, next := range view.Neighbors(start) {
		st.walk(next)
	}

	return st.paths, nil
}

// dfsState carries the mutable recursion state for one PathsFrom call.
type dfsState struct {
	builder *Builder
	view    connectivity.View
	anchor  connectivity.TokenSpace

	visited   map[connectivity.Element]bool
	elements  []connectivity.Element
	visits    []Visit
	conflicts *conflict.Set
	// routeConflicts accrues under the (possibly more permissive)
	// combination-phase rule, carried on every recorded Path for later
	// use when routes from different anchors are combined.
	routeConflicts *conflict.Set
	numHexes       int

	paths []*Path
}

func (st *dfsState) snapshot() *Path {
	elements := make([]connectivity.Element, len(st.elements))
	copy(elements, st.elements)
	visits := make([]Visit, len(st.visits))
	copy(visits, st.visits)
	return &Path{
		Anchor:         st.anchor,
		Elements:       elements,
		Visits:         visits,
		NumHexes:       st.numHexes,
		Conflicts:      st.conflicts.Union(conflict.NewSet()),
		RouteConflicts: st.routeConflicts.Union(conflict.NewSet()),
	}
}

func (st *dfsState) walk(e connectivity.Element) {
	if st.visited[e] {
		return
	}

	prev := st.elements[len(st.elements)-1]
	crossing := prev.Kind == connectivity.KindFace && e.Kind == connectivity.KindFace && prev.Hex != e.Hex

	item, hasItem := st.conflictItem(st.builder.Criteria.ConflictRule, prev, e, crossing)
	if hasItem && st.conflicts.Contains(item) {
		return
	}
	routeItem, hasRouteItem := st.conflictItem(st.builder.Criteria.EffectiveRouteConflictRule(), prev, e, crossing)

	if e.Kind == connectivity.KindCity {
		if owned, ok := st.view.OwnTokenAt(st.builder.Company, e); ok && owned.Compare(st.anchor) < 0 {
			return
		}
	}

	st.visited[e] = true
	st.elements = append(st.elements, e)
	if hasItem {
		st.conflicts.Add(item)
	}
	if hasRouteItem {
		st.routeConflicts.Add(routeItem)
	}
	if crossing {
		st.numHexes++
	}

	if e.IsCenter() {
		st.visitCenter(e)
	} else {
		maxLen := st.builder.Criteria.MaxLength
		blocked := crossing && maxLen != nil && st.numHexes > *maxLen
		if !blocked {
			for _, n := range st.view.Neighbors(e) {
				st.walk(n)
			}
		}
	}

	st.elements = st.elements[:len(st.elements)-1]
	st.visited[e] = false
	if crossing {
		st.numHexes--
	}
	if hasItem {
		st.conflicts.Remove(item)
	}
	if hasRouteItem {
		st.routeConflicts.Remove(routeItem)
	}
}

func (st *dfsState) visitCenter(e connectivity.Element) {
	st.visits = append(st.visits, Visit{Elem: e, Stop: true, Revenue: st.view.Revenue(e, st.builder.Phase)})
	st.paths = append(st.paths, st.snapshot())

	maxStops := st.builder.Criteria.MaxStops
	withinStops := maxStops == nil || len(st.visits) < *maxStops
	if !st.view.IsTerminal(e) && withinStops {
		for _, n := range st.view.Neighbors(e) {
			st.walk(n)
		}
	}

	st.visits = st.visits[:len(st.visits)-1]
}

func (st *dfsState) conflictItem(rule conflict.Rule, prev, e connectivity.Element, crossing bool) (conflict.Item, bool) {
	if crossing {
		return conflict.RuleItemForCrossing(rule, prev, e)
	}
	if e.IsCenter() {
		return conflict.RuleItemForCenter(rule, e)
	}
	return conflict.Item{}, false
}
