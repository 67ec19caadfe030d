package train

import (
	"sort"

	"hexroute/comb"
	"hexroute/connectivity"
	"hexroute/pathfind"
)

// Route is a Path paired with a chosen subset of its visited centers
// marked as stops and the TrainType assigned to operate it.
type Route struct {
	Path    *pathfind.Path
	Train   TrainType
	StopIxs []int // indices into Path.Visits, ascending; always includes 0 and len(Visits)-1
	Revenue int
}

// Score determines whether tt can operate path and, if so, returns the
// Route earning the most revenue. A non-skip-capable train must stop at
// every visit; it can operate the path only if that fits its capacity.
// A skip-capable train instead searches every subset of interior
// visits (the first and last are always stops) up to its remaining
// capacity, exhaustively, since bonuses are non-monotone in the stop
// set and a greedy choice can miss the true optimum. Ties are broken
// by fewer stops, then by the lexicographically smallest stop-index
// set.
func Score(path *pathfind.Path, tt TrainType, bonuses []Bonus) (Route, bool) {
	n := len(path.Visits)
	if n == 0 {
		return Route{}, false
	}

	if !tt.SkipCapable {
		if n > tt.Capacity {
			return Route{}, false
		}
		return buildRoute(path, tt, bonuses, allIxs(n)), true
	}

	if tt.Capacity < 2 {
		return Route{}, false
	}
	if n <= tt.Capacity {
		return buildRoute(path, tt, bonuses, allIxs(n)), true
	}

	last := n - 1
	interior := make([]int, 0, n-2)
	for i := 1; i < last; i++ {
		interior = append(interior, i)
	}
	budget := tt.Capacity - 2

	best := buildRoute(path, tt, bonuses, []int{0, last})
	consider := func(extra []int) {
		stops := make([]int, 0, len(extra)+2)
		stops = append(stops, 0)
		stops = append(stops, extra...)
		stops = append(stops, last)
		sort.Ints(stops)
		candidate := buildRoute(path, tt, bonuses, stops)
		if better(candidate, best) {
			best = candidate
		}
	}

	if budget > 0 && len(interior) > 0 {
		it := comb.New(len(interior), budget)
		for {
			ixs, ok := it.Next()
			if !ok {
				break
			}
			extra := make([]int, len(ixs))
			for i, ix := range ixs {
				extra[i] = interior[ix]
			}
			consider(extra)
		}
	}

	return best, true
}

// better reports whether a earns strictly more revenue than b, or ties
// it with fewer stops, or ties both with a lexicographically smaller
// stop-index set.
func better(a, b Route) bool {
	if a.Revenue != b.Revenue {
		return a.Revenue > b.Revenue
	}
	if len(a.StopIxs) != len(b.StopIxs) {
		return len(a.StopIxs) < len(b.StopIxs)
	}
	for i := range a.StopIxs {
		if a.StopIxs[i] != b.StopIxs[i] {
			return a.StopIxs[i] < b.StopIxs[i]
		}
	}
	return false
}

func buildRoute(path *pathfind.Path, tt TrainType, bonuses []Bonus, stopIxs []int) Route {
	stopSet := make(map[connectivity.Element]bool, len(stopIxs))
	for _, ix := range stopIxs {
		stopSet[path.Visits[ix].Elem] = true
	}

	total := 0
	for _, ix := range stopIxs {
		loc := path.Visits[ix].Elem
		rev := path.Visits[ix].Revenue

		for _, b := range bonuses {
			if b.Kind == BonusDoubleIfConnected && b.Location == loc && anyStopped(b.AnyOf, stopSet) {
				rev *= 2
			}
		}
		for _, b := range bonuses {
			switch b.Kind {
			case BonusLocation:
				if b.Location == loc {
					rev += b.Delta
				}
			case BonusVisitWithTrain:
				if b.Location == loc && b.Predicate != nil && b.Predicate(tt) {
					rev += b.Delta
				}
			}
		}
		total += rev
	}

	for _, b := range bonuses {
		if b.Kind == BonusConnection && stopSet[b.Location] && stopSet[b.Partner] {
			total += b.Delta
		}
	}

	return Route{Path: path, Train: tt, StopIxs: stopIxs, Revenue: total}
}

func anyStopped(locs []connectivity.Element, stopSet map[connectivity.Element]bool) bool {
	for _, l := range locs {
		if stopSet[l] {
			return true
		}
	}
	return false
}

func allIxs(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
