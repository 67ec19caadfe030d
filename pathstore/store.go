// Package pathstore holds the elementary paths built for each of a
// company's token spaces and joins pairs of them, sharing an anchor, into
// composite paths that span the whole network.
package pathstore

import (
	"sort"

	"hexroute/pathfind"
)

// Store holds every path discovered so far for one anchor: the
// elementary paths the builder found, plus any composite paths formed by
// joining two of them end to end.
type Store struct {
	Anchor    pathfind.Criteria
	paths     []*pathfind.Path
	elemCount int
}

// New returns a Store seeded with the elementary paths a Builder found
// for a single anchor.
func New(criteria pathfind.Criteria, elementary []*pathfind.Path) *Store {
	return &Store{Anchor: criteria, paths: append([]*pathfind.Path(nil), elementary...), elemCount: len(elementary)}
}

// Paths returns every path in the store, elementary and composite, in a
// fixed order (elementary paths first in build order, then composites
// ordered by their end element).
func (s *Store) Paths() []*pathfind.Path {
	out := make([]*pathfind.Path, len(s.paths))
	copy(out, s.paths)
	return out
}

// Join combines every pair of elementary paths whose conflict sets are
// completely disjoint into a composite path, appending the results to
// the store. Since the anchor itself never contributes a conflict item
// (see pathfind.Builder), two paths built from the same anchor are
// disjoint exactly when they diverge immediately and never retrace each
// other's track, faces, or centers — precisely the paths that describe
// one continuous route through the anchor.
//
// Combination respects the anchor criteria's stop and length bounds:
// a join that would exceed MaxStops or MaxLength is skipped.
func (s *Store) Join() {
	var elementary []*pathfind.Path
	for _, p := range s.paths[:s.elemCount] {
		// A zero-length path (the anchor alone) joined with another
		// path q just reproduces q; it carries no track of its own to
		// contribute, so it is excluded as a joiner.
		if len(p.Elements) > 1 {
			elementary = append(elementary, p)
		}
	}
	var composites []*pathfind.Path

	for i := 0; i < len(elementary); i++ {
		for j := i + 1; j < len(elementary); j++ {
			pi, pj := elementary[i], elementary[j]
			if !pi.Conflicts.Disjoint(pj.Conflicts) {
				continue
			}
			if !withinBounds(s.Anchor, pi, pj) {
				continue
			}
			composites = append(composites, pi.Append(pj))
		}
	}

	sort.Slice(composites, func(a, b int) bool {
		return composites[a].End().Compare(composites[b].End()) < 0
	})
	s.paths = append(s.paths, composites...)
}

func withinBounds(c pathfind.Criteria, a, b *pathfind.Path) bool {
	if c.MaxStops != nil {
		combined := len(a.Visits) + len(b.Visits) - 1
		if combined > *c.MaxStops {
			return false
		}
	}
	if c.MaxLength != nil {
		combined := a.NumHexes + b.NumHexes - 1
		if combined > *c.MaxLength {
			return false
		}
	}
	return true
}
