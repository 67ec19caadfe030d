// Package train scores how much revenue a train earns operating a path,
// and derives the path-building bounds a collection of trains requires.
package train

import "hexroute/pathfind"

// TrainType describes one kind of train a company may own. Two owned
// trains of the same TrainType are interchangeable for the purposes of
// assignment (see hexroute/perm.ClassFilter).
type TrainType struct {
	// Name identifies the train for reporting; it plays no role in
	// scoring.
	Name string
	// Capacity bounds the number of centers the train may stop at. For
	// a skip-capable train this is the size of the chosen stop subset,
	// not the number of centers the underlying path visits.
	Capacity int
	// SkipCapable permits the scorer to choose a proper subset of a
	// path's visited centers as actual stops, skipping the rest
	// without earning their revenue.
	SkipCapable bool
	// Class tags the train for VisitWithTrain bonus predicates (e.g.
	// "diesel", "express") — a plain value field, not a subtype.
	Class string
}

// EffectiveTrains applies criteria.AllowSkip to trains, clearing
// SkipCapable on every entry when the criteria forbids skip-stop
// operation. A train's own SkipCapable flag only takes effect when the
// criteria it is being scored under actually allows it; this is the
// single point every downstream consumer (DeriveCriteria, Score) relies
// on, rather than each reading Criteria.AllowSkip itself.
func EffectiveTrains(trains []TrainType, allowSkip bool) []TrainType {
	if allowSkip {
		return trains
	}
	out := make([]TrainType, len(trains))
	for i, tt := range trains {
		tt.SkipCapable = false
		out[i] = tt
	}
	return out
}

// DeriveCriteria returns the pathfind.Criteria a Builder should use to
// enumerate paths usable by every train in trains. Skip-capable trains
// must see every candidate stop along a path before choosing their best
// subset, so their presence lifts any stop bound the base criteria set;
// otherwise the bound is the largest capacity among the owned trains,
// since a path any of them can run is one every smaller-capacity train
// can also run a prefix of.
func DeriveCriteria(trains []TrainType, base pathfind.Criteria) pathfind.Criteria {
	criteria := base
	express := false
	maxCap := 0
	for _, tt := range trains {
		if tt.SkipCapable {
			express = true
		}
		if tt.Capacity > maxCap {
			maxCap = tt.Capacity
		}
	}
	if express {
		criteria.MaxStops = nil
	} else {
		cap := maxCap
		criteria.MaxStops = &cap
	}
	return criteria
}
