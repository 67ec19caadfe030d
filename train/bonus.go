package train

import "hexroute/connectivity"

// BonusKind tags which variant a Bonus carries. Scoring dispatches on
// this tag; Bonus is a closed set of shapes, not an open hierarchy.
type BonusKind uint8

const (
	BonusLocation BonusKind = iota
	BonusConnection
	BonusVisitWithTrain
	BonusDoubleIfConnected
)

// Bonus is a pure function of a scored route: given the set of
// locations a route stops at and the train operating it, it either
// contributes nothing or adds to (or doubles part of) the route's
// revenue.
type Bonus struct {
	Kind BonusKind

	// Location is the bonus's primary site: the location that must be
	// stopped at (LocationBonus, VisitWithTrain), the "from" end of a
	// ConnectionBonus, or the target of a DoubleRevenueIfConnected.
	Location connectivity.Element
	// Partner is ConnectionBonus's second location.
	Partner connectivity.Element
	// AnyOf is DoubleRevenueIfConnected's set of qualifying partners.
	AnyOf []connectivity.Element
	// Delta is the flat amount added by LocationBonus, ConnectionBonus
	// and VisitWithTrain. Unused by DoubleRevenueIfConnected.
	Delta int
	// Predicate selects which train types VisitWithTrain rewards.
	Predicate func(TrainType) bool
}

// NewLocationBonus adds delta to a route's revenue if loc is stopped at.
func NewLocationBonus(loc connectivity.Element, delta int) Bonus {
	return Bonus{Kind: BonusLocation, Location: loc, Delta: delta}
}

// NewConnectionBonus adds delta if both a and b are stopped at.
func NewConnectionBonus(a, b connectivity.Element, delta int) Bonus {
	return Bonus{Kind: BonusConnection, Location: a, Partner: b, Delta: delta}
}

// NewVisitWithTrain adds delta if loc is stopped at by a train
// satisfying predicate.
func NewVisitWithTrain(loc connectivity.Element, delta int, predicate func(TrainType) bool) Bonus {
	return Bonus{Kind: BonusVisitWithTrain, Location: loc, Delta: delta, Predicate: predicate}
}

// NewDoubleRevenueIfConnected doubles target's base revenue if target is
// stopped at and at least one location in anyOf is also stopped at.
func NewDoubleRevenueIfConnected(target connectivity.Element, anyOf []connectivity.Element) Bonus {
	return Bonus{Kind: BonusDoubleIfConnected, Location: target, AnyOf: anyOf}
}
