package pathfind

import (
	"errors"
	"fmt"

	"hexroute/conflict"
)

// ErrInvalidCriteria is returned when a Criteria's fields are internally
// inconsistent, e.g. a non-positive bound or an unusable conflict rule.
var ErrInvalidCriteria = errors.New("invalid criteria")

// Criteria bounds the search a Builder performs: how many stops and how
// many hexes a path may cover, which elements two paths within the same
// build may not share, and whether a train operating the resulting paths
// is allowed to skip over visited centers.
type Criteria struct {
	// MaxStops bounds the number of centers (city/dit) a path may visit.
	// Nil means unbounded (an express train with no stop limit).
	MaxStops *int
	// MaxLength bounds the number of hexes a path may cross. Nil means
	// unbounded.
	MaxLength *int
	// ConflictRule governs which elements a single path may not revisit
	// via a different route through the same token network.
	ConflictRule conflict.Rule
	// RouteConflictRule governs which elements two different paths may
	// not share once combined into routes. It must be no stricter than
	// ConflictRule; nil means "use ConflictRule".
	RouteConflictRule *conflict.Rule
	// AllowSkip permits the route scorer to later choose a proper subset
	// of a path's visited centers as actual stops.
	AllowSkip bool
}

// NewCriteria validates and returns a Criteria. See field docs for the
// constraints each argument must satisfy.
func NewCriteria(maxStops, maxLength *int, rule conflict.Rule, routeRule *conflict.Rule, allowSkip bool) (Criteria, error) {
	if !rule.Valid() {
		return Criteria{}, fmt.Errorf("new criteria: conflict rule %s: %w", rule, ErrInvalidCriteria)
	}
	if maxStops != nil && *maxStops <= 0 {
		return Criteria{}, fmt.Errorf("new criteria: max stops %d: %w", *maxStops, ErrInvalidCriteria)
	}
	if maxLength != nil && *maxLength <= 0 {
		return Criteria{}, fmt.Errorf("new criteria: max length %d: %w", *maxLength, ErrInvalidCriteria)
	}
	if routeRule != nil {
		if !routeRule.Valid() {
			return Criteria{}, fmt.Errorf("new criteria: route conflict rule %s: %w", *routeRule, ErrInvalidCriteria)
		}
		if *routeRule > rule {
			return Criteria{}, fmt.Errorf("new criteria: route conflict rule %s stricter than path rule %s: %w", *routeRule, rule, ErrInvalidCriteria)
		}
	}
	return Criteria{
		MaxStops:          maxStops,
		MaxLength:         maxLength,
		ConflictRule:      rule,
		RouteConflictRule: routeRule,
		AllowSkip:         allowSkip,
	}, nil
}

// EffectiveRouteConflictRule returns RouteConflictRule if set, else
// ConflictRule.
func (c Criteria) EffectiveRouteConflictRule() conflict.Rule {
	if c.RouteConflictRule != nil {
		return *c.RouteConflictRule
	}
	return c.ConflictRule
}
