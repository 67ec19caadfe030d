// Package routecache persists the paths a pathstore.Store builds for one
// anchor, so a later optimization run against the same map, company, phase,
// and criteria can skip DFS enumeration and joining entirely. It is the
// route-optimizer analogue of the teacher's distance/geocode caches: same
// GetMany/PutMany shape, same backend choices, different payload.
package routecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"hexroute/connectivity"
	"hexroute/pathfind"
)

// Key identifies one cacheable path-enumeration result. Two Optimize calls
// that would enumerate the identical set of paths for an anchor must
// produce the identical Key, and any two calls that could enumerate
// different paths must not.
type Key struct {
	// MapHash identifies the committed board state the paths were built
	// against. The optimizer has no notion of a map's identity — every
	// lookup is through the connectivity.View port — so callers that want
	// caching must supply a stable hash of the map themselves (e.g. a hash
	// of its tile placements).
	MapHash string
	Company string
	Phase   connectivity.Phase
	Criteria pathfind.Criteria
}

// digest collapses a Key into the short, fixed-width string every backend
// uses as its lookup key, so the sqlite/postgres/redis adapters don't each
// reimplement criteria hashing.
func (k Key) digest() string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|", k.MapHash, k.Company, k.Phase)
	writeCriteria(h, k.Criteria)
	return hex.EncodeToString(h.Sum(nil))
}

func writeCriteria(w io.Writer, c pathfind.Criteria) {
	stops := "nil"
	if c.MaxStops != nil {
		stops = fmt.Sprint(*c.MaxStops)
	}
	length := "nil"
	if c.MaxLength != nil {
		length = fmt.Sprint(*c.MaxLength)
	}
	routeRule := "nil"
	if c.RouteConflictRule != nil {
		routeRule = fmt.Sprint(*c.RouteConflictRule)
	}
	fmt.Fprintf(w, "stops=%s|length=%s|rule=%d|routerule=%s|skip=%v",
		stops, length, c.ConflictRule, routeRule, c.AllowSkip)
}

// PathCache stores, per anchor token space, the paths pathstore.BuildAll
// enumerated for it under one Key. Implementations must treat a missing
// anchor as a cache miss rather than an error.
type PathCache interface {
	// GetMany returns the cached paths for every anchor in anchors that
	// this cache currently holds under key. Anchors with no cached entry
	// are simply absent from the result map; this is not an error.
	GetMany(ctx context.Context, key Key, anchors []connectivity.TokenSpace) (map[connectivity.TokenSpace][]*pathfind.Path, error)

	// PutMany stores the given per-anchor path sets under key, replacing
	// any existing entry for the same (key, anchor) pair.
	PutMany(ctx context.Context, key Key, paths map[connectivity.TokenSpace][]*pathfind.Path) error
}
