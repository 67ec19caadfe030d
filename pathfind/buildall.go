package pathfind

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"hexroute/connectivity"
	"hexroute/obs"
)

// BuildAll runs PathsFrom for every anchor concurrently, one goroutine per
// anchor bounded by GOMAXPROCS workers, and returns the anchors' path sets
// keyed by anchor index in the same order anchors was given — never by a
// hash-based map — so callers can rely on deterministic ordering
// regardless of goroutine scheduling. Each anchor's own path slice keeps
// the builder's DFS insertion order; nothing downstream needs it sorted,
// and optimize.better's tie-break depends on that order being stable.
func BuildAll(ctx context.Context, view connectivity.View, company string, anchors []connectivity.TokenSpace, criteria Criteria, phase connectivity.Phase) (res [][]*Path, err error) {
	defer obs.Time(ctx, "pathfind.build_all")(&err)

	results := make([][]*Path, len(anchors))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, anchor := range anchors {
		i, anchor := i, anchor
		g.Go(func() error {
			b := New(company, criteria, phase)
			paths, err := b.PathsFrom(gctx, view, anchor)
			if err != nil {
				return fmt.Errorf("pathfind: build all: anchor %s: %w", anchor, err)
			}
			results[i] = paths
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
