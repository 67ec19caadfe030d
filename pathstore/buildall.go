package pathstore

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"hexroute/connectivity"
	"hexroute/obs"
	"hexroute/pathfind"
)

// BuildAll builds the elementary paths for every anchor, joins each
// anchor's paths into composites, and returns one Store per anchor in
// the same order anchors was given.
func BuildAll(ctx context.Context, view connectivity.View, company string, anchors []connectivity.TokenSpace, criteria pathfind.Criteria, phase connectivity.Phase) (stores []*Store, err error) {
	defer obs.Time(ctx, "pathstore.build_all")(&err)

	elementary, err := pathfind.BuildAll(ctx, view, company, anchors, criteria, phase)
	if err != nil {
		return nil, err
	}

	stores = make([]*Store, len(anchors))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range anchors {
		i := i
		g.Go(func() error {
			st := New(criteria, elementary[i])
			st.Join()
			stores[i] = st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stores, nil
}
