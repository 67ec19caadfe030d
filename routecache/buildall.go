package routecache

import (
	"context"

	"hexroute/connectivity"
	"hexroute/obs"
	"hexroute/pathfind"
	"hexroute/pathstore"
)

// CachedBuildAll is a drop-in replacement for pathstore.BuildAll that
// consults cache first: anchors whose elementary-and-composite path set
// is already cached under key skip enumeration and joining entirely, and
// any anchor this call has to build fresh is written back to cache before
// returning. A cache hit's Store is seeded directly from the cached path
// list (elementary and composite together) and never re-joined: joining
// only needs to happen once per anchor, and the cache already holds the
// joined result.
func CachedBuildAll(
	ctx context.Context,
	cache PathCache,
	key Key,
	view connectivity.View,
	company string,
	anchors []connectivity.TokenSpace,
	criteria pathfind.Criteria,
	phase connectivity.Phase,
) (stores []*pathstore.Store, cacheHits int, err error) {
	defer obs.Time(ctx, "routecache.build_all")(&err)

	cached, err := cache.GetMany(ctx, key, anchors)
	if err != nil {
		return nil, 0, err
	}

	var toBuild []connectivity.TokenSpace
	for _, a := range anchors {
		if _, ok := cached[a]; !ok {
			toBuild = append(toBuild, a)
		}
	}

	var built []*pathstore.Store
	if len(toBuild) > 0 {
		built, err = pathstore.BuildAll(ctx, view, company, toBuild, criteria, phase)
		if err != nil {
			return nil, 0, err
		}

		toCache := make(map[connectivity.TokenSpace][]*pathfind.Path, len(toBuild))
		for i, a := range toBuild {
			toCache[a] = built[i].Paths()
		}
		if err := cache.PutMany(ctx, key, toCache); err != nil {
			return nil, 0, err
		}
	}

	builtByAnchor := make(map[connectivity.TokenSpace]*pathstore.Store, len(built))
	for i, a := range toBuild {
		builtByAnchor[a] = built[i]
	}

	stores = make([]*pathstore.Store, len(anchors))
	for i, a := range anchors {
		if paths, ok := cached[a]; ok {
			stores[i] = pathstore.New(criteria, paths)
			cacheHits++
			continue
		}
		stores[i] = builtByAnchor[a]
	}

	return stores, cacheHits, nil
}
