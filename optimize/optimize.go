// Package optimize is the façade tying together path enumeration,
// composite-path joining, the combination and permutation iterators, and
// the route scorer into one company-wide best assignment of trains to
// routes.
package optimize

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"hexroute/comb"
	"hexroute/connectivity"
	"hexroute/obs"
	"hexroute/pathfind"
	"hexroute/pathstore"
	"hexroute/perm"
	"hexroute/routecache"
	"hexroute/train"
)

// CacheOptions opts Optimize into routecache-backed path reuse. A nil
// *CacheOptions (or a nil Cache field) disables caching entirely, the
// same "absence means off" convention Budget uses.
type CacheOptions struct {
	// Cache is the backend paths are read from and written to.
	Cache routecache.PathCache
	// MapHash identifies the board state being optimized, since Optimize
	// itself has no notion of map identity beyond the connectivity.View
	// port; see routecache.Key.
	MapHash string
}

// TrainRoute pairs one owned train instance with the Route it was
// assigned, or a nil Route if it was left idle in the best assignment
// found.
type TrainRoute struct {
	Train train.TrainType
	Route *train.Route
}

// BestAssignment is the result of Optimize.
type BestAssignment struct {
	TotalRevenue    int
	PerTrain        []TrainRoute
	PathIndicesUsed []int
	// CacheHits counts anchors whose path set was served from cache
	// rather than freshly enumerated; zero whenever cache is nil.
	CacheHits int
}

// Optimize finds the revenue-maximizing assignment of trains to routes
// for company on view, under criteria and bonuses. It runs the pipeline
// spec.md describes: enumerate every TokenSpace company owns, build and
// join paths from each, then search every conflict-free combination of
// paths crossed with every type-unique permutation of trains, scoring
// each with the route scorer.
//
// budget may be nil. cache may be nil, or have a nil Cache field, to
// disable path-set reuse entirely; when set, Optimize consults it before
// enumerating and writes back whatever it had to build fresh, so a later
// call against the same map/company/phase/criteria skips DFS enumeration
// and joining for every anchor already cached. ctx is checked
// cooperatively at combination-search shard boundaries; a tripped ctx
// returns ErrCancelled with no partial result, per spec.md's "successful
// return is the optimum" contract.
func Optimize(
	ctx context.Context,
	view connectivity.View,
	company string,
	trains []train.TrainType,
	bonuses []train.Bonus,
	baseCriteria pathfind.Criteria,
	phase connectivity.Phase,
	budget *Budget,
	cache *CacheOptions,
) (result BestAssignment, err error) {
	defer obs.Time(ctx, "optimize.run")(&err)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return BestAssignment{}, fmt.Errorf("optimize: %w", ErrCancelled)
	}
	if len(trains) == 0 {
		return BestAssignment{}, fmt.Errorf("optimize: %w", ErrEmptyTrainSet)
	}

	anchors := view.TokensOf(company)
	if len(anchors) == 0 {
		return BestAssignment{}, fmt.Errorf("optimize: company %q: %w", company, ErrUnknownCompany)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Compare(anchors[j]) < 0 })

	trains = train.EffectiveTrains(trains, baseCriteria.AllowSkip)
	criteria := train.DeriveCriteria(trains, baseCriteria)
	criteria, err = pathfind.NewCriteria(criteria.MaxStops, criteria.MaxLength, criteria.ConflictRule, criteria.RouteConflictRule, criteria.AllowSkip)
	if err != nil {
		return BestAssignment{}, fmt.Errorf("optimize: %w", err)
	}

	stores, cacheHits, err := buildStores(ctx, cache, view, company, anchors, criteria, phase)
	if err != nil {
		return BestAssignment{}, mapBuildError(err)
	}

	paths := dedupePaths(stores)
	if len(paths) == 0 {
		return BestAssignment{CacheHits: cacheHits}, nil
	}

	best, err := search(ctx, paths, trains, bonuses, budget)
	if err != nil {
		return BestAssignment{}, mapSearchError(err)
	}

	result = assemble(trains, best)
	result.CacheHits = cacheHits
	return result, nil
}

// buildStores enumerates (or retrieves from cache) every anchor's path
// store. With cache nil or its Cache field unset, it is a plain pass
// through to pathstore.BuildAll; otherwise it routes through
// routecache.CachedBuildAll so anchors already cached under the derived
// Key skip enumeration entirely.
func buildStores(
	ctx context.Context,
	cache *CacheOptions,
	view connectivity.View,
	company string,
	anchors []connectivity.TokenSpace,
	criteria pathfind.Criteria,
	phase connectivity.Phase,
) ([]*pathstore.Store, int, error) {
	if cache == nil || cache.Cache == nil {
		stores, err := pathstore.BuildAll(ctx, view, company, anchors, criteria, phase)
		return stores, 0, err
	}

	key := routecache.Key{MapHash: cache.MapHash, Company: company, Phase: phase, Criteria: criteria}
	return routecache.CachedBuildAll(ctx, cache.Cache, key, view, company, anchors, criteria, phase)
}

func mapBuildError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("optimize: %w", ErrCancelled)
	}
	return fmt.Errorf("optimize: build paths: %w", err)
}

func mapSearchError(err error) error {
	if errors.Is(err, ErrOverBudget) {
		return fmt.Errorf("optimize: %w", ErrOverBudget)
	}
	return fmt.Errorf("optimize: %w", ErrCancelled)
}

// dedupePaths flattens every anchor's elementary and composite paths
// into one table, collapsing physically identical paths that could in
// principle be discovered from more than one direction. Anchor
// minimality already keeps this rare in practice; the pass is a cheap
// guarantee rather than a load-bearing dedup.
func dedupePaths(stores []*pathstore.Store) []*pathfind.Path {
	seen := make(map[string]bool)
	var out []*pathfind.Path
	for _, st := range stores {
		for _, p := range st.Paths() {
			key := canonicalKey(p)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Anchor.Compare(out[j].Anchor); c != 0 {
			return c < 0
		}
		return out[i].End().Compare(out[j].End()) < 0
	})
	return out
}

func canonicalKey(p *pathfind.Path) string {
	fwd := serializeElements(p.Elements)
	rev := make([]connectivity.Element, len(p.Elements))
	for i, e := range p.Elements {
		rev[len(p.Elements)-1-i] = e
	}
	bwd := serializeElements(rev)
	if fwd < bwd {
		return fwd
	}
	return bwd
}

func serializeElements(es []connectivity.Element) string {
	var b strings.Builder
	for _, e := range es {
		fmt.Fprintf(&b, "%d:%d:%d:%d|", e.Kind, e.Hex.Row, e.Hex.Col, e.Index)
	}
	return b.String()
}

// candidate is one scored pairing of a subset of paths to a
// type-unique permutation of trains.
type candidate struct {
	revenue  int
	pathIxs  []int // indices into the paths table, ascending
	trainIxs []int // indices into the trains table, in pathIxs order
	routes   []train.Route
}

func better(a, b candidate) bool {
	if a.revenue != b.revenue {
		return a.revenue > b.revenue
	}
	for i := 0; i < len(a.pathIxs) && i < len(b.pathIxs); i++ {
		if a.pathIxs[i] != b.pathIxs[i] {
			return a.pathIxs[i] < b.pathIxs[i]
		}
	}
	if len(a.pathIxs) != len(b.pathIxs) {
		return len(a.pathIxs) < len(b.pathIxs)
	}
	for i := range a.trainIxs {
		if a.trainIxs[i] != b.trainIxs[i] {
			return a.trainIxs[i] < b.trainIxs[i]
		}
	}
	return false
}

// search runs the combination iterator, sharded on its leading index
// across GOMAXPROCS workers, crossed with the permutation iterator over
// train types, scoring every feasible pairing.
func search(ctx context.Context, paths []*pathfind.Path, trains []train.TrainType, bonuses []train.Bonus, budget *Budget) (*candidate, error) {
	classes := trainClasses(trains)
	ignore := func(a, b int) bool {
		return !paths[a].RouteConflicts.Disjoint(paths[b].RouteConflicts)
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	results := make([]*candidate, numWorkers)
	var examined int64
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for w := 0; w < numWorkers; w++ {
		lo, hi := shardBounds(w, numWorkers, len(paths))
		w := w
		g.Go(func() error {
			cand, err := searchShard(gctx, paths, trains, classes, bonuses, lo, hi, ignore, budget, &examined, start)
			if err != nil {
				return err
			}
			results[w] = cand
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *candidate
	for _, cand := range results {
		if cand == nil {
			continue
		}
		if best == nil || better(*cand, *best) {
			best = cand
		}
	}
	return best, nil
}

func shardBounds(worker, numWorkers, n int) (int, int) {
	size := (n + numWorkers - 1) / numWorkers
	lo := worker * size
	hi := lo + size
	if hi > n {
		hi = n
	}
	return lo, hi
}

func searchShard(
	ctx context.Context,
	paths []*pathfind.Path,
	trains []train.TrainType,
	classes []int,
	bonuses []train.Bonus,
	lo, hi int,
	ignore func(i, j int) bool,
	budget *Budget,
	examined *int64,
	start time.Time,
) (*candidate, error) {
	kMax := len(trains)
	it := comb.NewShard(len(paths), kMax, lo, hi, ignore)

	var best *candidate
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pathIxs, ok := it.Next()
		if !ok {
			return best, nil
		}

		n := atomic.AddInt64(examined, 1)
		if budget.exceeded(n, time.Since(start)) {
			return nil, ErrOverBudget
		}

		pf := perm.NewClassFilter(classes, len(pathIxs))
		for {
			trainIxs, ok := pf.Next()
			if !ok {
				break
			}
			cand, ok := scoreAssignment(paths, pathIxs, trains, trainIxs, bonuses)
			if !ok {
				continue
			}
			if best == nil || better(cand, *best) {
				best = &cand
			}
		}
	}
}

func scoreAssignment(paths []*pathfind.Path, pathIxs []int, trains []train.TrainType, trainIxs []int, bonuses []train.Bonus) (candidate, bool) {
	routes := make([]train.Route, len(pathIxs))
	total := 0
	for i, pIx := range pathIxs {
		route, ok := train.Score(paths[pIx], trains[trainIxs[i]], bonuses)
		if !ok {
			return candidate{}, false
		}
		routes[i] = route
		total += route.Revenue
	}
	return candidate{
		revenue:  total,
		pathIxs:  append([]int(nil), pathIxs...),
		trainIxs: append([]int(nil), trainIxs...),
		routes:   routes,
	}, true
}

// trainClasses assigns each train index the class id of the first
// occurrence of its TrainType value, so that interchangeable trains
// (identical type) collapse to the same class for permutation dedup.
func trainClasses(trains []train.TrainType) []int {
	classes := make([]int, len(trains))
	seen := make(map[train.TrainType]int, len(trains))
	for i, tt := range trains {
		c, ok := seen[tt]
		if !ok {
			c = len(seen)
			seen[tt] = c
		}
		classes[i] = c
	}
	return classes
}

func assemble(trains []train.TrainType, best *candidate) BestAssignment {
	perTrain := make([]TrainRoute, len(trains))
	for i, tt := range trains {
		perTrain[i] = TrainRoute{Train: tt}
	}
	if best == nil {
		return BestAssignment{PerTrain: perTrain}
	}
	for i, trainIx := range best.trainIxs {
		route := best.routes[i]
		perTrain[trainIx].Route = &route
	}
	return BestAssignment{
		TotalRevenue:    best.revenue,
		PerTrain:        perTrain,
		PathIndicesUsed: best.pathIxs,
	}
}
