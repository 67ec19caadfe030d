// Command routedemo is the composition root that builds a small fixture
// map, runs Optimize for one company, and prints the best assignment.
// It plays the same role as the teacher's cmd/server: wire concrete
// adapters behind the library's ports and run once, rather than serve
// HTTP, since the optimizer core has no wire protocol of its own.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"hexroute/conflict"
	"hexroute/connectivity"
	"hexroute/obs"
	"hexroute/optimize"
	"hexroute/pathfind"
	"hexroute/routecache"
	"hexroute/train"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	company := getEnv("COMPANY", "PRR")
	phase := connectivity.Phase(getEnv("PHASE", "phase1"))

	cache, closeCache, err := openCache()
	if err != nil {
		log.Fatal(err)
	}
	defer closeCache()

	view := newFixtureMap(company)
	criteria, err := pathCriteria()
	if err != nil {
		log.Fatal(err)
	}

	ctx := obs.WithRunID(context.Background(), "routedemo-1")

	trains := []train.TrainType{
		{Name: "2-train", Capacity: 2},
		{Name: "4-train", Capacity: 4, SkipCapable: true, Class: "express"},
	}
	bonuses := []train.Bonus{
		train.NewConnectionBonus(
			connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: 0, Col: 0}, SpaceIx: 0}.CityElement(),
			connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: 2, Col: 0}, SpaceIx: 0}.CityElement(),
			10,
		),
	}

	cacheOpts := &optimize.CacheOptions{Cache: cache, MapHash: mapHash}
	result, err := optimize.Optimize(ctx, view, company, trains, bonuses, criteria, phase, nil, cacheOpts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("cache_hits=%d", result.CacheHits)
	fmt.Printf("total revenue: %d\n", result.TotalRevenue)
	for _, tr := range result.PerTrain {
		if tr.Route == nil {
			fmt.Printf("  %s: idle\n", tr.Train.Name)
			continue
		}
		fmt.Printf("  %s: revenue=%d stops=%d\n", tr.Train.Name, tr.Route.Revenue, len(tr.Route.StopIxs))
	}
}

func pathCriteria() (pathfind.Criteria, error) {
	return pathfind.NewCriteria(nil, nil, conflict.RuleFacesAndCenters, nil, true)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func openCache() (routecache.PathCache, func(), error) {
	backend := strings.ToLower(getEnv("CACHE_BACKEND", "memory"))
	switch backend {
	case "memory":
		return routecache.NewMemoryCache(), func() {}, nil
	case "sqlite":
		dbPath := getEnv("PATH_CACHE_DB", "data/path_cache.db")
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("routedemo: open sqlite path cache: %w", err)
		}
		if err := routecache.InitSchema(db); err != nil {
			return nil, nil, fmt.Errorf("routedemo: init sqlite path cache schema: %w", err)
		}
		return routecache.NewSqliteCache(db), func() { _ = db.Close() }, nil
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, fmt.Errorf("routedemo: DATABASE_URL is required for CACHE_BACKEND=postgres")
		}
		db, err := routecache.OpenPostgres(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := routecache.InitPostgresSchema(context.Background(), db); err != nil {
			return nil, nil, fmt.Errorf("routedemo: init postgres path cache schema: %w", err)
		}
		return routecache.NewPostgresCache(db), func() { _ = db.Close() }, nil
	case "redis":
		addr := getEnv("REDIS_ADDR", "localhost:6379")
		client := redis.NewClient(&redis.Options{Addr: addr})
		return routecache.NewRedisCache(client, 0), func() { _ = client.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("routedemo: unknown CACHE_BACKEND %q", backend)
	}
}
