package routecache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"hexroute/connectivity"
	"hexroute/pathfind"
)

func newTestRedisCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, time.Minute)
}

func TestRedisCacheGetPutRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t)

	key := Key{MapHash: "m1", Company: "X", Phase: "phase1"}
	anchor := connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: 0, Col: 0}, SpaceIx: 0}

	miss, err := c.GetMany(ctx, key, []connectivity.TokenSpace{anchor})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(miss) != 0 {
		t.Fatalf("expected a miss before any Put, got %v", miss)
	}

	paths := []*pathfind.Path{samplePath()}
	if err := c.PutMany(ctx, key, map[connectivity.TokenSpace][]*pathfind.Path{anchor: paths}); err != nil {
		t.Fatalf("PutMany: %v", err)
	}

	got, err := c.GetMany(ctx, key, []connectivity.TokenSpace{anchor})
	if err != nil {
		t.Fatalf("GetMany after put: %v", err)
	}
	if len(got[anchor]) != 1 {
		t.Fatalf("expected one cached path, got %d", len(got[anchor]))
	}
}

func TestRedisCacheMissingAnchorOmitted(t *testing.T) {
	ctx := context.Background()
	c := newTestRedisCache(t)

	key := Key{MapHash: "m1", Company: "X", Phase: "phase1"}
	known := connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: 0, Col: 0}, SpaceIx: 0}
	unknown := connectivity.TokenSpace{Hex: connectivity.HexAddr{Row: 9, Col: 9}, SpaceIx: 0}

	if err := c.PutMany(ctx, key, map[connectivity.TokenSpace][]*pathfind.Path{known: {samplePath()}}); err != nil {
		t.Fatalf("PutMany: %v", err)
	}

	got, err := c.GetMany(ctx, key, []connectivity.TokenSpace{known, unknown})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if _, ok := got[unknown]; ok {
		t.Errorf("expected unknown anchor to be absent")
	}
	if _, ok := got[known]; !ok {
		t.Errorf("expected known anchor to be present")
	}
}
