package routecache

import (
	"context"
	"sync"

	"hexroute/connectivity"
	"hexroute/pathfind"
)

// MemoryCache is an in-process PathCache backed by a plain map, guarded by
// a mutex rather than sharded or lock-free since optimizer workers read
// far more often than they write (one Put per anchor per unique map,
// company, phase and criteria combination). Mirrors the shape of the
// teacher's map-backed MockDistanceProvider.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]map[connectivity.TokenSpace][]*pathfind.Path
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]map[connectivity.TokenSpace][]*pathfind.Path)}
}

func (c *MemoryCache) GetMany(_ context.Context, key Key, anchors []connectivity.TokenSpace) (map[connectivity.TokenSpace][]*pathfind.Path, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byAnchor, ok := c.entries[key.digest()]
	if !ok {
		return map[connectivity.TokenSpace][]*pathfind.Path{}, nil
	}

	out := make(map[connectivity.TokenSpace][]*pathfind.Path, len(anchors))
	for _, a := range anchors {
		if paths, ok := byAnchor[a]; ok {
			out[a] = paths
		}
	}
	return out, nil
}

func (c *MemoryCache) PutMany(_ context.Context, key Key, paths map[connectivity.TokenSpace][]*pathfind.Path) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	digest := key.digest()
	byAnchor, ok := c.entries[digest]
	if !ok {
		byAnchor = make(map[connectivity.TokenSpace][]*pathfind.Path, len(paths))
		c.entries[digest] = byAnchor
	}
	for anchor, ps := range paths {
		byAnchor[anchor] = ps
	}
	return nil
}
