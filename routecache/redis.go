package routecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hexroute/connectivity"
	"hexroute/obs"
	"hexroute/pathfind"
)

// RedisCache is a Redis-backed PathCache for short-lived sharing of
// enumerated paths across concurrent optimizer workers in the same
// process group. Each (digest, anchor) pair maps to one string key
// holding its JSON-encoded path set; GetMany/PutMany batch their per-key
// round trips through a single pipeline, the same batching shape as the
// teacher's SQL caches' single prepared statement reused across rows.
type RedisCache struct {
	Client *redis.Client
	// TTL expires an entry after this long if positive; zero means the
	// entry never expires on its own.
	TTL time.Duration
}

// NewRedisCache wraps client. ttl may be zero for entries that never
// expire.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func redisKey(digest string, anchor connectivity.TokenSpace) string {
	return fmt.Sprintf("routecache:%s:%d:%d:%d", digest, anchor.Hex.Row, anchor.Hex.Col, anchor.SpaceIx)
}

func (r *RedisCache) GetMany(ctx context.Context, key Key, anchors []connectivity.TokenSpace) (_ map[connectivity.TokenSpace][]*pathfind.Path, err error) {
	defer obs.Time(ctx, "routecache.redis.get_many")(&err)

	if r.Client == nil {
		return nil, errors.New("routecache: redis cache: client is nil")
	}
	if len(anchors) == 0 {
		return map[connectivity.TokenSpace][]*pathfind.Path{}, nil
	}

	digest := key.digest()
	pipe := r.Client.Pipeline()
	cmds := make([]*redis.StringCmd, len(anchors))
	for i, a := range anchors {
		cmds[i] = pipe.Get(ctx, redisKey(digest, a))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("routecache: get many: pipeline exec: %w", err)
	}

	out := make(map[connectivity.TokenSpace][]*pathfind.Path, len(anchors))
	for i, cmd := range cmds {
		payload, err := cmd.Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("routecache: get many anchor=%s: %w", anchors[i], err)
		}
		paths, err := decodePaths(payload)
		if err != nil {
			return nil, fmt.Errorf("routecache: get many anchor=%s: %w", anchors[i], err)
		}
		out[anchors[i]] = paths
	}
	return out, nil
}

func (r *RedisCache) PutMany(ctx context.Context, key Key, paths map[connectivity.TokenSpace][]*pathfind.Path) (err error) {
	defer obs.Time(ctx, "routecache.redis.put_many")(&err)

	if r.Client == nil {
		return errors.New("routecache: redis cache: client is nil")
	}
	if len(paths) == 0 {
		return nil
	}

	digest := key.digest()
	pipe := r.Client.Pipeline()
	for anchor, ps := range paths {
		payload, err := encodePaths(ps)
		if err != nil {
			return fmt.Errorf("routecache: put many anchor=%s: %w", anchor, err)
		}
		pipe.Set(ctx, redisKey(digest, anchor), payload, r.TTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("routecache: put many: pipeline exec: %w", err)
	}
	return nil
}
