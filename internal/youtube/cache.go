package youtube

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"youmatter.app/server/internal/model"
)

// CachedSearcher fronts a Searcher with a Redis cache keyed on the
// normalized query. Cache failures never fail a search; the worst case
// is an extra provider call.
type CachedSearcher struct {
	next Searcher
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedSearcher(next Searcher, rdb *redis.Client, ttl time.Duration) *CachedSearcher {
	return &CachedSearcher{next: next, rdb: rdb, ttl: ttl}
}

func cacheKey(query string) string {
	return "yt:search:" + strings.ToLower(strings.TrimSpace(query))
}

func (c *CachedSearcher) Search(ctx context.Context, query string) ([]model.Video, error) {
	key := cacheKey(query)

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var videos []model.Video
		if err := json.Unmarshal(raw, &videos); err == nil {
			slog.DebugContext(ctx, "youtube cache hit", "query", query)
			return videos, nil
		}
	} else if err != redis.Nil {
		slog.WarnContext(ctx, "youtube cache read failed", "error", err)
	}

	videos, err := c.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(videos); err == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			slog.WarnContext(ctx, "youtube cache write failed", "error", err)
		}
	}

	return videos, nil
}
