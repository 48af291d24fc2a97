package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// LayerCache stores serialized full-layer GeoJSON per layer and resolution.
// A cache miss returns ("", nil); spatial query results themselves are
// never cached, only the static layer fetches.
type LayerCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewLayerCache(r *Redis, ttl time.Duration) *LayerCache {
	return &LayerCache{client: r.Client, ttl: ttl}
}

func (c *LayerCache) key(layer string, lowRes bool) string {
	if lowRes {
		return "layers:geojson:" + layer + ":low"
	}
	return "layers:geojson:" + layer + ":full"
}

func (c *LayerCache) Get(ctx context.Context, layer string, lowRes bool) (string, error) {
	data, err := c.client.Get(ctx, c.key(layer, lowRes)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return data, nil
}

func (c *LayerCache) Set(ctx context.Context, layer string, lowRes bool, geojson string) error {
	return c.client.Set(ctx, c.key(layer, lowRes), geojson, c.ttl).Err()
}
